package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khawla-14/markyticket/internal/money"
)

// BatchTx applies a set of credits atomically.
type BatchTx interface {
	Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error)
	Commit() error
	Rollback() error
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=wallet
type Repository interface {
	GetBalance(ctx context.Context, clientID int64) (money.Money, error)
	Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error)
	BeginBatch(ctx context.Context) (BatchTx, error)
}

type Observer interface {
	WalletCredited(source string, amount money.Money)
}

type Service struct {
	repo     Repository
	observer Observer
}

func NewService(repo Repository, observer Observer) *Service {
	return &Service{repo: repo, observer: observer}
}

func (s *Service) Balance(ctx context.Context, clientID int64) (money.Money, error) {
	balance, err := s.repo.GetBalance(ctx, clientID)
	if err != nil {
		return money.Zero, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// Recharge credits amount to the client's wallet and returns the new balance.
func (s *Service) Recharge(ctx context.Context, clientID int64, amount money.Money) (money.Money, error) {
	if !amount.IsPositive() {
		return money.Zero, ErrInvalidAmount
	}

	balance, err := s.repo.Credit(ctx, clientID, amount)
	if err != nil {
		return money.Zero, fmt.Errorf("credit wallet: %w", err)
	}

	s.credited(SourceRecharge, amount)

	return balance, nil
}

// RechargeBatch applies every top-up or none of them.
func (s *Service) RechargeBatch(ctx context.Context, topUps []TopUp) (*BatchResult, error) {
	for i, tu := range topUps {
		if !tu.Amount.IsPositive() {
			return nil, fmt.Errorf("top-up %d (client %d): %w", i+1, tu.ClientID, ErrInvalidAmount)
		}
	}

	tx, err := s.repo.BeginBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	res := &BatchResult{Total: money.Zero}

	for i, tu := range topUps {
		if _, err := tx.Credit(ctx, tu.ClientID, tu.Amount); err != nil {
			return nil, fmt.Errorf("top-up %d (client %d): %w", i+1, tu.ClientID, err)
		}

		res.Credited++
		res.Total = res.Total.Add(tu.Amount)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	for _, tu := range topUps {
		s.credited(SourceImport, tu.Amount)
	}

	slog.Info("wallet top-ups imported", "count", res.Credited, "total", res.Total.String())

	return res, nil
}

func (s *Service) credited(source string, amount money.Money) {
	if s.observer != nil {
		s.observer.WalletCredited(source, amount)
	}
}
