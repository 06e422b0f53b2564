package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/khawla-14/markyticket/internal/money"
)

// AccountStore holds client wallet balances. Inside a Tx, GetBalance locks the
// wallet until the Tx ends.
type AccountStore interface {
	GetBalance(ctx context.Context, clientID int64) (money.Money, error)
	Debit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error)
	Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error)
}

// RouteCatalog exposes read-only trajet snapshots.
type RouteCatalog interface {
	GetTrajet(ctx context.Context, trajetID int64) (*Trajet, error)
	GetActiveTrajetForReceiver(ctx context.Context, receiverID int64) (*Trajet, error)
}

type TicketStore interface {
	CreateTicket(ctx context.Context, t *Ticket) error
	GetTicketForUpdate(ctx context.Context, code string) (*Ticket, error)
	UpdateTicketStatus(ctx context.Context, code string, status Status) error
}

// Tx is one all-or-nothing unit of work spanning tickets, wallets and trajets.
type Tx interface {
	AccountStore
	RouteCatalog
	TicketStore
	Commit() error
	Rollback() error
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ticket
type Repository interface {
	RouteCatalog
	Begin(ctx context.Context) (Tx, error)
	GetTicket(ctx context.Context, code string) (*Ticket, error)
}

// TokenCodec signs and verifies on-bus tokens.
type TokenCodec interface {
	Issue(receiverID, trajetID int64) (string, error)
	Parse(token string) (receiverID, trajetID int64, err error)
}

// Observer is notified of the outcome of every ledger operation.
type Observer interface {
	TicketOperation(op string, err error)
}

const (
	OpPurchase = "purchase"
	OpValidate = "validate"
	OpCancel   = "cancel"
	OpOffer    = "onbus_offer"
	OpRedeem   = "onbus_redeem"
)

const maxCodeAttempts = 3

type Service struct {
	repo       Repository
	tokens     TokenCodec
	observer   Observer
	settlement Settlement
	newCode    func() string
}

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

func WithSettlement(st Settlement) Option {
	return func(s *Service) { s.settlement = st }
}

// WithCodeGenerator replaces the UUIDv4 ticket code source.
func WithCodeGenerator(fn func() string) Option {
	return func(s *Service) { s.newCode = fn }
}

func NewService(repo Repository, tokens TokenCodec, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		tokens:     tokens,
		settlement: SettlementCash,
		newCode:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Purchase debits the client's wallet by the trajet price and issues a pending ticket.
func (s *Service) Purchase(ctx context.Context, clientID, trajetID int64) (*PurchaseResult, error) {
	var res *PurchaseResult

	err := s.withFreshCode(ctx, OpPurchase, func(code string) error {
		var err error
		res, err = s.purchase(ctx, clientID, trajetID, code)

		return err
	})

	s.observe(OpPurchase, err)

	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *Service) purchase(ctx context.Context, clientID, trajetID int64, code string) (*PurchaseResult, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback()

	trajet, err := tx.GetTrajet(ctx, trajetID)
	if err != nil {
		return nil, fmt.Errorf("get trajet %d: %w", trajetID, err)
	}

	if !trajet.Bookable() {
		return nil, fmt.Errorf("trajet %d is %s: %w", trajetID, trajet.Status, ErrInvalidState)
	}

	balance, err := tx.GetBalance(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	if balance.LessThan(trajet.Price) {
		return nil, &InsufficientFundsError{ClientID: clientID, Balance: balance, Price: trajet.Price}
	}

	t := &Ticket{
		Code:     code,
		ClientID: clientID,
		TrajetID: trajetID,
		Price:    trajet.Price,
		Status:   StatusPending,
	}
	if err := tx.CreateTicket(ctx, t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	newBalance, err := tx.Debit(ctx, clientID, trajet.Price)
	if err != nil {
		return nil, fmt.Errorf("debit wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	return &PurchaseResult{Ticket: t, Balance: newBalance}, nil
}

// Validate confirms boarding of a pending ticket on a trajet run by receiverID.
func (s *Service) Validate(ctx context.Context, code string, receiverID int64) (*Ticket, error) {
	t, err := s.validate(ctx, code, receiverID)
	s.observe(OpValidate, err)

	return t, err
}

func (s *Service) validate(ctx context.Context, code string, receiverID int64) (*Ticket, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin validate: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.GetTicketForUpdate(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	trajet, err := tx.GetTrajet(ctx, t.TrajetID)
	if err != nil {
		return nil, fmt.Errorf("get trajet %d: %w", t.TrajetID, err)
	}

	if trajet.ReceiverID != receiverID {
		return nil, fmt.Errorf("trajet %d is not assigned to receiver %d: %w", trajet.ID, receiverID, ErrForbidden)
	}

	if err := s.transition(ctx, tx, t, StatusValidated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit validate: %w", err)
	}

	return t, nil
}

// Cancel refunds a pending ticket to its owner.
func (s *Service) Cancel(ctx context.Context, code string, clientID int64) (*CancelResult, error) {
	res, err := s.cancel(ctx, code, clientID)
	s.observe(OpCancel, err)

	return res, err
}

func (s *Service) cancel(ctx context.Context, code string, clientID int64) (*CancelResult, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cancel: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.GetTicketForUpdate(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if t.ClientID != clientID {
		return nil, fmt.Errorf("ticket %s does not belong to client %d: %w", code, clientID, ErrForbidden)
	}

	if err := s.transition(ctx, tx, t, StatusCanceled); err != nil {
		return nil, err
	}

	balance, err := tx.Credit(ctx, clientID, t.Price)
	if err != nil {
		return nil, fmt.Errorf("refund wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	slog.Info("ticket canceled", "code", code, "client_id", clientID, "refund", t.Price.String())

	return &CancelResult{Ticket: t, Balance: balance}, nil
}

func (s *Service) transition(ctx context.Context, tx Tx, t *Ticket, next Status) error {
	if !t.Status.CanTransitionTo(next) {
		return &TransitionError{Code: t.Code, From: t.Status, To: next}
	}

	if err := tx.UpdateTicketStatus(ctx, t.Code, next); err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}

	t.Status = next

	return nil
}

// OfferOnBusCode returns the static token a receiver shows on the bus for its running trajet.
func (s *Service) OfferOnBusCode(ctx context.Context, receiverID int64) (*OnBusOffer, error) {
	offer, err := s.offer(ctx, receiverID)
	s.observe(OpOffer, err)

	return offer, err
}

func (s *Service) offer(ctx context.Context, receiverID int64) (*OnBusOffer, error) {
	trajet, err := s.repo.GetActiveTrajetForReceiver(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("active trajet for receiver %d: %w", receiverID, err)
	}

	token, err := s.tokens.Issue(receiverID, trajet.ID)
	if err != nil {
		return nil, fmt.Errorf("issue on-bus token: %w", err)
	}

	return &OnBusOffer{Token: token, Trajet: trajet}, nil
}

// RedeemOnBusCode issues an already validated ticket for the trajet encoded in token.
func (s *Service) RedeemOnBusCode(ctx context.Context, token string, clientID int64) (*Ticket, error) {
	var t *Ticket

	err := s.withFreshCode(ctx, OpRedeem, func(code string) error {
		var err error
		t, err = s.redeem(ctx, token, clientID, code)

		return err
	})

	s.observe(OpRedeem, err)

	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) redeem(ctx context.Context, token string, clientID int64, code string) (*Ticket, error) {
	receiverID, trajetID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("on-bus token: %v: %w", err, ErrForbidden)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin redeem: %w", err)
	}
	defer tx.Rollback()

	trajet, err := tx.GetTrajet(ctx, trajetID)
	if err != nil {
		return nil, fmt.Errorf("get trajet %d: %w", trajetID, err)
	}

	if !trajet.Running() {
		return nil, fmt.Errorf("trajet %d is %s: %w", trajetID, trajet.Status, ErrInvalidState)
	}

	if trajet.ReceiverID != receiverID {
		return nil, fmt.Errorf("trajet %d no longer run by receiver %d: %w", trajetID, receiverID, ErrInvalidState)
	}

	balance, err := tx.GetBalance(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	if s.settlement == SettlementWallet && balance.LessThan(trajet.Price) {
		return nil, &InsufficientFundsError{ClientID: clientID, Balance: balance, Price: trajet.Price}
	}

	t := &Ticket{
		Code:     code,
		ClientID: clientID,
		TrajetID: trajetID,
		Price:    trajet.Price,
		Status:   StatusValidated,
	}
	if err := tx.CreateTicket(ctx, t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	if s.settlement == SettlementWallet {
		if _, err := tx.Debit(ctx, clientID, trajet.Price); err != nil {
			return nil, fmt.Errorf("debit wallet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit redeem: %w", err)
	}

	return t, nil
}

// GetStatus is a read-only lookup by ticket code.
func (s *Service) GetStatus(ctx context.Context, code string) (*Ticket, error) {
	t, err := s.repo.GetTicket(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return t, nil
}

// withFreshCode runs fn with a new ticket code, retrying the whole unit of work
// when the store reports a code collision.
func (s *Service) withFreshCode(ctx context.Context, op string, fn func(code string) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(s.newCode())
		if !errors.Is(err, ErrConflict) {
			return err
		}

		if attempt == maxCodeAttempts {
			return fmt.Errorf("%s: no free ticket code after %d attempts", op, attempt)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Warn("ticket code collision, retrying", "op", op, "attempt", attempt)
	}
}

func (s *Service) observe(op string, err error) {
	if s.observer != nil {
		s.observer.TicketOperation(op, err)
	}
}
