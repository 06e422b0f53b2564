package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/wallet"
)

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetBalance(ctx context.Context, clientID int64) (money.Money, error) {
	var balance money.Money

	err := s.db.QueryRowContext(ctx, `SELECT balance FROM clients WHERE id = $1`, clientID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return money.Zero, wallet.ErrNotFound
		}

		return money.Zero, fmt.Errorf("getting balance: %w", err)
	}

	return balance, nil
}

func (s *Store) Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error) {
	return credit(ctx, s.db, clientID, amount)
}

func (s *Store) BeginBatch(ctx context.Context) (wallet.BatchTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch tx: %w", err)
	}

	return &batchTx{tx: dbTx}, nil
}

type batchTx struct {
	tx *sql.Tx
}

func (b *batchTx) Commit() error   { return b.tx.Commit() }
func (b *batchTx) Rollback() error { return b.tx.Rollback() }

func (b *batchTx) Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error) {
	return credit(ctx, b.tx, clientID, amount)
}

func credit(ctx context.Context, q querier, clientID int64, amount money.Money) (money.Money, error) {
	var balance money.Money

	err := q.QueryRowContext(ctx, `
		UPDATE clients SET balance = balance + $1
		WHERE id = $2
		RETURNING balance`, amount, clientID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return money.Zero, fmt.Errorf("client %d: %w", clientID, wallet.ErrNotFound)
		}

		return money.Zero, fmt.Errorf("crediting wallet: %w", err)
	}

	return balance, nil
}
