package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/ticket"
)

const uniqueViolation = "23505"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTicketColumns = `code, client_id, trajet_id, price, status, created_at, updated_at`

func scanTicket(s scanner) (*ticket.Ticket, error) {
	var t ticket.Ticket

	var status string

	if err := s.Scan(&t.Code, &t.ClientID, &t.TrajetID, &t.Price, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	t.Status = ticket.Status(status)

	return &t, nil
}

const selectTrajetColumns = `id, name, price, status, receiver_id`

func scanTrajet(s scanner) (*ticket.Trajet, error) {
	var tr ticket.Trajet

	var status string

	var receiverID sql.NullInt64

	if err := s.Scan(&tr.ID, &tr.Name, &tr.Price, &status, &receiverID); err != nil {
		return nil, err
	}

	tr.Status = ticket.TrajetStatus(status)
	tr.ReceiverID = receiverID.Int64

	return &tr, nil
}

func (s *Store) Begin(ctx context.Context) (ticket.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ticket tx: %w", err)
	}

	return &ticketTx{tx: dbTx}, nil
}

func (s *Store) GetTicket(ctx context.Context, code string) (*ticket.Ticket, error) {
	return getTicket(ctx, s.db, code, false)
}

func (s *Store) GetTrajet(ctx context.Context, trajetID int64) (*ticket.Trajet, error) {
	return getTrajet(ctx, s.db, trajetID)
}

func (s *Store) GetActiveTrajetForReceiver(ctx context.Context, receiverID int64) (*ticket.Trajet, error) {
	return activeTrajet(ctx, s.db, receiverID)
}

type ticketTx struct {
	tx *sql.Tx
}

func (t *ticketTx) Commit() error   { return t.tx.Commit() }
func (t *ticketTx) Rollback() error { return t.tx.Rollback() }

func (t *ticketTx) GetBalance(ctx context.Context, clientID int64) (money.Money, error) {
	var balance money.Money

	err := t.tx.QueryRowContext(ctx,
		`SELECT balance FROM clients WHERE id = $1 FOR UPDATE`, clientID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return money.Zero, fmt.Errorf("client %d: %w", clientID, ticket.ErrNotFound)
		}

		return money.Zero, fmt.Errorf("locking wallet: %w", err)
	}

	return balance, nil
}

func (t *ticketTx) Debit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error) {
	var balance money.Money

	err := t.tx.QueryRowContext(ctx, `
		UPDATE clients SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING balance`, amount, clientID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return money.Zero, fmt.Errorf("debit client %d: %w", clientID, ticket.ErrInsufficientFunds)
		}

		return money.Zero, fmt.Errorf("debiting wallet: %w", err)
	}

	return balance, nil
}

func (t *ticketTx) Credit(ctx context.Context, clientID int64, amount money.Money) (money.Money, error) {
	var balance money.Money

	err := t.tx.QueryRowContext(ctx, `
		UPDATE clients SET balance = balance + $1
		WHERE id = $2
		RETURNING balance`, amount, clientID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return money.Zero, fmt.Errorf("credit client %d: %w", clientID, ticket.ErrNotFound)
		}

		return money.Zero, fmt.Errorf("crediting wallet: %w", err)
	}

	return balance, nil
}

func (t *ticketTx) GetTrajet(ctx context.Context, trajetID int64) (*ticket.Trajet, error) {
	return getTrajet(ctx, t.tx, trajetID)
}

func (t *ticketTx) GetActiveTrajetForReceiver(ctx context.Context, receiverID int64) (*ticket.Trajet, error) {
	return activeTrajet(ctx, t.tx, receiverID)
}

func (t *ticketTx) CreateTicket(ctx context.Context, tk *ticket.Ticket) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO tickets (code, client_id, trajet_id, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at`,
		tk.Code, tk.ClientID, tk.TrajetID, tk.Price, tk.Status,
	).Scan(&tk.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("ticket %s: %w", tk.Code, ticket.ErrConflict)
		}

		return fmt.Errorf("creating ticket: %w", err)
	}

	return nil
}

func (t *ticketTx) GetTicketForUpdate(ctx context.Context, code string) (*ticket.Ticket, error) {
	return getTicket(ctx, t.tx, code, true)
}

func (t *ticketTx) UpdateTicketStatus(ctx context.Context, code string, status ticket.Status) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE tickets SET status = $1, updated_at = NOW() WHERE code = $2`, status, code,
	)
	if err != nil {
		return fmt.Errorf("updating ticket status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return ticket.ErrNotFound
	}

	return nil
}

func getTicket(ctx context.Context, q querier, code string, forUpdate bool) (*ticket.Ticket, error) {
	query := `SELECT ` + selectTicketColumns + ` FROM tickets WHERE code = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	t, err := scanTicket(q.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrNotFound
		}

		return nil, fmt.Errorf("getting ticket: %w", err)
	}

	return t, nil
}

func getTrajet(ctx context.Context, q querier, trajetID int64) (*ticket.Trajet, error) {
	tr, err := scanTrajet(q.QueryRowContext(ctx,
		`SELECT `+selectTrajetColumns+` FROM trajets WHERE id = $1`, trajetID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrNotFound
		}

		return nil, fmt.Errorf("getting trajet: %w", err)
	}

	return tr, nil
}

func activeTrajet(ctx context.Context, q querier, receiverID int64) (*ticket.Trajet, error) {
	query := `SELECT ` + selectTrajetColumns + `
		FROM trajets
		WHERE receiver_id = $1 AND status = $2
		ORDER BY id
		LIMIT 2`

	rows, err := q.QueryContext(ctx, query, receiverID, ticket.TrajetInProgress)
	if err != nil {
		return nil, fmt.Errorf("querying active trajet: %w", err)
	}
	defer rows.Close()

	var found []*ticket.Trajet

	for rows.Next() {
		tr, err := scanTrajet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trajet: %w", err)
		}

		found = append(found, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trajets: %w", err)
	}

	// Zero or several running trajets both leave the receiver without a usable code.
	if len(found) != 1 {
		return nil, fmt.Errorf("%d running trajets: %w", len(found), ticket.ErrNotFound)
	}

	return found[0], nil
}
