// Package memstore is an in-process ticket.Repository.
//
// A Tx holds the store lock from Begin until Commit or Rollback, so units of
// work are fully serialized. Rollback replays an undo log in reverse.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/ticket"
)

var errTxDone = errors.New("transaction already finished")

type Store struct {
	mu       sync.Mutex
	balances map[int64]money.Money
	trajets  map[int64]ticket.Trajet
	tickets  map[string]ticket.Ticket
	now      func() time.Time
}

func New() *Store {
	return &Store{
		balances: make(map[int64]money.Money),
		trajets:  make(map[int64]ticket.Trajet),
		tickets:  make(map[string]ticket.Ticket),
		now:      time.Now,
	}
}

// AddClient registers a wallet with an opening balance.
func (s *Store) AddClient(clientID int64, balance money.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[clientID] = balance
}

func (s *Store) AddTrajet(tr ticket.Trajet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trajets[tr.ID] = tr
}

func (s *Store) SetTrajetStatus(trajetID int64, status ticket.TrajetStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr := s.trajets[trajetID]
	tr.Status = status
	s.trajets[trajetID] = tr
}

func (s *Store) SetTrajetReceiver(trajetID, receiverID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr := s.trajets[trajetID]
	tr.ReceiverID = receiverID
	s.trajets[trajetID] = tr
}

// Balance returns the committed balance of a client.
func (s *Store) Balance(clientID int64) money.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[clientID]
}

// Tickets returns every committed ticket ordered by code.
func (s *Store) Tickets() []ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ticket.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

func (s *Store) Begin(ctx context.Context) (ticket.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()

	return &memTx{s: s}, nil
}

func (s *Store) GetTicket(_ context.Context, code string) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticket(code)
}

func (s *Store) GetTrajet(_ context.Context, trajetID int64) (*ticket.Trajet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trajet(trajetID)
}

func (s *Store) GetActiveTrajetForReceiver(_ context.Context, receiverID int64) (*ticket.Trajet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeTrajet(receiverID)
}

func (s *Store) ticket(code string) (*ticket.Ticket, error) {
	t, ok := s.tickets[code]
	if !ok {
		return nil, ticket.ErrNotFound
	}

	return &t, nil
}

func (s *Store) trajet(trajetID int64) (*ticket.Trajet, error) {
	tr, ok := s.trajets[trajetID]
	if !ok {
		return nil, ticket.ErrNotFound
	}

	return &tr, nil
}

func (s *Store) activeTrajet(receiverID int64) (*ticket.Trajet, error) {
	var found []ticket.Trajet

	for _, tr := range s.trajets {
		if tr.ReceiverID == receiverID && tr.Running() {
			found = append(found, tr)
		}
	}

	if len(found) != 1 {
		return nil, fmt.Errorf("%d running trajets: %w", len(found), ticket.ErrNotFound)
	}

	return &found[0], nil
}

type memTx struct {
	s    *Store
	undo []func()
	done bool
}

func (t *memTx) Commit() error {
	if t.done {
		return errTxDone
	}

	t.done = true
	t.undo = nil
	t.s.mu.Unlock()

	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}

	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}

	t.done = true
	t.undo = nil
	t.s.mu.Unlock()

	return nil
}

func (t *memTx) GetBalance(_ context.Context, clientID int64) (money.Money, error) {
	balance, ok := t.s.balances[clientID]
	if !ok {
		return money.Zero, fmt.Errorf("client %d: %w", clientID, ticket.ErrNotFound)
	}

	return balance, nil
}

func (t *memTx) Debit(_ context.Context, clientID int64, amount money.Money) (money.Money, error) {
	balance, ok := t.s.balances[clientID]
	if !ok {
		return money.Zero, fmt.Errorf("client %d: %w", clientID, ticket.ErrNotFound)
	}

	if balance.LessThan(amount) {
		return money.Zero, fmt.Errorf("debit client %d: %w", clientID, ticket.ErrInsufficientFunds)
	}

	t.setBalance(clientID, balance, balance.Sub(amount))

	return t.s.balances[clientID], nil
}

func (t *memTx) Credit(_ context.Context, clientID int64, amount money.Money) (money.Money, error) {
	balance, ok := t.s.balances[clientID]
	if !ok {
		return money.Zero, fmt.Errorf("client %d: %w", clientID, ticket.ErrNotFound)
	}

	t.setBalance(clientID, balance, balance.Add(amount))

	return t.s.balances[clientID], nil
}

func (t *memTx) setBalance(clientID int64, old, next money.Money) {
	t.s.balances[clientID] = next
	t.undo = append(t.undo, func() { t.s.balances[clientID] = old })
}

func (t *memTx) GetTrajet(_ context.Context, trajetID int64) (*ticket.Trajet, error) {
	return t.s.trajet(trajetID)
}

func (t *memTx) GetActiveTrajetForReceiver(_ context.Context, receiverID int64) (*ticket.Trajet, error) {
	return t.s.activeTrajet(receiverID)
}

func (t *memTx) CreateTicket(_ context.Context, tk *ticket.Ticket) error {
	if _, exists := t.s.tickets[tk.Code]; exists {
		return fmt.Errorf("ticket %s: %w", tk.Code, ticket.ErrConflict)
	}

	tk.CreatedAt = t.s.now()
	t.s.tickets[tk.Code] = *tk

	code := tk.Code
	t.undo = append(t.undo, func() { delete(t.s.tickets, code) })

	return nil
}

func (t *memTx) GetTicketForUpdate(_ context.Context, code string) (*ticket.Ticket, error) {
	return t.s.ticket(code)
}

func (t *memTx) UpdateTicketStatus(_ context.Context, code string, status ticket.Status) error {
	old, ok := t.s.tickets[code]
	if !ok {
		return ticket.ErrNotFound
	}

	next := old
	next.Status = status
	next.UpdatedAt = new(t.s.now())
	t.s.tickets[code] = next

	t.undo = append(t.undo, func() { t.s.tickets[code] = old })

	return nil
}
