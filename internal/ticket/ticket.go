package ticket

import (
	"encoding/json"
	"time"

	"github.com/khawla-14/markyticket/internal/money"
)

// Status represents the lifecycle state of a ticket.
type Status string

const (
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
	StatusCanceled  Status = "canceled"
)

// CanTransitionTo reports whether a ticket in status s may move to next.
// Validated and canceled tickets are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}

	return next == StatusValidated || next == StatusCanceled
}

// Label is the display form of s used in API responses ("Pending").
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusValidated:
		return "Validated"
	case StatusCanceled:
		return "Canceled"
	}

	return string(s)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Label())
}

func (s Status) Terminal() bool {
	return s == StatusValidated || s == StatusCanceled
}

// Ticket is the durable record of a monetary event on a trajet.
type Ticket struct {
	Code      string
	ClientID  int64
	TrajetID  int64
	Price     money.Money // Captured at issuance
	Status    Status
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TrajetStatus mirrors the route catalog's trajet lifecycle.
type TrajetStatus string

const (
	TrajetPlanned    TrajetStatus = "planned"
	TrajetInProgress TrajetStatus = "in_progress"
	TrajetFinished   TrajetStatus = "finished"
	TrajetCanceled   TrajetStatus = "canceled"
)

// Trajet is the read-only snapshot of a route instance.
type Trajet struct {
	ID         int64
	Name       string
	Price      money.Money
	Status     TrajetStatus
	ReceiverID int64
}

// Bookable reports whether tickets can still be purchased for the trajet.
func (t *Trajet) Bookable() bool {
	return t.Status == TrajetPlanned || t.Status == TrajetInProgress
}

// Running reports whether the bus is on the road, which is when on-bus sales are allowed.
func (t *Trajet) Running() bool {
	return t.Status == TrajetInProgress
}

// Settlement decides how an on-bus sale is paid.
type Settlement string

const (
	// SettlementCash leaves the wallet untouched; the receiver collects payment.
	SettlementCash Settlement = "cash"
	// SettlementWallet debits the client's wallet like a purchase.
	SettlementWallet Settlement = "wallet"
)

type PurchaseResult struct {
	Ticket  *Ticket
	Balance money.Money
}

type CancelResult struct {
	Ticket  *Ticket
	Balance money.Money
}

type OnBusOffer struct {
	Token  string
	Trajet *Trajet
}
