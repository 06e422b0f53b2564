package ticket

import (
	"errors"
	"fmt"

	"github.com/khawla-14/markyticket/internal/money"
)

var (
	// ErrNotFound is returned when a ticket, trajet or client does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when the ticket status does not allow the
	// transition, or the trajet is no longer open for the operation.
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden is returned when the actor does not own or control the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInsufficientFunds is returned when the wallet balance is below the price.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrConflict is returned by stores when a generated ticket code already exists.
	// The service retries with a fresh code; callers never see it.
	ErrConflict = errors.New("ticket code conflict")
)

// InsufficientFundsError carries the balance shortage of a rejected purchase.
type InsufficientFundsError struct {
	ClientID int64
	Balance  money.Money
	Price    money.Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: client %d has %s, price is %s", e.ClientID, e.Balance, e.Price)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// TransitionError reports a refused status change.
type TransitionError struct {
	Code string
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("ticket %s: cannot move from %s to %s", e.Code, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidState
}

// IsDomainError reports whether err is a precondition failure rather than an
// infrastructure failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInsufficientFunds)
}
