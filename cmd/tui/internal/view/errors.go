package view

import (
	"errors"

	"github.com/khawla-14/markyticket/internal/ticket"
)

// describeError turns service errors into messages a receiver can act on.
func describeError(err error) string {
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		return "no such ticket, client or running trajet"
	case errors.Is(err, ticket.ErrForbidden):
		return "this ticket belongs to another bus"
	}

	return err.Error()
}
