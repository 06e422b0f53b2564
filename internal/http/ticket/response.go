package ticket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/ticket"
)

type purchaseResponse struct {
	TicketCode string        `json:"ticket_code"`
	Status     ticket.Status `json:"status"`
	Price      money.Money   `json:"price"`
	NewBalance money.Money   `json:"new_balance"`
}

type cancelResponse struct {
	TicketCode string        `json:"ticket_code"`
	Status     ticket.Status `json:"status"`
	NewBalance money.Money   `json:"new_balance"`
}

type statusResponse struct {
	TicketCode string        `json:"ticket_code"`
	Status     ticket.Status `json:"status"`
	Price      money.Money   `json:"price"`
}

type trajetResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price money.Money `json:"price"`
}

type offerResponse struct {
	Token  string         `json:"token"`
	Trajet trajetResponse `json:"trajet"`
}

func toStatusResponse(t *ticket.Ticket) statusResponse {
	return statusResponse{
		TicketCode: t.Code,
		Status:     t.Status,
		Price:      t.Price,
	}
}

// writeError maps ledger errors to status codes. Anything that is not a
// known precondition failure is logged and hidden behind a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ticket.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ticket.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ticket.ErrInsufficientFunds):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	default:
		slog.Error("ticket operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
