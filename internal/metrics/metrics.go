// Package metrics exposes Prometheus counters for the ticket and wallet services.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/ticket"
)

const (
	OutcomeOK                = "ok"
	OutcomeNotFound          = "not_found"
	OutcomeInvalidState      = "invalid_state"
	OutcomeForbidden         = "forbidden"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeError             = "error"
)

type Collector struct {
	ticketOps     *prometheus.CounterVec
	walletCredits *prometheus.CounterVec
	walletAmount  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		ticketOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticket_operations_total",
				Help: "Ticket ledger operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		walletCredits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_credits_total",
				Help: "Wallet credits applied",
			},
			[]string{"source"},
		),
		walletAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_credited_amount_total",
				Help: "Sum of wallet credits in currency units",
			},
			[]string{"source"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (c *Collector) TicketOperation(op string, err error) {
	c.ticketOps.WithLabelValues(op, Outcome(err)).Inc()
}

func (c *Collector) WalletCredited(source string, amount money.Money) {
	c.walletCredits.WithLabelValues(source).Inc()
	c.walletAmount.WithLabelValues(source).Add(amount.Decimal().InexactFloat64())
}

// Outcome classifies a ledger error into a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ticket.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ticket.ErrInvalidState):
		return OutcomeInvalidState
	case errors.Is(err, ticket.ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, ticket.ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	default:
		return OutcomeError
	}
}
