package metrics_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khawla-14/markyticket/internal/metrics"
	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/ticket"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, metrics.OutcomeOK},
		{fmt.Errorf("get ticket: %w", ticket.ErrNotFound), metrics.OutcomeNotFound},
		{&ticket.TransitionError{Code: "c", From: ticket.StatusCanceled, To: ticket.StatusValidated}, metrics.OutcomeInvalidState},
		{ticket.ErrForbidden, metrics.OutcomeForbidden},
		{&ticket.InsufficientFundsError{}, metrics.OutcomeInsufficientFunds},
		{errors.New("connection refused"), metrics.OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.Outcome(tt.err))
		})
	}
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	c.TicketOperation(ticket.OpPurchase, nil)
	c.TicketOperation(ticket.OpPurchase, nil)
	c.TicketOperation(ticket.OpPurchase, ticket.ErrInsufficientFunds)
	c.WalletCredited("recharge", money.MustParse("12.50"))
	c.WalletCredited("recharge", money.MustParse("7.50"))

	count, err := testutil.GatherAndCount(reg, "ticket_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "," + l.GetValue()
			}

			if m.GetCounter() != nil {
				values[key] = m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["ticket_operations_total,purchase,ok"])
	assert.Equal(t, 1.0, values["ticket_operations_total,purchase,insufficient_funds"])
	assert.Equal(t, 2.0, values["wallet_credits_total,recharge"])
	assert.InDelta(t, 20.0, values["wallet_credited_amount_total,recharge"], 0.001)
}

func TestCollector_InstrumentUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	r := chi.NewRouter()
	r.Use(c.Instrument)
	r.Get("/tickets/status/{code}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, code := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets/status/"+code, nil))
	}

	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
