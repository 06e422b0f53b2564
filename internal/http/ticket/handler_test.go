package ticket_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khawla-14/markyticket/internal/http/auth"
	tickethttp "github.com/khawla-14/markyticket/internal/http/ticket"
	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/onbus"
	"github.com/khawla-14/markyticket/internal/ticket"
	"github.com/khawla-14/markyticket/internal/ticket/memstore"
)

type env struct {
	router   http.Handler
	store    *memstore.Store
	client   string
	other    string
	receiver string
}

func setup(t *testing.T) env {
	t.Helper()

	store := memstore.New()
	store.AddClient(1, money.MustParse("30.00"))
	store.AddClient(2, money.MustParse("0.00"))
	store.AddTrajet(ticket.Trajet{
		ID:         7,
		Name:       "Alger - Tizi Ouzou",
		Price:      money.MustParse("25.00"),
		Status:     ticket.TrajetInProgress,
		ReceiverID: 3,
	})

	a := auth.New("secret")
	h := tickethttp.NewHandler(ticket.NewService(store, onbus.NewCodec("bus")))

	r := chi.NewRouter()
	r.Use(a.Middleware)
	r.Route("/tickets", func(r chi.Router) {
		h.Routes(r, func(next http.Handler) http.Handler { return next })
	})

	sign := func(id int64, role auth.Role) string {
		tok, err := a.Sign(auth.Identity{ID: id, Role: role})
		require.NoError(t, err)

		return tok
	}

	return env{
		router:   r,
		store:    store,
		client:   sign(1, auth.RoleClient),
		other:    sign(2, auth.RoleClient),
		receiver: sign(3, auth.RoleReceiver),
	}
}

func (e env) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}

	return rec, out
}

func TestHandler_BuyValidateFlow(t *testing.T) {
	e := setup(t)

	rec, body := e.do(t, http.MethodPost, "/tickets/buy", e.client, `{"trajet_id":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, "25.00", body["price"])
	assert.Equal(t, "5.00", body["new_balance"])

	code := body["ticket_code"].(string)

	rec, body = e.do(t, http.MethodGet, "/tickets/status/"+code, e.other, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pending", body["status"])

	rec, body = e.do(t, http.MethodPost, "/tickets/validate", e.receiver, `{"ticket_code":"`+code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Validated", body["status"])

	rec, _ = e.do(t, http.MethodPost, "/tickets/validate", e.receiver, `{"ticket_code":"`+code+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = e.do(t, http.MethodPost, "/tickets/cancel", e.client, `{"ticket_code":"`+code+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_CancelRefunds(t *testing.T) {
	e := setup(t)

	_, body := e.do(t, http.MethodPost, "/tickets/buy", e.client, `{"trajet_id":7}`)
	code := body["ticket_code"].(string)

	rec, _ := e.do(t, http.MethodPost, "/tickets/cancel", e.other, `{"ticket_code":"`+code+`"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = e.do(t, http.MethodPost, "/tickets/cancel", e.client, `{"ticket_code":"`+code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Canceled", body["status"])
	assert.Equal(t, "30.00", body["new_balance"])
}

func TestHandler_ErrorMapping(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"Insufficient funds", http.MethodPost, "/tickets/buy", e.other, `{"trajet_id":7}`, http.StatusPaymentRequired},
		{"Unknown trajet", http.MethodPost, "/tickets/buy", e.client, `{"trajet_id":99}`, http.StatusNotFound},
		{"Missing trajet id", http.MethodPost, "/tickets/buy", e.client, `{}`, http.StatusBadRequest},
		{"Malformed body", http.MethodPost, "/tickets/buy", e.client, `{`, http.StatusBadRequest},
		{"Receiver cannot buy", http.MethodPost, "/tickets/buy", e.receiver, `{"trajet_id":7}`, http.StatusForbidden},
		{"Client cannot validate", http.MethodPost, "/tickets/validate", e.client, `{"ticket_code":"x"}`, http.StatusForbidden},
		{"Unknown ticket", http.MethodGet, "/tickets/status/nope", e.client, "", http.StatusNotFound},
		{"Forged on-bus token", http.MethodPost, "/tickets/onbus/redeem", e.receiver, `{"token":"forged","client_id":1}`, http.StatusForbidden},
		{"No token", http.MethodGet, "/tickets/status/nope", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := e.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_OnBusSale(t *testing.T) {
	e := setup(t)

	rec, body := e.do(t, http.MethodGet, "/tickets/onbus/offer", e.receiver, "")
	require.Equal(t, http.StatusOK, rec.Code)

	token := body["token"].(string)
	trajet := body["trajet"].(map[string]any)
	assert.Equal(t, float64(7), trajet["id"])
	assert.Equal(t, "25.00", trajet["price"])

	rec, body = e.do(t, http.MethodPost, "/tickets/onbus/redeem", e.receiver, `{"token":"`+token+`","client_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Validated", body["status"])
	assert.Equal(t, "0.00", e.store.Balance(2).String())

	e.store.SetTrajetStatus(7, ticket.TrajetFinished)

	rec, _ = e.do(t, http.MethodPost, "/tickets/onbus/redeem", e.receiver, `{"token":"`+token+`","client_id":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = e.do(t, http.MethodGet, "/tickets/onbus/offer", e.receiver, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
