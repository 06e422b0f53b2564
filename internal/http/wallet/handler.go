package wallet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khawla-14/markyticket/internal/http/auth"
	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/wallet"
)

type Handler struct {
	svc *wallet.Service
}

func NewHandler(svc *wallet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router, idem func(http.Handler) http.Handler) {
	r.Use(auth.RequireRole(auth.RoleClient))
	r.Get("/balance", h.balance)
	r.With(idem).Post("/recharge", h.recharge)
}

type balanceResponse struct {
	Balance money.Money `json:"balance"`
}

type rechargeRequest struct {
	Amount money.Money `json:"amount"`
}

type rechargeResponse struct {
	NewBalance money.Money `json:"new_balance"`
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.FromContext(r.Context())

	balance, err := h.svc.Balance(r.Context(), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) recharge(w http.ResponseWriter, r *http.Request) {
	var req rechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	caller, _ := auth.FromContext(r.Context())

	balance, err := h.svc.Recharge(r.Context(), caller.ID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rechargeResponse{NewBalance: balance})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wallet.ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	case errors.Is(err, wallet.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("wallet operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
