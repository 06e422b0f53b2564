package ticket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/khawla-14/markyticket/internal/http/auth"
	"github.com/khawla-14/markyticket/internal/ticket"
)

type Handler struct {
	svc *ticket.Service
}

func NewHandler(svc *ticket.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the ticket endpoints. idem wraps the non-repeatable ones.
func (h *Handler) Routes(r chi.Router, idem func(http.Handler) http.Handler) {
	r.Get("/status/{code}", h.status)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleClient))
		r.With(idem).Post("/buy", h.buy)
		r.With(idem).Post("/cancel", h.cancel)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleReceiver))
		r.Post("/validate", h.validate)
		r.Get("/onbus/offer", h.offer)
		r.With(idem).Post("/onbus/redeem", h.redeem)
	})
}

type buyRequest struct {
	TrajetID int64 `json:"trajet_id"`
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TrajetID <= 0 {
		http.Error(w, "trajet_id is required", http.StatusBadRequest)
		return
	}

	caller, _ := auth.FromContext(r.Context())

	res, err := h.svc.Purchase(r.Context(), caller.ID, req.TrajetID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, purchaseResponse{
		TicketCode: res.Ticket.Code,
		Status:     res.Ticket.Status,
		Price:      res.Ticket.Price,
		NewBalance: res.Balance,
	})
}

type codeRequest struct {
	TicketCode string `json:"ticket_code"`
}

func decodeCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	code := strings.TrimSpace(req.TicketCode)
	if code == "" {
		http.Error(w, "ticket_code is required", http.StatusBadRequest)
		return "", false
	}

	return code, true
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	code, ok := decodeCode(w, r)
	if !ok {
		return
	}

	caller, _ := auth.FromContext(r.Context())

	t, err := h.svc.Validate(r.Context(), code, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(t))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	code, ok := decodeCode(w, r)
	if !ok {
		return
	}

	caller, _ := auth.FromContext(r.Context())

	res, err := h.svc.Cancel(r.Context(), code, caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cancelResponse{
		TicketCode: res.Ticket.Code,
		Status:     res.Ticket.Status,
		NewBalance: res.Balance,
	})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetStatus(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(t))
}

func (h *Handler) offer(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.FromContext(r.Context())

	offer, err := h.svc.OfferOnBusCode(r.Context(), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, offerResponse{
		Token: offer.Token,
		Trajet: trajetResponse{
			ID:    offer.Trajet.ID,
			Name:  offer.Trajet.Name,
			Price: offer.Trajet.Price,
		},
	})
}

type redeemRequest struct {
	Token    string `json:"token"`
	ClientID int64  `json:"client_id"`
}

func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Token == "" || req.ClientID <= 0 {
		http.Error(w, "token and client_id are required", http.StatusBadRequest)
		return
	}

	t, err := h.svc.RedeemOnBusCode(r.Context(), req.Token, req.ClientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStatusResponse(t))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
