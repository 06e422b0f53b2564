package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khawla-14/markyticket/internal/importer"
	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/wallet"
)

type Handler struct {
	importSvc *importer.Service
	walletSvc *wallet.Service
}

func NewHandler(importSvc *importer.Service, walletSvc *wallet.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		walletSvc: walletSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type topUpDTO struct {
	ClientID  int64       `json:"client_id"`
	Amount    money.Money `json:"amount"`
	Reference string      `json:"reference,omitempty"`
}

type previewResponse struct {
	TopUps []topUpDTO  `json:"top_ups"`
	Total  money.Money `json:"total"`
}

type batchResponse struct {
	Credited int         `json:"credited"`
	Total    money.Money `json:"total"`
}

type confirmRequest struct {
	TopUps []topUpDTO `json:"top_ups"`
}

// importCSV parses an uploaded export. With dry_run=true it only returns the
// parsed rows; otherwise the whole file is credited in one batch.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	topUps, err := h.importSvc.Import(importer.SourceTopUp, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.FormValue("dry_run") == "true" {
		writeJSON(w, http.StatusOK, toPreview(topUps))
		return
	}

	h.apply(w, r, topUps)
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	topUps := make([]wallet.TopUp, 0, len(req.TopUps))
	for _, t := range req.TopUps {
		topUps = append(topUps, wallet.TopUp{
			ClientID:  t.ClientID,
			Amount:    t.Amount,
			Reference: t.Reference,
		})
	}

	h.apply(w, r, topUps)
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request, topUps []wallet.TopUp) {
	if len(topUps) == 0 {
		http.Error(w, "no top-ups found", http.StatusBadRequest)
		return
	}

	res, err := h.walletSvc.RechargeBatch(r.Context(), topUps)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, wallet.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			slog.Error("top-up import failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusCreated, batchResponse{Credited: res.Credited, Total: res.Total})
}

func toPreview(topUps []wallet.TopUp) previewResponse {
	resp := previewResponse{
		TopUps: make([]topUpDTO, 0, len(topUps)),
		Total:  money.Zero,
	}

	for _, t := range topUps {
		resp.TopUps = append(resp.TopUps, topUpDTO{
			ClientID:  t.ClientID,
			Amount:    t.Amount,
			Reference: t.Reference,
		})
		resp.Total = resp.Total.Add(t.Amount)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
