package decision

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xyloai/xylo/internal/analysis"
)

// Lister reads from the decision log.
type Lister interface {
	Decisions(ctx context.Context, limit int) ([]*analysis.Decision, error)
}

type Handler struct {
	svc Lister
}

func NewHandler(svc Lister) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		limit = n
	}

	decisions, err := h.svc.Decisions(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(decisions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
