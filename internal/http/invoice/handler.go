package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/risk"
)

// Uploads above this size are rejected before ingestion.
const maxUploadBytes = 20 << 20

// Analyzer runs the analysis pipeline for one submission.
type Analyzer interface {
	AnalyzeText(ctx context.Context, rawText string) (risk.Result, error)
	AnalyzeDocument(ctx context.Context, filename string, data []byte) (risk.Result, error)
}

type Handler struct {
	svc Analyzer
}

func NewHandler(svc Analyzer) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/analyze", h.analyze)
	r.Post("/analyze-file", h.analyzeFile)
}

type analyzeRequest struct {
	RawText string `json:"raw_text"`
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.RawText) == "" {
		http.Error(w, "raw_text is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AnalyzeText(r.Context(), req.RawText)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeResult(w, result)
}

func (h *Handler) analyzeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	result, err := h.svc.AnalyzeDocument(r.Context(), header.Filename, data)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	writeResult(w, result)
}

func writeResult(w http.ResponseWriter, result risk.Result) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
