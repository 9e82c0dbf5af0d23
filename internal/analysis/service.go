package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xyloai/xylo/internal/extract"
	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

const defaultListLimit = 50

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=analysis
type Repository interface {
	SaveDecision(ctx context.Context, decision *Decision) error
	ListDecisions(ctx context.Context, limit int) ([]*Decision, error)
	FingerprintExists(ctx context.Context, fingerprint string) (bool, error)
}

// Screener assembles the security context for one extracted invoice.
type Screener interface {
	Build(ctx context.Context, inv invoice.Invoice, docMeta map[string]string) risk.SecurityContext
}

// Evaluator turns an invoice and its security context into a decision.
type Evaluator interface {
	Evaluate(inv invoice.Invoice, sec risk.SecurityContext) risk.Result
}

// DocumentReader converts an uploaded file into extractable text.
type DocumentReader interface {
	Read(filename string, data []byte) (ingest.Document, error)
}

type Service struct {
	reader   DocumentReader
	screener Screener
	engine   Evaluator
	repo     Repository
}

func NewService(reader DocumentReader, screener Screener, engine Evaluator, repo Repository) *Service {
	return &Service{
		reader:   reader,
		screener: screener,
		engine:   engine,
		repo:     repo,
	}
}

// AnalyzeText runs the pipeline over raw invoice text. It always returns a
// result: extraction falls back to defaults and screening degrades absent
// signals, so the only caller-visible failures are upstream of this call.
func (s *Service) AnalyzeText(ctx context.Context, rawText string) (risk.Result, error) {
	return s.analyze(ctx, rawText, nil), nil
}

// AnalyzeDocument ingests an uploaded file and runs the pipeline over its
// text, passing document metadata through to forensics.
func (s *Service) AnalyzeDocument(ctx context.Context, filename string, data []byte) (risk.Result, error) {
	doc, err := s.reader.Read(filename, data)
	if err != nil {
		return risk.Result{}, fmt.Errorf("ingesting %s: %w", filename, err)
	}

	return s.analyze(ctx, doc.Text, doc.Metadata), nil
}

func (s *Service) analyze(ctx context.Context, text string, docMeta map[string]string) risk.Result {
	inv := extract.Extract(text)
	sec := s.screener.Build(ctx, inv, docMeta)
	result := s.engine.Evaluate(inv, sec)

	// The decision log also backs duplicate detection, so a failed save is
	// logged but never turned into an analysis failure.
	if err := s.repo.SaveDecision(ctx, newDecision(sec.Fingerprint, result)); err != nil {
		slog.Warn("decision not persisted", "fingerprint", sec.Fingerprint, "error", err)
	}

	return result
}

// Decisions lists the most recent decisions, newest first.
func (s *Service) Decisions(ctx context.Context, limit int) ([]*Decision, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.repo.ListDecisions(ctx, limit)
}
