package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

const sampleText = "From: Acme Corp\nInvoice #: INV-2024-100\nTotal: $1500.50\n"

type deps struct {
	reader   *MockDocumentReader
	screener *MockScreener
	engine   *MockEvaluator
	repo     *MockRepository
}

func newService(t *testing.T) (*Service, deps) {
	ctrl := gomock.NewController(t)
	d := deps{
		reader:   NewMockDocumentReader(ctrl),
		screener: NewMockScreener(ctrl),
		engine:   NewMockEvaluator(ctrl),
		repo:     NewMockRepository(ctrl),
	}

	return NewService(d.reader, d.screener, d.engine, d.repo), d
}

func approvedResult(inv invoice.Invoice) risk.Result {
	return risk.Result{
		ProcessedInvoice: inv,
		ConfidenceScore:  1.0,
		Decision:         risk.DecisionApproved,
		Reasoning:        "High confidence. Trust established, no critical flags.",
		Recommendation:   "Approve and schedule payment per the vendor's payment terms.",
	}
}

func TestService_AnalyzeText(t *testing.T) {
	ctx := context.Background()

	t.Run("RunsPipelineAndPersists", func(t *testing.T) {
		svc, d := newService(t)

		sec := risk.SecurityContext{Fingerprint: "fp-1"}

		var screened invoice.Invoice

		d.screener.EXPECT().Build(ctx, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, inv invoice.Invoice, _ map[string]string) risk.SecurityContext {
				screened = inv
				return sec
			})
		d.engine.EXPECT().Evaluate(gomock.Any(), sec).
			DoAndReturn(func(inv invoice.Invoice, _ risk.SecurityContext) risk.Result {
				return approvedResult(inv)
			})

		var saved *Decision

		d.repo.EXPECT().SaveDecision(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, decision *Decision) error {
				saved = decision
				return nil
			})

		result, err := svc.AnalyzeText(ctx, sampleText)

		require.NoError(t, err)
		assert.Equal(t, risk.DecisionApproved, result.Decision)

		assert.Equal(t, "Acme Corp", screened.VendorName)
		assert.Equal(t, "INV-2024-100", screened.InvoiceNumber)
		assert.Equal(t, "1500.5", screened.Amount.String())

		require.NotNil(t, saved)
		assert.Equal(t, "fp-1", saved.Fingerprint)
		assert.Equal(t, "Acme Corp", saved.VendorName)
		assert.Equal(t, "INV-2024-100", saved.InvoiceNumber)
		assert.Equal(t, invoice.CurrencyUSD, saved.Currency)
		assert.Equal(t, risk.DecisionApproved, saved.Outcome)
		assert.Equal(t, 1.0, saved.Confidence)
	})

	t.Run("SaveFailureStillReturnsResult", func(t *testing.T) {
		svc, d := newService(t)

		d.screener.EXPECT().Build(ctx, gomock.Any(), nil).Return(risk.SecurityContext{Fingerprint: "fp-2"})
		d.engine.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(inv invoice.Invoice, _ risk.SecurityContext) risk.Result {
				return approvedResult(inv)
			})
		d.repo.EXPECT().SaveDecision(ctx, gomock.Any()).Return(errors.New("connection refused"))

		result, err := svc.AnalyzeText(ctx, sampleText)

		require.NoError(t, err)
		assert.Equal(t, risk.DecisionApproved, result.Decision)
	})

	t.Run("EmptyTextFallsBackToDefaults", func(t *testing.T) {
		svc, d := newService(t)

		d.screener.EXPECT().Build(ctx, gomock.Any(), nil).Return(risk.SecurityContext{})
		d.engine.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(inv invoice.Invoice, _ risk.SecurityContext) risk.Result {
				assert.Equal(t, invoice.DefaultVendorName, inv.VendorName)
				return risk.Result{ProcessedInvoice: inv, Decision: risk.DecisionNeedsReview}
			})
		d.repo.EXPECT().SaveDecision(ctx, gomock.Any()).Return(nil)

		result, err := svc.AnalyzeText(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, risk.DecisionNeedsReview, result.Decision)
	})
}

func TestService_AnalyzeDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("PassesMetadataToScreening", func(t *testing.T) {
		svc, d := newService(t)

		meta := map[string]string{"Producer": "GIMP 2.10"}
		payload := []byte("%PDF-1.4 ...")

		d.reader.EXPECT().Read("invoice.pdf", payload).Return(ingest.Document{Text: sampleText, Metadata: meta}, nil)
		d.screener.EXPECT().Build(ctx, gomock.Any(), meta).Return(risk.SecurityContext{Fingerprint: "fp-3"})
		d.engine.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(inv invoice.Invoice, _ risk.SecurityContext) risk.Result {
				return approvedResult(inv)
			})
		d.repo.EXPECT().SaveDecision(ctx, gomock.Any()).Return(nil)

		result, err := svc.AnalyzeDocument(ctx, "invoice.pdf", payload)

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", result.ProcessedInvoice.VendorName)
	})

	t.Run("IngestErrorPropagates", func(t *testing.T) {
		svc, d := newService(t)

		d.reader.EXPECT().Read("invoice.docx", gomock.Any()).Return(ingest.Document{}, ingest.ErrUnsupportedFormat)

		_, err := svc.AnalyzeDocument(ctx, "invoice.docx", []byte("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	})
}

func TestService_Decisions(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultLimit", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().ListDecisions(ctx, defaultListLimit).Return(nil, nil)

		_, err := svc.Decisions(ctx, 0)
		require.NoError(t, err)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		svc, d := newService(t)

		decisions := []*Decision{{Fingerprint: "fp-1"}}
		d.repo.EXPECT().ListDecisions(ctx, 10).Return(decisions, nil)

		got, err := svc.Decisions(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, decisions, got)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().ListDecisions(ctx, 10).Return(nil, errors.New("timeout"))

		_, err := svc.Decisions(ctx, 10)
		assert.Error(t, err)
	})
}
