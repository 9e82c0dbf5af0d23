// Package analysis runs the full invoice pipeline (ingest, extract, screen,
// evaluate) and keeps the decision log.
package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

// Decision is one persisted analysis outcome. The headline columns are
// denormalized from the result for cheap listing; Result keeps the complete
// evaluation for the detail view.
type Decision struct {
	ID             uuid.UUID
	InvoiceNumber  string
	VendorName     string
	Amount         decimal.Decimal
	Currency       invoice.Currency
	Fingerprint    string
	Outcome        risk.Decision
	Confidence     float64
	Recommendation string
	Result         risk.Result
	CreatedAt      time.Time
}

func newDecision(fingerprint string, result risk.Result) *Decision {
	return &Decision{
		InvoiceNumber:  result.ProcessedInvoice.InvoiceNumber,
		VendorName:     result.ProcessedInvoice.VendorName,
		Amount:         result.ProcessedInvoice.Amount,
		Currency:       result.ProcessedInvoice.Currency,
		Fingerprint:    fingerprint,
		Outcome:        result.Decision,
		Confidence:     result.ConfidenceScore,
		Recommendation: result.Recommendation,
		Result:         result,
	}
}
