package decision

import (
	"time"

	"github.com/google/uuid"

	"github.com/xyloai/xylo/internal/analysis"
	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

type decisionResponse struct {
	ID             uuid.UUID        `json:"id"`
	InvoiceNumber  string           `json:"invoice_number"`
	VendorName     string           `json:"vendor_name"`
	Amount         string           `json:"amount"`
	Currency       invoice.Currency `json:"currency"`
	Fingerprint    string           `json:"fingerprint"`
	Decision       risk.Decision    `json:"decision"`
	Confidence     float64          `json:"confidence"`
	Recommendation string           `json:"recommendation"`
	Result         risk.Result      `json:"result"`
	CreatedAt      time.Time        `json:"created_at"`
}

func toResponse(d *analysis.Decision) decisionResponse {
	return decisionResponse{
		ID:             d.ID,
		InvoiceNumber:  d.InvoiceNumber,
		VendorName:     d.VendorName,
		Amount:         d.Amount.String(),
		Currency:       d.Currency,
		Fingerprint:    d.Fingerprint,
		Decision:       d.Outcome,
		Confidence:     d.Confidence,
		Recommendation: d.Recommendation,
		Result:         d.Result,
		CreatedAt:      d.CreatedAt,
	}
}

func toResponseList(decisions []*analysis.Decision) []decisionResponse {
	resp := make([]decisionResponse, len(decisions))
	for i, d := range decisions {
		resp[i] = toResponse(d)
	}

	return resp
}
