package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/xyloai/xylo/internal/invoice"
)

// Engine applies the rule sequence and maps the outcome to a decision.
// It is stateless apart from its thresholds and safe for concurrent use.
type Engine struct {
	approvedThreshold float64
	reviewThreshold   float64
}

// NewEngine returns an Engine with the given decision thresholds. Confidence
// at or above approvedThreshold (and no HIGH flag) approves; below
// reviewThreshold rejects.
func NewEngine(approvedThreshold, reviewThreshold float64) *Engine {
	return &Engine{
		approvedThreshold: approvedThreshold,
		reviewThreshold:   reviewThreshold,
	}
}

// Evaluate runs the full rule sequence over one invoice and its security
// context. It is a total function: missing collaborator data degrades to
// "signal absent" instead of failing partway through.
func (e *Engine) Evaluate(inv invoice.Invoice, sec SecurityContext) Result {
	sec = sec.normalized()

	acc := accumulator{confidence: 1.0}
	for _, r := range rules {
		acc = r(inv, sec, acc)
	}

	// Clamp only at the very end; intermediate negatives are fine and keep
	// penalty stacking order-independent below the floor.
	confidence := clamp(acc.confidence)
	confidence = math.Round(confidence*100) / 100

	highCodes := highFlagCodes(acc.flags)
	decision, reasoning := e.decide(confidence, highCodes, len(acc.flags))

	suggestions := acc.suggestions
	if decision == DecisionApproved {
		suggestions = append([]Suggestion{{
			Icon:     "✅",
			Title:    "Ready for Payment",
			Detail:   "All checks passed. This invoice is cleared for payment processing.",
			Priority: PriorityInfo,
		}}, suggestions...)
	}

	return Result{
		ProcessedInvoice: inv,
		FraudFlags:       acc.flags,
		ConfidenceScore:  confidence,
		Decision:         decision,
		Reasoning:        reasoning,
		Recommendation:   recommendation(decision, suggestions),
		Suggestions:      suggestions,
	}
}

func (e *Engine) decide(confidence float64, highCodes []string, flagCount int) (Decision, string) {
	switch {
	case confidence >= e.approvedThreshold && len(highCodes) == 0:
		return DecisionApproved, "High confidence. Trust established, no critical flags."

	case confidence < e.reviewThreshold || len(highCodes) > 0:
		// A single HIGH flag rejects even at high confidence: flags
		// dominate the score.
		if len(highCodes) > 0 {
			return DecisionRejected, fmt.Sprintf("Critical risk detected: %s.", strings.Join(highCodes, ", "))
		}

		if flagCount == 0 {
			return DecisionRejected, "Low confidence score (unverified entity)."
		}

		return DecisionRejected, "Low confidence score across accumulated risk signals."

	default:
		return DecisionNeedsReview, "Confidence within review range."
	}
}

// recommendation picks the primary next step: the first URGENT suggestion in
// emission order wins verbatim, otherwise a canned instruction per decision.
func recommendation(decision Decision, suggestions []Suggestion) string {
	for _, s := range suggestions {
		if s.Priority == PriorityUrgent {
			return s.Detail
		}
	}

	switch decision {
	case DecisionApproved:
		return "Approve and schedule payment per the vendor's payment terms."
	case DecisionRejected:
		return "Reject this invoice and notify the submitter with the flagged reasons."
	default:
		return "Route to accounts payable for manual review."
	}
}

// normalized fills absent collaborator sub-results with defaults so every
// rule can evaluate in a single pass.
func (s SecurityContext) normalized() SecurityContext {
	if s.VendorStatus == "" {
		s.VendorStatus = VendorNew
	}

	if s.ERP == nil {
		s.ERP = &ERPValidation{Valid: false, Message: "No ERP validation available"}
	}

	if s.GST == nil {
		s.GST = &GSTValidation{Valid: false, Message: "No GST validation available"}
	}

	if s.Forensics == nil {
		s.Forensics = &Forensics{}
	}

	if s.Bank == nil {
		s.Bank = &BankValidation{Match: true, Reason: BankReasonVendorNotFound}
	}

	return s
}

func highFlagCodes(flags []FraudFlag) []string {
	var codes []string

	for _, f := range flags {
		if f.Severity == SeverityHigh {
			codes = append(codes, f.Code)
		}
	}

	return codes
}

func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
