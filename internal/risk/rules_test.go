package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyloai/xylo/internal/risk"
)

func TestEvaluate_AmountTiers(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		status     risk.VendorStatus
		wantScore  float64
		wantTitles []string
	}{
		{
			name:       "ZeroAmountIsExtractionMissNotFraud",
			amount:     0,
			status:     risk.VendorTrusted,
			wantScore:  1.0,
			wantTitles: []string{"Amount Not Extracted"},
		},
		{
			name:       "SeniorTierTrusted",
			amount:     150000,
			status:     risk.VendorTrusted,
			wantScore:  0.95,
			wantTitles: []string{"Senior Approval Required"},
		},
		{
			name:       "SeniorTierUntrusted",
			amount:     150000,
			status:     risk.VendorNew,
			wantScore:  0.5,
			wantTitles: []string{"Senior Approval Required"},
		},
		{
			name:       "MidTierUntrusted",
			amount:     50000,
			status:     risk.VendorNew,
			wantScore:  0.6,
			wantTitles: []string{"Verify Against Purchase Order"},
		},
		{
			name:       "MidTierTrustedIsNormal",
			amount:     50000,
			status:     risk.VendorTrusted,
			wantScore:  1.0,
			wantTitles: []string{"Amount Within Normal Range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := trustedInvoice(tt.amount)

			sec := validPOContext(500000)
			sec.VendorStatus = tt.status

			result := newEngine().Evaluate(inv, sec)

			assert.InDelta(t, tt.wantScore, result.ConfidenceScore, 0.001)

			for _, title := range tt.wantTitles {
				assert.True(t, hasSuggestion(result, title), "missing suggestion %q", title)
			}
		})
	}
}

func TestEvaluate_PurchaseOrderBranches(t *testing.T) {
	t.Run("InvalidPO", func(t *testing.T) {
		inv := trustedInvoice(4500)

		sec := validPOContext(15000)
		sec.ERP = &risk.ERPValidation{Valid: false, Message: "PO PO-1001 is CLOSED (cannot accept invoices)"}

		result := newEngine().Evaluate(inv, sec)

		assert.Equal(t, risk.DecisionRejected, result.Decision)
		assert.True(t, hasFlag(result, risk.FlagPOValidationFailed))
		assert.InDelta(t, 0.5, result.ConfidenceScore, 0.001)
		assert.Contains(t, result.Recommendation, "PO-1001")
	})

	t.Run("OverBudgetIsPenaltyWithoutFlag", func(t *testing.T) {
		inv := trustedInvoice(20000)

		result := newEngine().Evaluate(inv, validPOContext(15000))

		assert.False(t, hasFlag(result, risk.FlagPOValidationFailed))
		assert.InDelta(t, 0.85, result.ConfidenceScore, 0.001)
		assert.True(t, hasSuggestion(result, "Invoice Exceeds PO Budget"))
	})

	t.Run("MissingPOHighValue", func(t *testing.T) {
		inv := trustedInvoice(20000)
		inv.PONumber = nil

		result := newEngine().Evaluate(inv, validPOContext(15000))

		assert.True(t, hasFlag(result, risk.FlagMissingPOHighValue))
		assert.InDelta(t, 0.9, result.ConfidenceScore, 0.001)
		assert.True(t, hasSuggestion(result, "Request Purchase Order"))
	})

	t.Run("MissingPOLowValue", func(t *testing.T) {
		inv := trustedInvoice(500)
		inv.PONumber = nil

		result := newEngine().Evaluate(inv, validPOContext(15000))

		assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
		assert.True(t, hasSuggestion(result, "No PO Reference"))
	})
}

func TestEvaluate_ForensicsFlagsPerFindingSinglePenalty(t *testing.T) {
	inv := trustedInvoice(4500)

	sec := validPOContext(15000)
	sec.Forensics = &risk.Forensics{
		Suspicious: true,
		Flags: []string{
			"producer is a known PDF editor",
			"document modified after creation",
		},
	}

	result := newEngine().Evaluate(inv, sec)

	var tampering int

	for _, f := range result.FraudFlags {
		if f.Code == risk.FlagDocumentTampering {
			tampering++

			assert.Equal(t, risk.SeverityHigh, f.Severity)
		}
	}

	assert.Equal(t, 2, tampering, "one flag per forensic finding")
	// Penalty applies once: 1.0 - 0.5, not 1.0 - 2*0.5.
	assert.InDelta(t, 0.5, result.ConfidenceScore, 0.001)
	assert.Contains(t, result.Recommendation, "producer is a known PDF editor")
	assert.Contains(t, result.Recommendation, "document modified after creation")
}

func TestEvaluate_BankAccountRule(t *testing.T) {
	t.Run("MismatchRejects", func(t *testing.T) {
		inv := trustedInvoice(4500)

		sec := validPOContext(15000)
		sec.Bank = &risk.BankValidation{Match: false, Reason: "account number differs from master record"}

		result := newEngine().Evaluate(inv, sec)

		assert.Equal(t, risk.DecisionRejected, result.Decision)
		assert.True(t, hasFlag(result, risk.FlagBankMismatch))
		assert.InDelta(t, 0.4, result.ConfidenceScore, 0.001)
	})

	t.Run("MatchVerified", func(t *testing.T) {
		inv := trustedInvoice(4500)

		sec := validPOContext(15000)
		sec.Bank = &risk.BankValidation{Match: true, Reason: "account and IFSC match master record"}

		result := newEngine().Evaluate(inv, sec)

		assert.True(t, hasSuggestion(result, "Bank Account Verified"))
	})

	t.Run("VendorNotFoundSuppressed", func(t *testing.T) {
		inv := trustedInvoice(4500)

		sec := validPOContext(15000)
		sec.Bank = &risk.BankValidation{Match: true, Reason: risk.BankReasonVendorNotFound}

		result := newEngine().Evaluate(inv, sec)

		assert.False(t, hasSuggestion(result, "Bank Account Verified"))
	})
}

func TestEvaluate_DatePresence(t *testing.T) {
	inv := trustedInvoice(4500)
	inv.Date = nil

	result := newEngine().Evaluate(inv, validPOContext(15000))

	require.True(t, hasSuggestion(result, "Add Invoice Date"))
	// Missing date never flags or penalizes.
	assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
	assert.Empty(t, highSeverity(result))
}

func TestEvaluate_GSTBranches(t *testing.T) {
	t.Run("ValidGSTIN", func(t *testing.T) {
		inv := trustedInvoice(4500)
		inv.GSTIN = str("27AAPFU0939F1ZV")

		sec := validPOContext(15000)
		sec.GST = &risk.GSTValidation{Valid: true, Message: "GSTIN structure valid"}

		result := newEngine().Evaluate(inv, sec)

		assert.True(t, hasSuggestion(result, "Tax ID Verified"))
		assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
	})

	t.Run("MissingGSTINIsReminderOnly", func(t *testing.T) {
		result := newEngine().Evaluate(trustedInvoice(4500), validPOContext(15000))

		assert.True(t, hasSuggestion(result, "No Tax ID On Invoice"))
		assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
	})
}

func hasSuggestion(result risk.Result, title string) bool {
	for _, s := range result.Suggestions {
		if s.Title == title {
			return true
		}
	}

	return false
}

func hasFlag(result risk.Result, code string) bool {
	for _, f := range result.FraudFlags {
		if f.Code == code {
			return true
		}
	}

	return false
}

func highSeverity(result risk.Result) []risk.FraudFlag {
	var high []risk.FraudFlag

	for _, f := range result.FraudFlags {
		if f.Severity == risk.SeverityHigh {
			high = append(high, f)
		}
	}

	return high
}
