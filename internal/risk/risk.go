// Package risk evaluates an extracted invoice against externally supplied
// security signals and produces the final verdict: decision, confidence
// score, fraud flags and remediation suggestions.
package risk

import (
	"github.com/shopspring/decimal"

	"github.com/xyloai/xylo/internal/invoice"
)

// Severity of a fraud flag. Any HIGH flag blocks approval outright.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Priority orders suggestions for the reviewer.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityInfo   Priority = "INFO"
)

// Decision is the final verdict for an invoice.
type Decision string

const (
	DecisionApproved    Decision = "APPROVED"
	DecisionRejected    Decision = "REJECTED"
	DecisionNeedsReview Decision = "NEEDS_REVIEW"
)

// VendorStatus is the trust tier resolved by the vendor master lookup.
type VendorStatus string

const (
	VendorTrusted VendorStatus = "TRUSTED"
	VendorNew     VendorStatus = "NEW"
	VendorFlagged VendorStatus = "FLAGGED"
)

// Fraud flag codes emitted by the rule set.
const (
	FlagHighRiskVendor     = "HIGH_RISK_VENDOR"
	FlagNewVendorEntity    = "NEW_VENDOR_ENTITY"
	FlagDuplicateInvoice   = "DUPLICATE_INVOICE_FINGERPRINT"
	FlagAmountSpike        = "AMOUNT_SPIKE_DETECTED"
	FlagAmountAboveLimit   = "AMOUNT_ABOVE_AUTO_LIMIT"
	FlagPOValidationFailed = "PO_VALIDATION_FAILED"
	FlagMissingPOHighValue = "MISSING_PO_HIGH_VALUE"
	FlagGSTINInvalid       = "GSTIN_VALIDATION_FAILED"
	FlagDocumentTampering  = "DOCUMENT_TAMPERING_SUSPECTED"
	FlagBankMismatch       = "BANK_ACCOUNT_MISMATCH"
)

// BankReasonVendorNotFound marks a bank validation that passed only because
// there was no vendor master record to compare against. The engine suppresses
// the "verified" suggestion for it, to avoid claiming a check that never ran.
const BankReasonVendorNotFound = "vendor not found in master data"

// FraudFlag is an immutable risk finding. Flags accumulate, they are never
// mutated or removed.
type FraudFlag struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Suggestion is a human-readable remediation step. List order is the order
// rules fired, except the summary suggestion prepended on approval.
type Suggestion struct {
	Icon     string   `json:"icon"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
	Priority Priority `json:"priority"`
}

// ERPValidation is the purchase-order check supplied by the ERP collaborator.
type ERPValidation struct {
	Valid   bool       `json:"valid"`
	Message string     `json:"message"`
	Details *PODetails `json:"details,omitempty"`
}

// PODetails carries the recorded purchase order the invoice claims.
type PODetails struct {
	Vendor string          `json:"vendor"`
	Budget decimal.Decimal `json:"budget"`
	Status string          `json:"status"`
}

// GSTValidation is the tax-ID check result.
type GSTValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Forensics is the document-forensics result.
type Forensics struct {
	Suspicious bool     `json:"is_suspicious"`
	Flags      []string `json:"flags"`
}

// BankValidation is the vendor bank-account match result.
type BankValidation struct {
	Match  bool   `json:"match"`
	Reason string `json:"reason"`
}

// SecurityContext bundles every externally supplied signal. Nil sub-results
// mean the corresponding check never ran; the engine treats them as absent
// rather than failing.
type SecurityContext struct {
	IsDuplicate  bool
	Fingerprint  string
	VendorStatus VendorStatus
	VendorScore  int
	ERP          *ERPValidation
	GST          *GSTValidation
	Forensics    *Forensics
	Bank         *BankValidation
}

// Result is the full analysis outcome handed to persistence and callers.
type Result struct {
	ProcessedInvoice invoice.Invoice `json:"processed_invoice"`
	FraudFlags       []FraudFlag     `json:"fraud_flags"`
	ConfidenceScore  float64         `json:"confidence_score"`
	Decision         Decision        `json:"decision"`
	Reasoning        string          `json:"reasoning"`
	Recommendation   string          `json:"recommendation"`
	Suggestions      []Suggestion    `json:"suggestions"`
}
