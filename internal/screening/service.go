// Package screening assembles the SecurityContext for the risk engine from
// the collaborator checks: duplicate fingerprinting, vendor trust, ERP
// purchase-order validation, tax-ID validation, document forensics and bank
// detail matching. A collaborator failure degrades the corresponding signal
// to "absent"; the engine is never handed a partial error.
package screening

import (
	"context"
	"log/slog"

	"github.com/xyloai/xylo/internal/erp"
	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=screening
type ERP interface {
	CheckPO(ctx context.Context, poNumber string) (erp.POCheck, error)
	LookupVendor(ctx context.Context, name string) (erp.VendorLookup, error)
}

// DuplicateChecker reports whether an invoice fingerprint was seen before.
// The decision store implements it.
type DuplicateChecker interface {
	FingerprintExists(ctx context.Context, fingerprint string) (bool, error)
}

type Service struct {
	erp        ERP
	duplicates DuplicateChecker
}

func NewService(erpSvc ERP, duplicates DuplicateChecker) *Service {
	return &Service{erp: erpSvc, duplicates: duplicates}
}

// Build runs every screening check for one extracted invoice. docMeta is the
// source document's metadata (nil for plain-text submissions).
func (s *Service) Build(ctx context.Context, inv invoice.Invoice, docMeta map[string]string) risk.SecurityContext {
	sec := risk.SecurityContext{
		Fingerprint: Fingerprint(inv.VendorName, inv.InvoiceNumber, inv.Amount),
	}

	isDuplicate, err := s.duplicates.FingerprintExists(ctx, sec.Fingerprint)
	if err != nil {
		slog.Warn("duplicate check unavailable", "error", err)
	}

	sec.IsDuplicate = isDuplicate

	lookup, err := s.erp.LookupVendor(ctx, inv.VendorName)
	if err != nil {
		slog.Warn("vendor lookup unavailable", "vendor", inv.VendorName, "error", err)

		lookup = erp.VendorLookup{Exists: false}
	}

	sec.VendorStatus, sec.VendorScore = trustTier(lookup)

	if inv.PONumber != nil {
		sec.ERP = s.checkPO(ctx, *inv.PONumber)
	}

	if inv.GSTIN != nil {
		gst := validateGSTIN(*inv.GSTIN)
		sec.GST = &gst
	}

	forensics := analyzeMetadata(docMeta)
	sec.Forensics = &forensics

	bank := matchBankDetails(lookup, inv)
	sec.Bank = &bank

	return sec
}

func (s *Service) checkPO(ctx context.Context, poNumber string) *risk.ERPValidation {
	check, err := s.erp.CheckPO(ctx, poNumber)
	if err != nil {
		slog.Warn("erp po check unavailable", "po", poNumber, "error", err)

		return &risk.ERPValidation{Valid: false, Message: "ERP validation unavailable"}
	}

	validation := &risk.ERPValidation{Valid: check.Valid, Message: check.Message}
	if check.PO != nil {
		validation.Details = &risk.PODetails{
			Vendor: check.PO.Vendor,
			Budget: check.PO.Budget,
			Status: check.PO.Status,
		}
	}

	return validation
}

// trustTier maps a vendor master record to the trust tiers the decision
// engine understands. Unknown vendors land in the NEW tier with a neutral
// score.
func trustTier(lookup erp.VendorLookup) (risk.VendorStatus, int) {
	if !lookup.Exists || lookup.Vendor == nil {
		return risk.VendorNew, 50
	}

	score := 100 - lookup.Vendor.RiskScore
	if score < 0 {
		score = 0
	}

	switch {
	case lookup.Vendor.RiskScore >= 80:
		return risk.VendorFlagged, score
	case lookup.Vendor.RiskScore <= 20:
		return risk.VendorTrusted, score
	default:
		return risk.VendorNew, score
	}
}

// matchBankDetails compares the bank identifiers on the invoice against the
// vendor master record. Absent a master record the result is a vacuous
// match, marked so the engine does not present it as a verification.
func matchBankDetails(lookup erp.VendorLookup, inv invoice.Invoice) risk.BankValidation {
	if !lookup.Exists || lookup.Vendor == nil {
		return risk.BankValidation{Match: true, Reason: risk.BankReasonVendorNotFound}
	}

	vendor := lookup.Vendor

	if inv.AccountNumber != nil && vendor.BankAccount != "" && *inv.AccountNumber != vendor.BankAccount {
		return risk.BankValidation{Match: false, Reason: "account number differs from vendor master record"}
	}

	if inv.IFSC != nil && vendor.IFSC != "" && *inv.IFSC != vendor.IFSC {
		return risk.BankValidation{Match: false, Reason: "IFSC differs from vendor master record"}
	}

	if inv.AccountNumber == nil && inv.IFSC == nil {
		return risk.BankValidation{Match: true, Reason: "no bank details on invoice to compare"}
	}

	return risk.BankValidation{Match: true, Reason: "bank details match vendor master record"}
}
