package risk

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xyloai/xylo/internal/invoice"
)

// Amount thresholds used by the tiering rules.
var (
	reviewAmount = decimal.NewFromInt(10000)
	seniorAmount = decimal.NewFromInt(100000)
)

// accumulator is threaded through the rule sequence. Rules return a new
// value instead of mutating shared state, which keeps the order and
// interaction of penalties explicit.
type accumulator struct {
	confidence  float64
	flags       []FraudFlag
	suggestions []Suggestion
}

func (a accumulator) penalize(delta float64) accumulator {
	a.confidence -= delta
	return a
}

// override hard-sets the confidence, ignoring whatever the previous rules
// accumulated.
func (a accumulator) override(confidence float64) accumulator {
	a.confidence = confidence
	return a
}

func (a accumulator) flag(code, description string, severity Severity) accumulator {
	a.flags = append(a.flags, FraudFlag{Code: code, Description: description, Severity: severity})
	return a
}

func (a accumulator) suggest(icon, title, detail string, priority Priority) accumulator {
	a.suggestions = append(a.suggestions, Suggestion{Icon: icon, Title: title, Detail: detail, Priority: priority})
	return a
}

type rule func(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator

// rules fire in a fixed, meaningful order: the position a suggestion lands at
// decides which URGENT detail becomes the primary recommendation. Reordering
// is a behavior change, not a refactor.
var rules = []rule{
	vendorTrustRule,
	duplicateRule,
	amountRule,
	purchaseOrderRule,
	taxIDRule,
	forensicsRule,
	bankAccountRule,
	datePresenceRule,
}

func vendorTrustRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	switch sec.VendorStatus {
	case VendorFlagged:
		return acc.
			flag(FlagHighRiskVendor, "Vendor flagged by security system", SeverityHigh).
			penalize(0.6).
			suggest("🚫", "Block Vendor Payment",
				"Block payment: this vendor is flagged in the security system. Escalate to the fraud team before taking any further action.",
				PriorityUrgent)
	case VendorTrusted:
		return acc.suggest("✅", "Vendor Verified",
			fmt.Sprintf("%s is a trusted vendor with an established payment history.", inv.VendorName),
			PriorityInfo)
	default:
		return acc.
			flag(FlagNewVendorEntity, "First time vendor (verification required)", SeverityMedium).
			penalize(0.15).
			suggest("📋", "Complete Vendor Onboarding",
				"This is a first-time vendor. Complete onboarding and collect verified contact and bank details before payment.",
				PriorityHigh)
	}
}

func duplicateRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	if !sec.IsDuplicate {
		return acc
	}

	return acc.
		flag(FlagDuplicateInvoice,
			fmt.Sprintf("Identical invoice %s already processed", inv.InvoiceNumber),
			SeverityHigh).
		override(0).
		suggest("🔁", "Reject Duplicate Submission",
			"Reject this invoice: an identical invoice fingerprint has already been processed. Confirm with the vendor whether this is a resubmission.",
			PriorityUrgent)
}

func amountRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	trusted := sec.VendorStatus == VendorTrusted

	switch {
	case inv.Amount.IsZero():
		// Extraction failure, not a fraud signal: no flag, no penalty.
		return acc.suggest("💰", "Amount Not Extracted",
			"The invoice amount could not be extracted from the document. Confirm the total manually before processing.",
			PriorityHigh)

	case inv.Amount.GreaterThan(seniorAmount):
		acc = acc.suggest("🔏", "Senior Approval Required",
			fmt.Sprintf("Amount %s %s exceeds the senior-approval threshold. Route to a senior approver.", inv.Currency, inv.Amount),
			PriorityHigh)

		if trusted {
			return acc.penalize(0.05)
		}

		return acc.
			flag(FlagAmountSpike,
				fmt.Sprintf("Amount %s exceeds the automated limit for an unverified vendor", inv.Amount),
				SeverityHigh).
			penalize(0.35)

	case inv.Amount.GreaterThan(reviewAmount) && !trusted:
		return acc.
			flag(FlagAmountAboveLimit,
				fmt.Sprintf("Amount %s exceeds the automated threshold for this vendor tier", inv.Amount),
				SeverityMedium).
			penalize(0.25).
			suggest("🔍", "Verify Against Purchase Order",
				"Verify the invoice amount against the purchase order and goods receipt before approving.",
				PriorityHigh)

	default:
		return acc.suggest("✅", "Amount Within Normal Range",
			fmt.Sprintf("Amount %s %s is within the normal processing range.", inv.Currency, inv.Amount),
			PriorityInfo)
	}
}

func purchaseOrderRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	if inv.PONumber == nil {
		if inv.Amount.GreaterThan(reviewAmount) {
			return acc.
				flag(FlagMissingPOHighValue,
					"High value invoice is missing a purchase order reference",
					SeverityMedium).
				penalize(0.1).
				suggest("🧾", "Request Purchase Order",
					"Request a PO reference from the vendor, or route this invoice through the non-PO approval workflow.",
					PriorityHigh)
		}

		return acc.suggest("🧾", "No PO Reference",
			"No purchase order reference was found. Low-value invoices may proceed through the non-PO workflow.",
			PriorityMedium)
	}

	erp := sec.ERP

	if !erp.Valid {
		return acc.
			flag(FlagPOValidationFailed, erp.Message, SeverityHigh).
			penalize(0.5).
			suggest("🚫", "Resolve Purchase Order",
				fmt.Sprintf("Hold payment: purchase order %s failed ERP validation (%s).", *inv.PONumber, erp.Message),
				PriorityUrgent)
	}

	if erp.Details != nil && inv.Amount.GreaterThan(erp.Details.Budget) {
		return acc.
			penalize(0.15).
			suggest("📈", "Invoice Exceeds PO Budget",
				fmt.Sprintf("Invoice amount %s exceeds the recorded budget %s for PO %s. Obtain a budget amendment or partial approval.",
					inv.Amount, erp.Details.Budget, *inv.PONumber),
				PriorityHigh)
	}

	return acc.suggest("✅", "PO Matched Successfully",
		fmt.Sprintf("Purchase order %s is open and covers the invoice amount.", *inv.PONumber),
		PriorityInfo)
}

func taxIDRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	if inv.GSTIN == nil {
		return acc.suggest("🧾", "No Tax ID On Invoice",
			"No GSTIN was found on the invoice. Confirm whether the vendor is registered for GST.",
			PriorityMedium)
	}

	gst := sec.GST

	if !gst.Valid {
		return acc.
			flag(FlagGSTINInvalid, gst.Message, SeverityHigh).
			penalize(0.4).
			suggest("🚫", "Invalid Tax ID",
				fmt.Sprintf("Do not pay: GSTIN %s failed validation (%s). Request a corrected invoice from the vendor.", *inv.GSTIN, gst.Message),
				PriorityUrgent)
	}

	return acc.suggest("✅", "Tax ID Verified",
		fmt.Sprintf("GSTIN %s passed validation.", *inv.GSTIN),
		PriorityInfo)
}

func forensicsRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	forensics := sec.Forensics

	if !forensics.Suspicious {
		return acc.suggest("✅", "Document Forensics Clear",
			"No signs of document tampering were detected.",
			PriorityInfo)
	}

	for _, finding := range forensics.Flags {
		acc = acc.flag(FlagDocumentTampering, finding, SeverityHigh)
	}

	// The penalty applies once, however many findings there are.
	return acc.
		penalize(0.5).
		suggest("🔬", "Investigate Document Tampering",
			"Document forensics raised: "+strings.Join(forensics.Flags, "; ")+". Request the original document directly from the vendor.",
			PriorityUrgent)
}

func bankAccountRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	bank := sec.Bank

	if !bank.Match {
		return acc.
			flag(FlagBankMismatch, bank.Reason, SeverityHigh).
			penalize(0.6).
			suggest("🏦", "Verify Bank Account",
				fmt.Sprintf("Do not pay: the bank details on the invoice do not match the vendor master record (%s). Confirm account changes through a known contact.", bank.Reason),
				PriorityUrgent)
	}

	// A match that only holds because no master record exists is not a
	// verification; stay silent rather than claim one.
	if bank.Reason == BankReasonVendorNotFound {
		return acc
	}

	return acc.suggest("✅", "Bank Account Verified",
		"The bank details on the invoice match the vendor master record.",
		PriorityInfo)
}

func datePresenceRule(inv invoice.Invoice, sec SecurityContext, acc accumulator) accumulator {
	if inv.Date != nil {
		return acc
	}

	return acc.suggest("📅", "Add Invoice Date",
		"No invoice date was found. Confirm the issue date with the vendor for accurate payment terms.",
		PriorityMedium)
}
