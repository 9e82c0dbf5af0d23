package invoice

import (
	"github.com/shopspring/decimal"
)

// Currency is the detected invoice currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Defaults used when a field could not be extracted. Downstream rules must
// treat these as "unknown", not as validated values.
const (
	DefaultVendorName    = "Unknown Vendor"
	DefaultInvoiceNumber = "UNK-000"
)

// Invoice is the typed result of extracting fields from raw invoice text.
// Optional fields are nil when no pattern matched; VendorName, InvoiceNumber,
// Amount and Currency fall back to their defaults instead.
type Invoice struct {
	VendorName    string          `json:"vendor_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	Date          *string         `json:"date,omitempty"`
	PONumber      *string         `json:"po_number,omitempty"`
	GSTIN         *string         `json:"gstin,omitempty"`
	IBAN          *string         `json:"iban,omitempty"`
	IFSC          *string         `json:"ifsc,omitempty"`
	AccountNumber *string         `json:"account_number,omitempty"`
}

// New returns an Invoice populated with field defaults.
func New() Invoice {
	return Invoice{
		VendorName:    DefaultVendorName,
		InvoiceNumber: DefaultInvoiceNumber,
		Amount:        decimal.Zero,
		Currency:      CurrencyUSD,
	}
}
