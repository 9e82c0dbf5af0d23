// Package erp is the read-only system of record for purchase orders and
// vendor master data. The decision engine treats its results as opaque, so
// the matching strategy can change without touching the core.
package erp

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("erp: record not found")

// PurchaseOrder statuses as recorded in the ERP.
const (
	POStatusOpen   = "OPEN"
	POStatusClosed = "CLOSED"
)

// Vendor is a vendor master record.
type Vendor struct {
	ID           string
	Name         string
	PaymentTerms string
	RiskScore    int // 0 (clean) to 100 (blocked)
	BankAccount  string
	IFSC         string
	Email        string
}

// PurchaseOrder is a recorded purchase order.
type PurchaseOrder struct {
	Number    string
	Vendor    string
	Budget    decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// POCheck is the outcome of validating a PO number.
type POCheck struct {
	Valid   bool
	Message string
	PO      *PurchaseOrder
}

// VendorLookup is the outcome of resolving a vendor name against master
// data. Name carries the canonical master-data name when a match was found.
type VendorLookup struct {
	Exists  bool
	Name    string
	Vendor  *Vendor
	Message string
}
