package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xyloai/xylo/internal/erp"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectVendorColumns = `id, name, payment_terms, risk_score, bank_account, ifsc, email`

func scanVendor(row *sql.Row) (*erp.Vendor, error) {
	var v erp.Vendor

	err := row.Scan(&v.ID, &v.Name, &v.PaymentTerms, &v.RiskScore, &v.BankAccount, &v.IFSC, &v.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, erp.ErrNotFound
		}

		return nil, err
	}

	return &v, nil
}

func (s *Store) GetPurchaseOrder(ctx context.Context, number string) (*erp.PurchaseOrder, error) {
	query := `
		SELECT po_number, vendor_name, budget, status, created_at
		FROM purchase_orders
		WHERE po_number = $1
	`

	var po erp.PurchaseOrder

	err := s.db.QueryRowContext(ctx, query, number).
		Scan(&po.Number, &po.Vendor, &po.Budget, &po.Status, &po.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, erp.ErrNotFound
		}

		return nil, fmt.Errorf("getting purchase order: %w", err)
	}

	return &po, nil
}

func (s *Store) GetVendorExact(ctx context.Context, name string) (*erp.Vendor, error) {
	query := `SELECT ` + selectVendorColumns + ` FROM vendors WHERE name = $1`

	v, err := scanVendor(s.db.QueryRowContext(ctx, query, name))
	if err != nil && err != erp.ErrNotFound {
		return nil, fmt.Errorf("getting vendor: %w", err)
	}

	return v, err
}

func (s *Store) GetVendorFold(ctx context.Context, name string) (*erp.Vendor, error) {
	query := `SELECT ` + selectVendorColumns + ` FROM vendors WHERE LOWER(name) = LOWER($1)`

	v, err := scanVendor(s.db.QueryRowContext(ctx, query, name))
	if err != nil && err != erp.ErrNotFound {
		return nil, fmt.Errorf("getting vendor (fold): %w", err)
	}

	return v, err
}

// GetVendorSubstring matches in either direction: the extracted name inside
// a master name, or a master name inside the extracted name. The longest
// master name wins to avoid matching an overly generic record.
func (s *Store) GetVendorSubstring(ctx context.Context, name string) (*erp.Vendor, error) {
	query := `
		SELECT ` + selectVendorColumns + `
		FROM vendors
		WHERE name ILIKE '%' || $1 || '%' OR $1 ILIKE '%' || name || '%'
		ORDER BY LENGTH(name) DESC
		LIMIT 1
	`

	v, err := scanVendor(s.db.QueryRowContext(ctx, query, name))
	if err != nil && err != erp.ErrNotFound {
		return nil, fmt.Errorf("getting vendor (substring): %w", err)
	}

	return v, err
}

func (s *Store) ListVendors(ctx context.Context) ([]*erp.Vendor, error) {
	query := `SELECT ` + selectVendorColumns + ` FROM vendors ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*erp.Vendor

	for rows.Next() {
		var v erp.Vendor

		if err := rows.Scan(&v.ID, &v.Name, &v.PaymentTerms, &v.RiskScore, &v.BankAccount, &v.IFSC, &v.Email); err != nil {
			return nil, fmt.Errorf("scanning vendor: %w", err)
		}

		vendors = append(vendors, &v)
	}

	return vendors, rows.Err()
}
