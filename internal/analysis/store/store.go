package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xyloai/xylo/internal/analysis"
	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

// Store persists decisions in Postgres. The log is append-only: decisions
// are evidence and are never updated or deleted.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveDecision(ctx context.Context, decision *analysis.Decision) error {
	result, err := json.Marshal(decision.Result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	query := `
		INSERT INTO decisions (invoice_number, vendor_name, amount, currency, fingerprint, outcome, confidence, recommendation, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		decision.InvoiceNumber,
		decision.VendorName,
		decision.Amount,
		decision.Currency,
		decision.Fingerprint,
		decision.Outcome,
		decision.Confidence,
		decision.Recommendation,
		result,
	).Scan(&decision.ID, &decision.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving decision: %w", err)
	}

	return nil
}

func (s *Store) ListDecisions(ctx context.Context, limit int) ([]*analysis.Decision, error) {
	query := `
		SELECT id, invoice_number, vendor_name, amount, currency, fingerprint, outcome, confidence, recommendation, result, created_at
		FROM decisions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var decisions []*analysis.Decision

	for rows.Next() {
		var d analysis.Decision

		var currency, outcome string

		var result []byte

		if err := rows.Scan(
			&d.ID, &d.InvoiceNumber, &d.VendorName, &d.Amount, &currency,
			&d.Fingerprint, &outcome, &d.Confidence, &d.Recommendation,
			&result, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}

		d.Currency = invoice.Currency(currency)
		d.Outcome = risk.Decision(outcome)

		if err := json.Unmarshal(result, &d.Result); err != nil {
			return nil, fmt.Errorf("decoding result: %w", err)
		}

		decisions = append(decisions, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decision rows: %w", err)
	}

	return decisions, nil
}

func (s *Store) FingerprintExists(ctx context.Context, fingerprint string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM decisions WHERE fingerprint = $1)`
	if err := s.db.QueryRowContext(ctx, query, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking fingerprint: %w", err)
	}

	return exists, nil
}
