package screening

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	base := Fingerprint("Acme Corp", "INV-001", decimal.NewFromFloat(1500.50))

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, base, Fingerprint("Acme Corp", "INV-001", decimal.NewFromFloat(1500.50)))
		assert.Len(t, base, 64)
	})

	t.Run("NormalizesVendorCaseAndWhitespace", func(t *testing.T) {
		assert.Equal(t, base, Fingerprint("  ACME corp ", "INV-001", decimal.NewFromFloat(1500.50)))
	})

	t.Run("AmountChangesDigest", func(t *testing.T) {
		assert.NotEqual(t, base, Fingerprint("Acme Corp", "INV-001", decimal.NewFromFloat(1500.51)))
	})

	t.Run("InvoiceNumberIsCaseSensitive", func(t *testing.T) {
		assert.NotEqual(t, base, Fingerprint("Acme Corp", "inv-001", decimal.NewFromFloat(1500.50)))
	})
}
