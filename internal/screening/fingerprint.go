package screening

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Fingerprint computes the deterministic duplicate-detection digest over the
// normalized vendor name, invoice number and amount. Exact-match only: two
// submissions collide iff all three components are identical.
func Fingerprint(vendorName, invoiceNumber string, amount decimal.Decimal) string {
	raw := fmt.Sprintf("%s-%s-%s",
		strings.ToLower(strings.TrimSpace(vendorName)),
		strings.TrimSpace(invoiceNumber),
		amount.String(),
	)

	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
