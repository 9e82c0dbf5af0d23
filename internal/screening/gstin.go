package screening

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/xyloai/xylo/internal/risk"
)

var gstinShape = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// validateGSTIN checks the structural shape and the embedded state code of
// an Indian GST identification number. It does not call the GST registry.
func validateGSTIN(gstin string) risk.GSTValidation {
	if !gstinShape.MatchString(gstin) {
		return risk.GSTValidation{Valid: false, Message: fmt.Sprintf("GSTIN %s does not match the required 15-character format", gstin)}
	}

	state, err := strconv.Atoi(gstin[:2])
	if err != nil || !validStateCode(state) {
		return risk.GSTValidation{Valid: false, Message: fmt.Sprintf("GSTIN %s carries an invalid state code %s", gstin, gstin[:2])}
	}

	return risk.GSTValidation{Valid: true, Message: "GSTIN structure and state code valid"}
}

// State codes 01-38 cover states and union territories; 97 is reserved for
// other territory registrations.
func validStateCode(code int) bool {
	return (code >= 1 && code <= 38) || code == 97
}
