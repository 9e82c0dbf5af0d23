package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		valid bool
	}{
		{name: "ValidMaharashtra", gstin: "27AAPFU0939F1ZV", valid: true},
		{name: "ValidOtherTerritory", gstin: "97AAPFU0939F1ZV", valid: true},
		{name: "StateCodeZero", gstin: "00AAPFU0939F1ZV", valid: false},
		{name: "StateCodeOutOfRange", gstin: "39AAPFU0939F1ZV", valid: false},
		{name: "TooShort", gstin: "27AAPFU0939F1Z", valid: false},
		{name: "MissingZMarker", gstin: "27AAPFU0939F1XV", valid: false},
		{name: "Lowercase", gstin: "27aapfu0939f1zv", valid: false},
		{name: "Empty", gstin: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateGSTIN(tt.gstin)

			assert.Equal(t, tt.valid, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}
