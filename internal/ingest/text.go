package ingest

import (
	"fmt"

	"github.com/xyloai/xylo/internal/encoding"
)

// readText decodes plain-text submissions to UTF-8. Invoices exported from
// legacy systems regularly arrive in Windows-1252 or UTF-16.
func readText(data []byte) (Document, error) {
	text, err := encoding.DecodeBytes(data)
	if err != nil {
		return Document{}, fmt.Errorf("decoding text: %w", err)
	}

	return Document{Text: text}, nil
}
