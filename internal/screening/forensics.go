package screening

import (
	"fmt"
	"strings"

	"github.com/xyloai/xylo/internal/risk"
)

// Software commonly used to alter a finished document. A legitimate invoice
// generator appearing here would be a false positive, so the list is kept to
// tools that are editors first.
var editorProducers = []string{
	"photoshop",
	"gimp",
	"canva",
	"ilovepdf",
	"sejda",
	"smallpdf",
	"pdfescape",
	"inkscape",
}

// analyzeMetadata inspects document metadata for signs of tampering. Empty
// metadata is common for text submissions and is not suspicious on its own.
func analyzeMetadata(meta map[string]string) risk.Forensics {
	var findings []string

	for _, key := range []string{"Producer", "Creator"} {
		value := strings.ToLower(meta[key])
		if value == "" {
			continue
		}

		for _, editor := range editorProducers {
			if strings.Contains(value, editor) {
				findings = append(findings, fmt.Sprintf("document %s is a known editing tool (%s)", strings.ToLower(key), meta[key]))
				break
			}
		}
	}

	created, modified := meta["CreationDate"], meta["ModDate"]

	// A producer that strips the creation date is itself a signal, but only
	// when the document carries metadata at all.
	if len(meta) > 0 && created == "" {
		findings = append(findings, "document metadata is missing a creation date")
	}

	if created != "" && modified != "" && created != modified {
		findings = append(findings, "document was modified after creation")
	}

	return risk.Forensics{
		Suspicious: len(findings) > 0,
		Flags:      findings,
	}
}
