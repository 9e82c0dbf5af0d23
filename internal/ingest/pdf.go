package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF extracts the text layer row by row and collects the Info
// dictionary for forensics. Scanned PDFs without a text layer come back
// with empty text rather than an error.
func readPDF(data []byte) (Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("opening pdf: %w", err)
	}

	var text strings.Builder

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return Document{}, fmt.Errorf("reading pdf page %d: %w", pageNum, err)
		}

		for _, row := range rows {
			for _, word := range row.Content {
				text.WriteString(word.S)
			}

			text.WriteString("\n")
		}
	}

	return Document{
		Text:     text.String(),
		Metadata: infoMetadata(reader),
	}, nil
}

func infoMetadata(reader *pdf.Reader) map[string]string {
	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil
	}

	meta := make(map[string]string)

	for _, key := range info.Keys() {
		value := info.Key(key)

		switch value.Kind() {
		case pdf.String:
			meta[key] = value.Text()
		case pdf.Name:
			meta[key] = value.Name()
		}
	}

	return meta
}
