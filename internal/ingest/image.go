package ingest

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// readImage runs tesseract OCR over the image bytes. Images carry no
// container metadata, so forensics gets nothing to inspect.
func (s *Service) readImage(data []byte) (Document, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(s.ocrLanguages) > 0 {
		if err := client.SetLanguage(s.ocrLanguages...); err != nil {
			return Document{}, fmt.Errorf("configuring ocr languages: %w", err)
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return Document{}, fmt.Errorf("loading image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Document{}, fmt.Errorf("running ocr: %w", err)
	}

	return Document{Text: text}, nil
}
