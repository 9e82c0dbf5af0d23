// Package ingest turns uploaded invoice documents into plain text for field
// extraction. The source format is picked from the file extension.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document is the text content of one ingested file plus whatever metadata
// the container format carries. Metadata feeds document forensics and is
// empty for formats that have none.
type Document struct {
	Text     string
	Metadata map[string]string
}

type Service struct {
	ocrLanguages []string
}

// NewService builds an ingest service. ocrLanguages are the tesseract
// language codes used for image OCR, in priority order.
func NewService(ocrLanguages []string) *Service {
	return &Service{ocrLanguages: ocrLanguages}
}

func (s *Service) Read(filename string, data []byte) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return readPDF(data)
	case ".png", ".jpg", ".jpeg", ".tiff", ".bmp", ".webp":
		return s.readImage(data)
	case ".docx", ".docm":
		return readWordDocument(data)
	case ".xlsx", ".xlsm":
		return readWorkbook(data)
	case ".txt", ".csv", ".md", ".log":
		return readText(data)
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
