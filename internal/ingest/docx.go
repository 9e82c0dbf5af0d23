package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// readWordDocument flattens the paragraphs of a Word invoice into lines. The
// container is a zip whose word/document.xml holds the text nodes; styling
// and table structure collapse away, which is all the extraction patterns
// need.
func readWordDocument(data []byte) (Document, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("opening document: %w", err)
	}

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		part, err := file.Open()
		if err != nil {
			return Document{}, fmt.Errorf("opening document body: %w", err)
		}
		defer part.Close()

		return flattenDocumentXML(part)
	}

	return Document{}, fmt.Errorf("opening document: no word/document.xml part")
}

func flattenDocumentXML(r io.Reader) (Document, error) {
	var (
		text   strings.Builder
		line   strings.Builder
		inText bool
	)

	decoder := xml.NewDecoder(r)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return Document{}, fmt.Errorf("parsing document body: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inText = false
			case "p":
				// Paragraph boundaries become newlines so label-value
				// pairs stay on one line each.
				if s := strings.TrimSpace(line.String()); s != "" {
					text.WriteString(s)
					text.WriteString("\n")
				}

				line.Reset()
			}
		case xml.CharData:
			if inText {
				line.Write(tok)
			}
		}
	}

	return Document{Text: text.String()}, nil
}
