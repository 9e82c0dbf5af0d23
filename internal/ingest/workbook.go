package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readWorkbook flattens every sheet into lines of space-joined cells so the
// extraction patterns see label-value pairs the same way they would in a
// text invoice.
func readWorkbook(data []byte) (Document, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer workbook.Close()

	var text strings.Builder

	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return Document{}, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}

		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " "))
			if line == "" {
				continue
			}

			text.WriteString(line)
			text.WriteString("\n")
		}
	}

	return Document{Text: text.String()}, nil
}
