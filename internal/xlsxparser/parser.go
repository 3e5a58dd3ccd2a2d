// =============================================================================
// dobby - XLSX Parser Module
// =============================================================================
//
// Reads enrollment exports saved as XLSX workbooks. School administration
// systems export spreadsheets as often as CSV, so both formats are accepted
// by the CLI; this parser produces the same Data shape as the CSV parser,
// read from the first sheet of the workbook.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dobby-cli/dobby/internal/csvparser"
)

// Parse reads the first sheet of an XLSX workbook. The first row is taken
// as headers, every following non-empty row as data.
func Parse(filePath string) (*csvparser.Data, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := make([]string, len(allRows[0]))
	for i, header := range allRows[0] {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = header
	}

	rows := make([]map[string]string, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rowMap[header] = strings.TrimSpace(row[i])
			} else {
				rowMap[header] = ""
			}
		}
		rows = append(rows, rowMap)
	}

	return &csvparser.Data{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
