// =============================================================================
// dobby - CSV Parser Module
// =============================================================================
//
// Reads enrollment exports from the source system. The exports are
// semicolon-separated and UTF-8 encoded with a byte order mark, so the
// reader decodes through a BOM-aware transform before the CSV layer sees
// any bytes. Files without a BOM parse identically.
//
// The parser preserves the original row order and delivers each row as a
// header -> value map alongside the ordered header slice; the pipeline
// depends on both.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Data is a parsed record set.
type Data struct {
	// Headers are the column headers in file order.
	Headers []string

	// Rows are the data rows as header -> value maps, in file order.
	Rows []map[string]string

	// SourceFile is the path the data was read from.
	SourceFile string
}

// RowCount returns the number of data rows.
func (d *Data) RowCount() int { return len(d.Rows) }

// ColumnCount returns the number of columns.
func (d *Data) ColumnCount() int { return len(d.Headers) }

// Parse reads a CSV file with the given field separator.
func Parse(filePath string, separator rune) (*Data, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Strip the BOM if present; pass UTF-8 through untouched otherwise.
	decoder := unicode.UTF8BOM.NewDecoder()
	reader := csv.NewReader(bufio.NewReader(decoder.Reader(file)))

	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])

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

	return &Data{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
	}, nil
}

// cleanHeaders trims whitespace and names any empty headers by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
