// =============================================================================
// dobby - CSV Writer Module
// =============================================================================
//
// Writes the transformed record set in the fixed 29-column SN upload
// format. The downstream system expects semicolon-separated UTF-8 with a
// byte order mark, matching what the source system emits.
//
// The file is written to a temporary sibling and renamed into place, so a
// failed run never leaves a half-written upload file behind.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// Write writes a header row followed by data rows to filePath.
func Write(filePath string, headers []string, rows [][]string, separator rune) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeRecords(tmp, headers, rows, separator); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

func writeRecords(f *os.File, headers []string, rows [][]string, separator rune) error {
	// The BOM-emitting encoder prepends the mark before the first byte.
	encoder := unicode.UTF8BOM.NewEncoder()
	buf := bufio.NewWriter(encoder.Writer(f))

	w := csv.NewWriter(buf)
	w.Comma = separator

	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return buf.Flush()
}
