// =============================================================================
// dobby - File Utilities
// =============================================================================
//
// Small helpers for locating and naming files around a transformation run.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// A timestamp prefix on the output name keeps repeated runs from
// overwriting each other.
const outputNameSuffix = "alumnos-upload-sn.csv"

// DefaultOutputPath builds the default output path for a run started at
// the given time, e.g. "data/2025-03-01-1030-alumnos-upload-sn.csv".
func DefaultOutputPath(dir string, now time.Time) string {
	name := fmt.Sprintf("%s-%s", now.Format("2006-01-02-1504"), outputNameSuffix)
	return filepath.Join(dir, name)
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// IsXLSX reports whether the path looks like an XLSX workbook.
func IsXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
