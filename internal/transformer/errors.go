package transformer

import (
	"fmt"
	"strings"
)

// MissingColumnError is returned when required source columns are absent.
// It is the only pipeline-fatal condition: no rows are produced.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
