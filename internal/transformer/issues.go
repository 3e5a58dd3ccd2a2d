package transformer

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityError marks a row-level malformation: the value could not be
	// normalized and the row carries a best-effort substitute.
	SeverityError Severity = "error"

	// SeverityWarning marks a semantic finding: the value is kept exactly
	// as computed, it just failed a diagnostic check.
	SeverityWarning Severity = "warning"
)

// Issue is one data-quality finding. Issues never drop or alter a row's
// presence in the output.
type Issue struct {
	// Row is the 0-based index of the data row. Reports add 2 to show the
	// 1-based line in the source file (header included).
	Row int `json:"row"`

	Field    string   `json:"field"`
	Value    string   `json:"value"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Collector is the append-only sink for validation issues. It is created
// empty at pipeline start and read out once the run ends. Appending never
// touches the records themselves.
type Collector struct {
	issues []Issue
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one issue. Order of appends is preserved.
func (c *Collector) Add(row int, field, value, message string, severity Severity) {
	c.issues = append(c.issues, Issue{
		Row:      row,
		Field:    field,
		Value:    value,
		Message:  message,
		Severity: severity,
	})
}

// Issues returns the collected issues in append order.
func (c *Collector) Issues() []Issue {
	return c.issues
}

// Len returns the number of collected issues.
func (c *Collector) Len() int {
	return len(c.issues)
}

// DistinctRows returns how many distinct rows have at least one issue.
func (c *Collector) DistinctRows() int {
	return distinctRows(c.issues)
}

func distinctRows(issues []Issue) int {
	seen := make(map[int]struct{}, len(issues))
	for _, issue := range issues {
		seen[issue.Row] = struct{}{}
	}
	return len(seen)
}
