// =============================================================================
// dobby - Run Report
// =============================================================================
//
// Builds the end-of-run report: a styled terminal summary with the issue
// table, and an optional JSON document for downstream auditing. The report
// never interprets the data; it only presents what the pipeline collected.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dobby-cli/dobby/internal/transformer"
)

// Summary describes one completed transformation run.
type Summary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	InputFile  string    `json:"input_file"`
	OutputFile string    `json:"output_file,omitempty"`
	DryRun     bool      `json:"dry_run"`

	TotalRows      int `json:"total_rows"`
	RowsWithIssues int `json:"rows_with_issues"`
	IssueCount     int `json:"issue_count"`

	Issues []transformer.Issue `json:"issues"`
}

// New builds a Summary from a pipeline result.
func New(result *transformer.Result, inputFile, outputFile string, dryRun bool, startedAt time.Time) *Summary {
	return &Summary{
		RunID:          uuid.NewString(),
		StartedAt:      startedAt,
		InputFile:      inputFile,
		OutputFile:     outputFile,
		DryRun:         dryRun,
		TotalRows:      result.InputRows,
		RowsWithIssues: result.RowsWithIssues(),
		IssueCount:     len(result.Issues),
		Issues:         result.Issues,
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// maxIssueRows caps the issue table; the JSON report always carries all
// issues.
const maxIssueRows = 20

// Render writes the human-readable report.
func Render(w io.Writer, s *Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Transformation Report"))
	fmt.Fprintln(w, labelStyle.Render("Run:        ")+s.RunID)
	fmt.Fprintln(w, labelStyle.Render("Started:    ")+s.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, labelStyle.Render("Input:      ")+s.InputFile)
	if s.DryRun {
		fmt.Fprintln(w, labelStyle.Render("Output:     ")+dimStyle.Render("(dry run, nothing written)"))
	} else if s.OutputFile != "" {
		fmt.Fprintln(w, labelStyle.Render("Output:     ")+s.OutputFile)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Total rows:  ")+fmt.Sprint(s.TotalRows))
	ok := s.TotalRows - s.RowsWithIssues
	fmt.Fprintln(w, labelStyle.Render("Clean rows:  ")+okStyle.Render(fmt.Sprint(ok)))
	issueCount := fmt.Sprint(s.IssueCount)
	if s.IssueCount > 0 {
		issueCount = warnStyle.Render(issueCount)
	} else {
		issueCount = okStyle.Render(issueCount)
	}
	fmt.Fprintln(w, labelStyle.Render("Issues:      ")+issueCount)

	if len(s.Issues) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderIssueTable(s.Issues))
		fmt.Fprintln(w, dimStyle.Render("Line numbers refer to the input file (header included)."))
	}
}

func renderIssueTable(issues []transformer.Issue) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("LINE", "FIELD", "VALUE", "ISSUE")

	for i, issue := range issues {
		if i == maxIssueRows {
			remaining := len(issues) - maxIssueRows
			t.Row("...", "...", "...", fmt.Sprintf("and %d more", remaining))
			break
		}
		t.Row(
			// Header row plus 1-based numbering.
			fmt.Sprint(issue.Row+2),
			issue.Field,
			truncate(issue.Value, 28),
			issue.Message,
		)
	}
	return t.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// WriteJSON writes the full summary, issues included, as a JSON document.
func WriteJSON(path string, s *Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
