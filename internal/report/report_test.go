package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobby-cli/dobby/internal/transformer"
)

func sampleResult() *transformer.Result {
	return &transformer.Result{
		InputRows: 3,
		Issues: []transformer.Issue{
			{Row: 1, Field: "Comuna", Value: "9999", Message: "unmapped comuna code", Severity: transformer.SeverityError},
			{Row: 2, Field: "estudianteRun", Value: "12345678-9", Message: "invalid RUT check digit", Severity: transformer.SeverityWarning},
		},
	}
}

func TestNewSummary(t *testing.T) {
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(sampleResult(), "in.csv", "out.csv", false, started)

	assert.NotEmpty(t, s.RunID)
	assert.Equal(t, 3, s.TotalRows)
	assert.Equal(t, 2, s.RowsWithIssues)
	assert.Equal(t, 2, s.IssueCount)
	assert.Equal(t, "in.csv", s.InputFile)
}

func TestRenderShowsCountsAndIssues(t *testing.T) {
	var buf bytes.Buffer
	s := New(sampleResult(), "in.csv", "out.csv", false, time.Now())
	Render(&buf, s)

	out := buf.String()
	assert.Contains(t, out, "Transformation Report")
	assert.Contains(t, out, "unmapped comuna code")
	assert.Contains(t, out, "invalid RUT check digit")
	// Issue on data row 1 is line 3 of the file.
	assert.Contains(t, out, "3")
}

func TestRenderDryRun(t *testing.T) {
	var buf bytes.Buffer
	s := New(sampleResult(), "in.csv", "", true, time.Now())
	Render(&buf, s)
	assert.Contains(t, buf.String(), "dry run")
}

func TestRenderCapsIssueTable(t *testing.T) {
	result := &transformer.Result{InputRows: 50}
	for i := 0; i < 30; i++ {
		result.Issues = append(result.Issues, transformer.Issue{
			Row: i, Field: "f", Message: "m", Severity: transformer.SeverityWarning,
		})
	}

	var buf bytes.Buffer
	Render(&buf, New(result, "in.csv", "", true, time.Now()))
	assert.Contains(t, buf.String(), "and 10 more")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	s := New(sampleResult(), "in.csv", "out.csv", false, time.Now())
	require.NoError(t, WriteJSON(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s.RunID, decoded.RunID)
	require.Len(t, decoded.Issues, 2)
	assert.Equal(t, "unmapped comuna code", decoded.Issues[0].Message)
	assert.True(t, strings.HasSuffix(path, ".json"))
}
