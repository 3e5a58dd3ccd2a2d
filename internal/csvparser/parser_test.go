package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSemicolonSeparated(t *testing.T) {
	path := writeTemp(t, "Rut;Nombres\n12345678;JUAN PABLO\n23456789;MARIA ELENA\n")

	data, err := Parse(path, ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"Rut", "Nombres"}, data.Headers)
	require.Equal(t, 2, data.RowCount())
	assert.Equal(t, "JUAN PABLO", data.Rows[0]["Nombres"])
	assert.Equal(t, "23456789", data.Rows[1]["Rut"])
}

func TestParseStripsBOM(t *testing.T) {
	path := writeTemp(t, "\uFEFFRut;Nombres\n12345678;JUAN\n")

	data, err := Parse(path, ';')
	require.NoError(t, err)
	assert.Equal(t, "Rut", data.Headers[0])
}

func TestParsePreservesRowOrder(t *testing.T) {
	path := writeTemp(t, "Rut\n3\n1\n2\n")

	data, err := Parse(path, ';')
	require.NoError(t, err)
	require.Equal(t, 3, data.RowCount())
	assert.Equal(t, "3", data.Rows[0]["Rut"])
	assert.Equal(t, "1", data.Rows[1]["Rut"])
	assert.Equal(t, "2", data.Rows[2]["Rut"])
}

func TestParseSkipsEmptyRows(t *testing.T) {
	path := writeTemp(t, "Rut;Nombres\n12345678;JUAN\n;\n")

	data, err := Parse(path, ';')
	require.NoError(t, err)
	assert.Equal(t, 1, data.RowCount())
}

func TestParseShortRowPadsEmpty(t *testing.T) {
	path := writeTemp(t, "Rut;Nombres;Sexo\n12345678;JUAN\n")

	data, err := Parse(path, ';')
	require.NoError(t, err)
	assert.Equal(t, "", data.Rows[0]["Sexo"])
}

func TestParseEmptyFile(t *testing.T) {
	path := writeTemp(t, "")
	_, err := Parse(path, ';')
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"), ';')
	assert.Error(t, err)
}
