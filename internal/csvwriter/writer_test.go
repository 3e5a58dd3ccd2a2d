package csvwriter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "upload.csv")

	headers := []string{"rbd", "curso"}
	rows := [][]string{
		{"574", "7A"},
		{"574", "8B"},
	}
	require.NoError(t, Write(path, headers, rows, ';'))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\uFEFF"), "output should start with a BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(content, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rbd;curso", lines[0])
	assert.Equal(t, "574;7A", lines[1])
	assert.Equal(t, "574;8B", lines[2])
}

func TestWriteQuotesSeparatorInValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.csv")

	require.NoError(t, Write(path, []string{"direccion"}, [][]string{{"CALLE 1; DEPTO 2"}}, ';'))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"CALLE 1; DEPTO 2"`)
}

func TestWriteNoPartialFileOnBadDir(t *testing.T) {
	// A file where the directory should be forces MkdirAll to fail.
	base := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o644))

	err := Write(filepath.Join(base, "upload.csv"), []string{"a"}, nil, ';')
	assert.Error(t, err)
}
