package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputColumnsFixedLayout(t *testing.T) {
	assert.Len(t, OutputColumns, 29)
	assert.Equal(t, "rbd", OutputColumns[0])
	assert.Equal(t, "tutor2Celular", OutputColumns[len(OutputColumns)-1])

	seen := make(map[string]bool, len(OutputColumns))
	for _, col := range OutputColumns {
		assert.False(t, seen[col], "duplicate output column %q", col)
		seen[col] = true
	}
}

func TestRenameMapTargetsAreOutputColumns(t *testing.T) {
	valid := make(map[string]bool, len(OutputColumns))
	for _, col := range OutputColumns {
		valid[col] = true
	}
	for from, to := range RenameMap {
		assert.True(t, valid[to], "rename %q -> %q misses the output schema", from, to)
	}
}

func TestComunaName(t *testing.T) {
	name, ok := ComunaName("4101")
	assert.True(t, ok)
	assert.Equal(t, "La Serena", name)

	_, ok = ComunaName("9999")
	assert.False(t, ok)
}

func TestComunaNamesCoversTable(t *testing.T) {
	names := ComunaNames()
	assert.Contains(t, names, "Coquimbo")
	assert.Contains(t, names, "Santiago")
}

func TestGradeLevel(t *testing.T) {
	level, ok := GradeLevel("7")
	assert.True(t, ok)
	assert.Equal(t, "7° Básico", level)

	level, ok = GradeLevel("IV")
	assert.True(t, ok)
	assert.Equal(t, "IV Medio", level)

	_, ok = GradeLevel("X")
	assert.False(t, ok)
}
