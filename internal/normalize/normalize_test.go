package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAddressRemovesLocalityTokens(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"trailing locality", "Calle Principal 123, La Serena", "Calle Principal 123"},
		{"misspelled locality", "Pasaje Sur 45 Laserna", "Pasaje Sur 45"},
		{"coquimbo", "Avenida 456, Coquimbo", "Avenida 456"},
		{"accented locality", "Camino Alto 9, Vicuña", "Camino Alto 9"},
		{"repeated locality", "Serena Serena", ""},
		{"repeated locality after street", "Calle 1 Coquimbo Coquimbo", "Calle 1"},
		{"no locality", "Los Aromos 77", "Los Aromos 77"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAddress(tt.address))
		})
	}
}

func TestCleanAddressRemovesCommas(t *testing.T) {
	got := CleanAddress("Calle Principal, 123")
	assert.NotContains(t, got, ",")
}

func TestCleanAddressNormalizesWhitespace(t *testing.T) {
	got := CleanAddress("Calle   Principal    123")
	assert.Equal(t, "Calle Principal 123", got)
}

func TestCleanAddressIdempotent(t *testing.T) {
	inputs := []string{
		"Calle Principal 123, La Serena",
		"Avenida  456 ,  Coquimbo ",
		"Serena Serena",
		"Calle 1 Coquimbo Coquimbo",
		"La Serena, La Serena, Coquimbo",
		"Los Aromos 77",
		"",
	}
	for _, in := range inputs {
		once := CleanAddress(in)
		assert.Equal(t, once, CleanAddress(once), "input %q", in)
	}
}

func TestCleanAddressKeepsTokenOrder(t *testing.T) {
	got := CleanAddress("Block B Depto 12 Calle Larga 3")
	assert.Equal(t, "Block B Depto 12 Calle Larga 3", got)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		full       string
		wantFirst  string
		wantSecond string
	}{
		{"two tokens", "JUAN PABLO", "JUAN", "PABLO"},
		{"single token", "JUAN", "JUAN", ""},
		{"three tokens keeps second only", "MARIA ELENA ROSA", "MARIA", "ELENA"},
		{"extra whitespace", "  ANA   MARIA  ", "ANA", "MARIA"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitName(tt.full)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantSecond, second)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"valid mobile", "987654321", "987654321", true},
		{"empty", "", "0", true},
		{"zero", "0", "0", true},
		{"too short", "12345", "12345", false},
		{"with separators", "9 8765-4321", "987654321", true},
		{"with country code", "+56987654321", "987654321", true},
		{"float artifact", "932832346.0", "932832346", true},
		{"no digits", "sin telefono", "0", false},
		{"fixed line shape", "223456789", "223456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatPhone(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestConvertDate(t *testing.T) {
	got, err := ConvertDate("05-03-2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", got)

	got, err = ConvertDate("1/3/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got)

	_, err = ConvertDate("not-a-date")
	assert.Error(t, err)

	_, err = ConvertDate("")
	assert.Error(t, err)
}
