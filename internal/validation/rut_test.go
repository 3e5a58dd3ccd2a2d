package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		body int64
		want string
	}{
		{"known digit", 12345678, "5"},
		{"known k", 23762615, "K"},
		{"single digit body", 1, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckDigit(tt.body))
		})
	}
}

func TestValidateRegular(t *testing.T) {
	res := Validate(12345678, "5")
	require.True(t, res.Valid)
	assert.Equal(t, Regular, res.Classification)
	assert.Equal(t, "12345678-5", res.Canonical)

	res = Validate(12345678, "9")
	assert.False(t, res.Valid)
	assert.Equal(t, Regular, res.Classification)
	assert.Equal(t, "12345678-9", res.Canonical)
}

func TestValidateKCaseInsensitive(t *testing.T) {
	assert.True(t, Validate(23762615, "K").Valid)
	assert.True(t, Validate(23762615, "k").Valid)
}

func TestValidateProvisional(t *testing.T) {
	// IPE bodies accept any check character, including a clearly wrong one.
	for _, body := range []int64{100000000, 100123456, 199999999, 200123456, 299999999} {
		for _, check := range []string{"0", "5", "9", "K", "Z"} {
			res := Validate(body, check)
			assert.True(t, res.Valid, "body %d check %s", body, check)
			assert.Equal(t, Provisional, res.Classification)
		}
	}
}

func TestClassificationBoundaries(t *testing.T) {
	tests := []struct {
		body int64
		want Classification
	}{
		{99999999, Regular},
		{100000000, Provisional},
		{199999999, Provisional},
		{200000000, Provisional},
		{299999999, Provisional},
		{300000000, Regular},
	}

	for _, tt := range tests {
		res := Validate(tt.body, "0")
		assert.Equal(t, tt.want, res.Classification, "body %d", tt.body)
	}
}

func TestValidateRUTString(t *testing.T) {
	tests := []struct {
		name string
		rut  string
		want bool
	}{
		{"valid with hyphen", "12345678-5", true},
		{"valid with k", "23762615-K", true},
		{"valid lowercase k", "23762615-k", true},
		{"valid with dots", "12.345.678-5", true},
		{"wrong check digit", "12345678-9", false},
		{"garbage", "invalid", false},
		{"empty", "", false},
		{"ipe any check", "100000000-Z", false}, // Z is not a legal check character shape
		{"ipe with digit", "100123456-5", true},
		{"ipe with k", "199999999-K", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRUT(tt.rut))
		})
	}
}

func TestFormatRUT(t *testing.T) {
	assert.Equal(t, "12345678-5", FormatRUT("12345678", "5"))
	assert.Equal(t, "11111111-K", FormatRUT("11111111", "k"))
}
