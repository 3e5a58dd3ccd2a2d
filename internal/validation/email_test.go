package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"test.user@domain.co.uk",
		"nombre.apellido+tag@colegio.cl",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"invalid",
		"@example.com",
		"user@",
		"user@domain",
		"",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}
