package normalize

import (
	"regexp"
	"strings"
)

// Chilean mobile numbers are nine digits starting with 9.
var mobilePattern = regexp.MustCompile(`^9\d{8}$`)

var nonDigit = regexp.MustCompile(`\D`)

// FormatPhone normalizes a contact number to its digit string.
//
// An empty field normalizes to "0" (no phone on record). A nine-digit
// mobile number (leading 9) is accepted as-is. Anything else returns
// ok=false so the caller can record an issue; the best-effort digit string
// is still returned and the row keeps it.
func FormatPhone(raw string) (digits string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "0", true
	}

	// Spreadsheet exports sometimes render integers as floats
	// ("932832346.0"). Drop an all-zero fractional part before stripping.
	if idx := strings.Index(s, "."); idx >= 0 {
		frac := s[idx+1:]
		if frac == "" || strings.Trim(frac, "0") == "" {
			s = s[:idx]
		}
	}

	// Country-code prefix carries no information in this data set.
	s = strings.TrimPrefix(s, "+56")

	s = nonDigit.ReplaceAllString(s, "")
	if s == "" {
		// Non-empty input with no digits at all.
		return "0", false
	}
	if strings.Trim(s, "0") == "" {
		return "0", true
	}

	if mobilePattern.MatchString(s) {
		return s, true
	}
	return s, false
}
