package normalize

import (
	"fmt"
	"strings"
	"time"
)

// Accepted day-month-year layouts. Both separators appear in real exports,
// zero-padded or not.
var dateLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
}

// ISODateLayout is the output date format of the SN upload file.
const ISODateLayout = "2006-01-02"

// ConvertDate parses a day-month-year date string and returns it in ISO
// form (year-month-day, zero-padded). Returns an error for unparseable
// input; the caller records the issue and leaves the output field empty.
func ConvertDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q (expected day-month-year)", raw)
}
