package normalize

import "strings"

// SplitName splits a space-separated full name into (first, second).
// The first token becomes the first name; the second token, when present,
// becomes the second name. Any further tokens are ignored. The same policy
// applies to student and guardian names.
func SplitName(full string) (first, second string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return "", ""
	}
	first = tokens[0]
	if len(tokens) > 1 {
		second = tokens[1]
	}
	return first, second
}
