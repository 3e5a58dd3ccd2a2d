// =============================================================================
// dobby - Field Normalizers
// =============================================================================
//
// Pure, row-independent normalization functions applied by the pipeline.
// Every function in this package is idempotent: applying it twice yields
// the same result as applying it once.
//
// =============================================================================

package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dobby-cli/dobby/internal/schema"
)

// extraLocalityTokens are misspellings and shorthand forms of locality
// names seen in real exports, beyond the canonical commune names.
var extraLocalityTokens = []string{
	"laserena",
	"serena",
	"laserna",
	"vicuna",
}

var (
	localityPatterns []*regexp.Regexp
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

func init() {
	tokens := append(schema.ComunaNames(), extraLocalityTokens...)

	// Longest token first, so "La Serena" is stripped before "Serena" can
	// eat its tail and leave a dangling "La".
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	localityPatterns = make([]*regexp.Regexp, 0, len(tokens))
	for _, tok := range tokens {
		// \b does not handle accented characters, so boundaries are
		// expressed as non-letter characters or string edges.
		pattern := `(?i)(^|[^\p{L}])` + regexp.QuoteMeta(tok) + `($|[^\p{L}])`
		localityPatterns = append(localityPatterns, regexp.MustCompile(pattern))
	}
}

// CleanAddress removes known locality tokens and commas from a free-text
// address, collapses whitespace runs and trims leading/trailing punctuation.
// Token order and the rest of the address content are preserved. Case
// conversion is left to the dedicated uppercase pipeline step.
func CleanAddress(address string) string {
	cleaned := address

	for _, pattern := range localityPatterns {
		// The boundary groups consume a character, so back-to-back
		// occurrences need repeated passes. Iterate to a fixpoint; every
		// replacement shortens the string, so this terminates.
		for {
			next := pattern.ReplaceAllString(cleaned, "$1$2")
			if next == cleaned {
				break
			}
			cleaned = next
		}
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, " .;-")

	return cleaned
}
