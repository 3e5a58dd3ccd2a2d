// =============================================================================
// dobby - RUT Validation
// =============================================================================
//
// Validation of Chilean national identifiers (RUT) and their check digit.
//
// Two identifier classes are recognized:
//
//   - Regular RUT: the check digit must satisfy the standard modulus-11
//     algorithm (weights 2..7 cycling from the least significant digit,
//     remainder 11 -> '0', remainder 10 -> 'K').
//
//   - IPE (Identificador Provisorio del Estudiante): bodies in
//     [100,000,000 - 199,999,999] or [200,000,000 - 299,999,999], issued to
//     students without a definitive national identity document. An IPE has
//     no real check digit, so the check character is accepted as-is and no
//     arithmetic is performed.
//
// Validation is fail-soft by design: an invalid Regular RUT is reported via
// Result.Valid, never as an error. The pipeline records the problem and the
// row keeps its canonical string.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Classification identifies which identifier class a numeric body belongs to.
type Classification int

const (
	// Regular is a standard RUT whose check digit is verifiable.
	Regular Classification = iota

	// Provisional is an IPE; its check character carries no information.
	Provisional
)

func (c Classification) String() string {
	if c == Provisional {
		return "provisional"
	}
	return "regular"
}

// IPE reserved ranges. Classification depends only on the numeric body.
const (
	ipeRange1Low  = 100_000_000
	ipeRange1High = 199_999_999
	ipeRange2Low  = 200_000_000
	ipeRange2High = 299_999_999
)

// Result is the outcome of validating one identifier.
type Result struct {
	// Classification is Regular or Provisional.
	Classification Classification

	// Valid reports whether the check character is acceptable.
	// Always true for Provisional identifiers.
	Valid bool

	// Canonical is the "{body}-{CHECK}" form, check character uppercased.
	Canonical string
}

// rutPattern matches a cleaned identifier: 7 to 9 digits plus a check
// character that is a digit or K.
var rutPattern = regexp.MustCompile(`^\d{7,9}[0-9K]$`)

// Validate checks a numeric body against its check character.
func Validate(body int64, check string) Result {
	canonical := FormatRUT(strconv.FormatInt(body, 10), check)

	if isIPE(body) {
		return Result{Classification: Provisional, Valid: true, Canonical: canonical}
	}

	expected := CheckDigit(body)
	got := strings.ToUpper(strings.TrimSpace(check))
	return Result{
		Classification: Regular,
		Valid:          got == expected,
		Canonical:      canonical,
	}
}

// ValidateRUT checks a combined identifier string such as "12345678-5" or
// "23762615-K". Dots and hyphens are ignored. Malformed input is reported
// as invalid, never as an error.
func ValidateRUT(rut string) bool {
	clean := strings.NewReplacer(".", "", "-", "").Replace(rut)
	clean = strings.ToUpper(strings.TrimSpace(clean))

	if !rutPattern.MatchString(clean) {
		return false
	}

	body, err := strconv.ParseInt(clean[:len(clean)-1], 10, 64)
	if err != nil {
		return false
	}

	return Validate(body, clean[len(clean)-1:]).Valid
}

// CheckDigit computes the expected check character for a numeric body using
// the modulus-11 algorithm.
func CheckDigit(body int64) string {
	weights := []int64{2, 3, 4, 5, 6, 7}

	var sum int64
	for i := 0; body > 0; i++ {
		sum += (body % 10) * weights[i%len(weights)]
		body /= 10
	}

	remainder := 11 - sum%11
	switch remainder {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.FormatInt(remainder, 10)
	}
}

// FormatRUT combines a body and check character into the canonical
// "{body}-{CHECK}" form.
func FormatRUT(body, check string) string {
	return fmt.Sprintf("%s-%s", strings.TrimSpace(body), strings.ToUpper(strings.TrimSpace(check)))
}

// isIPE reports whether the body falls in one of the IPE reserved ranges.
func isIPE(body int64) bool {
	return (body >= ipeRange1Low && body <= ipeRange1High) ||
		(body >= ipeRange2Low && body <= ipeRange2High)
}
