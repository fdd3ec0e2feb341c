package geo

import (
	"fmt"
	"regexp"
	"strings"
)

// plusCodeRe matches eight characters from the restricted Plus Code
// alphabet, a literal '+', then two or three more. This is a simplified
// local grammar, not the full Open Location Code standard: digit-pair precision
// rules are not enforced.
var plusCodeRe = regexp.MustCompile(`^[23456789CFGHJMPQRVWX]{8}\+[23456789CFGHJMPQRVWX]{2,3}$`)

// IsValidPlusCode reports whether code matches the simplified Plus Code
// grammar after uppercasing and removing all spaces. It never errors; any
// non-matching shape, including the empty string, is invalid.
func IsValidPlusCode(code string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(code, " ", ""))
	return plusCodeRe.MatchString(normalized)
}

// GeneratePlusCode derives a deterministic placeholder code from the
// coordinates and locality: the latitude formatted to four decimals with the
// dot stripped and cut to four characters, a '+', the longitude treated the
// same way cut to three, a space, then the locality. The output populates a
// display field only; it is not guaranteed to satisfy IsValidPlusCode (the
// truncation rules differ) and that mismatch is intentional.
func GeneratePlusCode(lat, lng float64, locality string) string {
	return fmt.Sprintf("%s+%s %s", coordPart(lat, 4), coordPart(lng, 3), locality)
}

func coordPart(v float64, n int) string {
	s := strings.Replace(fmt.Sprintf("%.4f", v), ".", "", 1)
	if len(s) > n {
		s = s[:n]
	}
	return s
}
