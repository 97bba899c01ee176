package export

import (
	"fmt"
	"strings"
)

// FormatCents renders an amount held in cents as a display string with two
// decimal places and thousands separators ("1234550" -> "12,345.50").
// Zero and missing amounts render as "0.00".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("%s.%02d", strings.Join(groups, ","), frac)
	if negative {
		return "-" + out
	}
	return out
}
