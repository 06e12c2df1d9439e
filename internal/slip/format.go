package slip

import (
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value for the debit-note templates: two
// fraction digits, '.' as thousands separator and ',' as decimal separator.
// This is the display direction only - the reverse of the normalization in
// ParseCurrencyAmount, and deliberately a separate routine.
func FormatAmount(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		grouped.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	out := grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
