package slip

import (
	"regexp"
	"strings"
	"time"
)

// DueDate advances the period inception date by the payment term, with
// calendar-correct month and year rollover.
func DueDate(inception time.Time, termDays int) time.Time {
	return inception.AddDate(0, 0, termDays)
}

// NetPremium applies the brokerage deduction to the gross premium.
func NetPremium(gross, brokerageFraction float64) float64 {
	return gross * (1.0 - brokerageFraction)
}

var (
	numberToken      = regexp.MustCompile(`^\d+(?:\.\d+)?\s*%?$`)
	signedLineMarker = regexp.MustCompile(`(?i)\bSIGNED LINE\b`)
)

// ReinsurerName extracts the reinsurer from the text following a
// "SIGNED LINE" marker. Lines after the marker are scanned until one starts
// with an uppercase letter; its words are captured up to (but excluding)
// the first standalone number or percentage token. Returns an empty string
// when the marker is absent or no capitalized line follows it.
func ReinsurerName(text string) string {
	loc := signedLineMarker.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	nl := strings.Index(rest, "\n")
	if nl < 0 {
		return ""
	}
	for _, line := range strings.Split(rest[nl+1:], "\n") {
		line = strings.TrimLeft(line, " \t")
		if line == "" || line[0] < 'A' || line[0] > 'Z' {
			continue
		}
		var words []string
		for _, w := range strings.Fields(line) {
			if numberToken.MatchString(w) {
				break
			}
			words = append(words, w)
		}
		return strings.Join(words, " ")
	}
	return ""
}
