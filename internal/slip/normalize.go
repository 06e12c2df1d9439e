package slip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mumcuarda/debit/internal/domain"
)

// AmountPolicy controls what happens when a numeric premium token cannot be
// parsed: default to zero (observed behavior) or fail loudly.
type AmountPolicy int

const (
	AmountZeroOnError AmountPolicy = iota
	AmountFailOnError
)

// AmountPolicyFromString maps a config value to an AmountPolicy. Anything
// other than "fail" keeps the lenient default.
func AmountPolicyFromString(s string) AmountPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "fail") {
		return AmountFailOnError
	}
	return AmountZeroOnError
}

var (
	currencyPattern = regexp.MustCompile(`\b[A-Z]{3}\b|[€$£]|\bTL\b`)
	amountPattern   = regexp.MustCompile(`[\d.,]+`)
	daysPattern     = regexp.MustCompile(`(?i)(\d{1,3})\s*days`)
	pctPattern      = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*%`)
	datePattern     = regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-]\d{2,4}`)
	dateSeparator   = regexp.MustCompile(`[./-]`)
)

var currencySymbols = map[string]string{
	"€":  "EUR",
	"$":  "USD",
	"£":  "GBP",
	"TL": "TRY",
}

// ParseCurrencyAmount extracts a currency code and numeric amount from a raw
// premium string. The currency is the first 3-letter code or recognized
// symbol, defaulting to defaultCurrency. The amount is the first numeric
// token normalized from European convention ("50.000,00" -> 50000.00).
// With AmountZeroOnError an unparseable token yields zero silently.
func ParseCurrencyAmount(raw, defaultCurrency string, policy AmountPolicy) (string, float64, error) {
	currency := defaultCurrency
	if m := currencyPattern.FindString(raw); m != "" {
		if mapped, ok := currencySymbols[m]; ok {
			currency = mapped
		} else {
			currency = m
		}
	}

	token := amountPattern.FindString(raw)
	if token == "" {
		return currency, 0, nil
	}
	normalized := strings.ReplaceAll(token, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		if policy == AmountFailOnError {
			return currency, 0, fmt.Errorf("%w: %q", domain.ErrUnparseableAmount, token)
		}
		return currency, 0, nil
	}
	return currency, value, nil
}

// ParseTermDays extracts the integer immediately preceding a "days" token,
// falling back to defaultDays when absent.
func ParseTermDays(line string, defaultDays int) int {
	m := daysPattern.FindStringSubmatch(line)
	if m == nil {
		return defaultDays
	}
	days, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDays
	}
	return days
}

// ParseBrokerage extracts a percentage token (e.g. "20%") as a fraction in
// [0,1]. Returns 0 when the line holds no parseable percentage.
func ParseBrokerage(line string) float64 {
	m := pctPattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return pct / 100.0
}

// LeftmostDate finds the first date-like substring (day-first, separated by
// '.', '/' or '-', 2- or 4-digit year) and parses it. When no such substring
// exists it falls back to a fuzzy day-first parse of the whole string, and
// fails with domain.ErrDateParse if that also yields nothing.
func LeftmostDate(s string) (time.Time, error) {
	if m := datePattern.FindString(s); m != "" {
		if t, err := parseDayFirst(m); err == nil {
			return t, nil
		}
	}
	if t, ok := fuzzyDayFirst(s); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w in %q", domain.ErrDateParse, s)
}

func parseDayFirst(s string) (time.Time, error) {
	parts := dateSeparator.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("not a day-first date: %q", s)
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if len(parts[2]) == 2 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	// Day-first is preferred, but an unambiguous month-first date still
	// parses (e.g. "03/15/2024").
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %q", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid calendar date: %q", s)
	}
	return t, nil
}

// fuzzyLayouts are tried against whitespace-token windows of the input,
// day-first layouts ahead of the rest.
var fuzzyLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"2 January, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2.1.2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"January 2006",
	"Jan 2006",
}

func fuzzyDayFirst(s string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	maxWindow := 4
	if len(fields) < maxWindow {
		maxWindow = len(fields)
	}
	for size := maxWindow; size >= 1; size-- {
		for i := 0; i+size <= len(fields); i++ {
			candidate := strings.Join(fields[i:i+size], " ")
			for _, layout := range fuzzyLayouts {
				if t, err := time.Parse(layout, candidate); err == nil {
					return t.UTC(), true
				}
			}
		}
	}
	return time.Time{}, false
}
