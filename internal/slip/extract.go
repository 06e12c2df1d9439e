package slip

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mumcuarda/debit/internal/domain"
)

// DefaultLabels is the field vocabulary of the observed slip documents.
// Block capture stops at the next known label, so the list must match the
// source documents verbatim - including their own misspellings.
var DefaultLabels = []string{
	"UNIQUE MARKET REFERENCE",
	"TYPE",
	"INSURED",
	"ADDITINONAL INSURED",
	"ADDRESS (of Reinsured)",
	"REINSURED",
	"PERIOD",
	"PAYMENT TERMS",
	"PREMIUM",
	"TOTAL BROKERAGE",
	"SIGNED LINE",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor locates labeled fields in flattened slip text. The label
// vocabulary is supplied at construction and all patterns are compiled up
// front, so a single Extractor is safe for concurrent use.
type Extractor struct {
	linePats   map[string]*regexp.Regexp
	blockPats  map[string]*regexp.Regexp
	boundaries string
}

// NewExtractor builds an Extractor over the given ordered label vocabulary.
func NewExtractor(labels []string) *Extractor {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	e := &Extractor{
		linePats:   make(map[string]*regexp.Regexp, len(labels)),
		blockPats:  make(map[string]*regexp.Regexp, len(labels)),
		boundaries: strings.Join(quoted, "|"),
	}
	for _, l := range labels {
		e.linePats[l] = linePattern(l)
		e.blockPats[l] = blockPattern(l, e.boundaries)
	}
	return e
}

func linePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\s*:?\s*([^\n]+)`)
}

func blockPattern(label, boundaries string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?is)` + regexp.QuoteMeta(label) + `\s*:?\s*(.*?)(?:\n(?:` + boundaries + `)\b|\z)`,
	)
}

// Line captures the remainder of the line after a case-insensitive label
// and optional colon. Whitespace runs are collapsed and the value trimmed.
// A missing label yields a domain.ErrMissingField naming the label.
func (e *Extractor) Line(text, label string) (string, error) {
	v := e.OptionalLine(text, label)
	if v == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingField, label)
	}
	return v, nil
}

// OptionalLine behaves like Line but returns an empty string when the label
// is absent.
func (e *Extractor) OptionalLine(text, label string) string {
	pat, ok := e.linePats[label]
	if !ok {
		// Labels outside the construction vocabulary are compiled on the
		// spot, without touching the shared pattern tables.
		pat = linePattern(label)
	}
	m := pat.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return collapse(m[1])
}

// Block captures multi-line content after a label, up to the next known
// label at the start of a line or the end of the text. Returns an empty
// string when the label is absent.
func (e *Extractor) Block(text, label string) string {
	pat, ok := e.blockPats[label]
	if !ok {
		pat = blockPattern(label, e.boundaries)
	}
	m := pat.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return collapse(m[1])
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
