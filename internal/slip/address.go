package slip

import "strings"

// AddressSplitter splits a reinsured address block into two display lines.
// Implementations must be pure and total: any non-empty block yields two
// (possibly empty) lines.
type AddressSplitter interface {
	Split(block string) (line1, line2 string)
}

// LetterSplitter is the default heuristic tied to the observed slip data:
// the second address line starts at the first occurrence of Letter within
// the block. When the letter is absent (or leads the block), it falls back
// to splitting on the first newline, and failing that to the midpoint of
// the block.
type LetterSplitter struct {
	Letter string
}

// NewAddressSplitter returns the default splitter used by the parser.
func NewAddressSplitter() LetterSplitter {
	return LetterSplitter{Letter: "N"}
}

func (s LetterSplitter) Split(block string) (string, string) {
	if idx := strings.Index(block, s.Letter); idx > 0 {
		return strings.TrimRight(block[:idx], " \t"), strings.TrimLeft(block[idx:], " \t")
	}

	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) >= 2 {
		return lines[0], strings.Join(lines[1:], " ")
	}

	runes := []rune(block)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}
