package slip

import (
	"strings"

	"github.com/mumcuarda/debit/internal/domain"
)

// Flatten converts a structured slip document into one newline-joined text
// blob for pattern matching. Each paragraph with non-blank content becomes
// one line, in document order; each table row becomes one line formed by
// joining its non-empty cell texts with single spaces. Paragraphs come
// first, then tables.
func Flatten(doc *domain.SlipDocument) string {
	var parts []string
	for _, p := range doc.Paragraphs {
		if t := strings.TrimSpace(p.Text); t != "" {
			parts = append(parts, t)
		}
	}
	for _, tbl := range doc.Tables {
		for _, row := range tbl.Rows {
			var cells []string
			for _, c := range row.Cells {
				if t := strings.TrimSpace(c.Text); t != "" {
					cells = append(cells, t)
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, " "))
			}
		}
	}
	return strings.Join(parts, "\n")
}
