package docio

import (
	"bytes"
	"fmt"

	docx "github.com/lukasjarosch/go-docx"

	"github.com/mumcuarda/debit/internal/domain"
)

// DocxRenderer fills a .docx template's placeholders from a RenderContext.
// The context supplies display-ready strings; no formatting happens here.
type DocxRenderer struct{}

// NewRenderer creates a DocxRenderer.
func NewRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render opens the template, replaces every placeholder present in ctx and
// returns the resulting document bytes. Placeholders the template does not
// contain are silently skipped.
func (r *DocxRenderer) Render(templatePath string, ctx domain.RenderContext) ([]byte, error) {
	doc, err := docx.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templatePath)
	}

	placeholders := make(docx.PlaceholderMap, len(ctx))
	for key, value := range ctx {
		placeholders[key] = value
	}
	if err := doc.ReplaceAll(placeholders); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
