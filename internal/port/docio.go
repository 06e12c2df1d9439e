package port

import "github.com/mumcuarda/debit/internal/domain"

// DocumentReader turns uploaded document bytes into the structured form the
// extraction pipeline consumes.
type DocumentReader interface {
	Read(data []byte) (*domain.SlipDocument, error)
}

// TemplateRenderer substitutes a render context's placeholders into a
// document template and returns the resulting document bytes. It performs
// no validation that the template actually contains the supplied
// placeholders.
type TemplateRenderer interface {
	Render(templatePath string, ctx domain.RenderContext) ([]byte, error)
}
