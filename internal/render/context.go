package render

import (
	"time"

	"github.com/mumcuarda/debit/internal/config"
	"github.com/mumcuarda/debit/internal/domain"
	"github.com/mumcuarda/debit/internal/slip"
)

const displayDate = "02.01.2006"

// Assembler maps a ParsedSlip onto the two debit-note template contexts.
// The bank account table and reference prefix come from configuration so
// deployments can override them without code changes.
type Assembler struct {
	banking *config.BankingConfig
	now     func() time.Time
}

// NewAssembler creates an Assembler over the given banking configuration.
func NewAssembler(banking *config.BankingConfig) *Assembler {
	return &Assembler{banking: banking, now: time.Now}
}

// BuildContexts produces the contexts for template A (gross debit note,
// addressed to the reinsured) and template B (net debit note, due to the
// reinsurer). Monetary values are pre-formatted display strings.
func (a *Assembler) BuildContexts(p *domain.ParsedSlip, refASuffix, refBSuffix string) (domain.RenderContext, domain.RenderContext) {
	today := a.now().Format(displayDate)

	ctxA := domain.RenderContext{
		"date":      today,
		"type":      p.Type,
		"slip_no":   p.SlipNo,
		"reinsured": p.Reinsured,
		"insured":   p.Insured,
		"period":    p.Period,
		"term":      p.DueDateDisplay(),
		"currency":  p.Currency,
		"iban":      a.banking.IBANForCurrency(p.Currency),
		"amount":    slip.FormatAmount(p.PremiumValue),

		"recipient.a":                p.Reinsured,
		"recipient.a_address_line_1": p.AddrLine1,
		"recipient.a_address_line_2": p.AddrLine2,
		// Flat variant: template A names this placeholder without the dot.
		"recipient_a_address_line_1": p.AddrLine1,

		"reference_a": a.Reference(refASuffix),
	}

	ctxB := domain.RenderContext{
		"date":      today,
		"type":      p.Type,
		"slip_no":   p.SlipNo,
		"reinsured": p.Reinsured,
		"insured":   p.Insured,
		"period":    p.Period,
		"term":      p.DueDateDisplay(),
		"premium":   slip.FormatAmount(p.NetPremium()),
		"reinsurer": p.Reinsurer,

		// Recipient B is not derivable from the slip; the stand-in values
		// are kept verbatim until the upstream workflow supplies them.
		"recipient.b":                "xxx",
		"recipient.b_address_line_1": "yyy",
		"recipient.b_address_line_2": "zzz",

		"reference_b": a.Reference(refBSuffix),
	}

	return ctxA, ctxB
}

// Reference builds a debit-note reference from the configured prefix and a
// caller-supplied suffix.
func (a *Assembler) Reference(suffix string) string {
	return a.banking.ReferencePrefix + "-" + suffix
}
