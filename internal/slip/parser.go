package slip

import (
	"github.com/mumcuarda/debit/internal/domain"
)

// Options holds extraction defaults and policies. Zero values fall back to
// the observed slip conventions.
type Options struct {
	DefaultTermDays int
	DefaultCurrency string
	AmountPolicy    AmountPolicy
	Splitter        AddressSplitter
}

// Parser turns a structured slip document into a ParsedSlip. It is
// stateless across calls: parsing the same document twice yields identical
// results.
type Parser struct {
	extractor *Extractor
	opts      Options
}

// NewParser builds a Parser over the given label vocabulary.
func NewParser(labels []string, opts Options) *Parser {
	if opts.DefaultTermDays == 0 {
		opts.DefaultTermDays = 120
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "EUR"
	}
	if opts.Splitter == nil {
		opts.Splitter = NewAddressSplitter()
	}
	return &Parser{extractor: NewExtractor(labels), opts: opts}
}

// Parse extracts, normalizes and derives every slip field. Required fields
// missing from the document abort the whole parse; optional fields default
// to empty or zero values.
func (p *Parser) Parse(doc *domain.SlipDocument) (*domain.ParsedSlip, error) {
	text := Flatten(doc)
	ex := p.extractor

	slipNo, err := ex.Line(text, "UNIQUE MARKET REFERENCE")
	if err != nil {
		return nil, err
	}
	slipType, err := ex.Line(text, "TYPE")
	if err != nil {
		return nil, err
	}
	insured, err := ex.Line(text, "INSURED")
	if err != nil {
		return nil, err
	}
	reinsured, err := ex.Line(text, "REINSURED")
	if err != nil {
		return nil, err
	}
	period, err := ex.Line(text, "PERIOD")
	if err != nil {
		return nil, err
	}
	premiumRaw, err := ex.Line(text, "PREMIUM")
	if err != nil {
		return nil, err
	}
	termsLine, err := ex.Line(text, "PAYMENT TERMS")
	if err != nil {
		return nil, err
	}

	currency, premium, err := ParseCurrencyAmount(premiumRaw, p.opts.DefaultCurrency, p.opts.AmountPolicy)
	if err != nil {
		return nil, err
	}
	termDays := ParseTermDays(termsLine, p.opts.DefaultTermDays)

	inception, err := LeftmostDate(period)
	if err != nil {
		return nil, err
	}

	var addrLine1, addrLine2 string
	if block := ex.Block(text, "ADDRESS (of Reinsured)"); block != "" {
		addrLine1, addrLine2 = p.opts.Splitter.Split(block)
	}

	brokerage := ParseBrokerage(ex.OptionalLine(text, "TOTAL BROKERAGE"))

	return &domain.ParsedSlip{
		SlipNo:          slipNo,
		Type:            slipType,
		Insured:         insured,
		Reinsured:       reinsured,
		Period:          period,
		Currency:        currency,
		PremiumValue:    premium,
		PremiumRaw:      premiumRaw,
		PaymentTermDays: termDays,
		DueDate:         DueDate(inception, termDays),
		Reinsurer:       ReinsurerName(text),
		AddrLine1:       addrLine1,
		AddrLine2:       addrLine2,
		BrokeragePct:    brokerage,
	}, nil
}
