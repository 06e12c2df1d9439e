package domain

import "time"

// SlipDocument is the structured form of an uploaded slip: ordered
// paragraphs plus ordered tables of rows of cells. It is what the docx
// reader produces and what the extraction pipeline consumes.
type SlipDocument struct {
	Paragraphs []Paragraph
	Tables     []Table
}

// Paragraph is a single document paragraph.
type Paragraph struct {
	Text string
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []TableRow
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds the flattened text of one table cell.
type TableCell struct {
	Text string
}

// ParsedSlip is the extraction result for one slip document. It is built
// once per request and never mutated afterwards.
type ParsedSlip struct {
	SlipNo          string    `json:"slip_no"`
	Type            string    `json:"type"`
	Insured         string    `json:"insured"`
	Reinsured       string    `json:"reinsured"`
	Period          string    `json:"period"`
	Currency        string    `json:"currency"`
	PremiumValue    float64   `json:"premium_value"`
	PremiumRaw      string    `json:"premium_raw"`
	PaymentTermDays int       `json:"payment_term_days"`
	DueDate         time.Time `json:"due_date"`
	Reinsurer       string    `json:"reinsurer,omitempty"`
	AddrLine1       string    `json:"addr_line_1,omitempty"`
	AddrLine2       string    `json:"addr_line_2,omitempty"`
	BrokeragePct    float64   `json:"brokerage_pct"`
}

// NetPremium returns the gross premium less the brokerage share.
func (p *ParsedSlip) NetPremium() float64 {
	return p.PremiumValue * (1.0 - p.BrokeragePct)
}

// DueDateDisplay formats the due date the way the debit-note templates
// expect it (day-first, dotted).
func (p *ParsedSlip) DueDateDisplay() string {
	return p.DueDate.Format("02.01.2006")
}

// RenderContext is a flat placeholder-name to display-string mapping
// consumed by the template renderer. Monetary values are always
// pre-formatted; the renderer performs no formatting of its own.
type RenderContext map[string]string
