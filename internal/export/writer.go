package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mumcuarda/debit/internal/domain"
	"github.com/mumcuarda/debit/internal/slip"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Slip No",
	"Type",
	"Insured",
	"Reinsured",
	"Period",
	"Currency",
	"Premium",
	"Premium (Raw)",
	"Payment Term Days",
	"Due Date",
	"Brokerage",
	"Net Premium",
	"Reinsurer",
	"Address Line 1",
	"Address Line 2",
}

// Writer wraps csv.Writer for exporting extracted slips as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSlip converts an extracted slip to a CSV row and writes it.
func (w *Writer) WriteSlip(p *domain.ParsedSlip) error {
	return w.csv.Write(slipToRow(p))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func slipToRow(p *domain.ParsedSlip) []string {
	return []string{
		p.SlipNo,
		p.Type,
		p.Insured,
		p.Reinsured,
		p.Period,
		p.Currency,
		slip.FormatAmount(p.PremiumValue),
		p.PremiumRaw,
		strconv.Itoa(p.PaymentTermDays),
		p.DueDateDisplay(),
		strconv.FormatFloat(p.BrokeragePct*100, 'f', -1, 64) + "%",
		slip.FormatAmount(p.NetPremium()),
		p.Reinsurer,
		p.AddrLine1,
		p.AddrLine2,
	}
}

// XLSXBytes renders a single extracted slip as an XLSX workbook.
func XLSXBytes(p *domain.ParsedSlip) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Slip"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, v := range slipToRow(p) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a slip reference for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_slip_no}_{YYYY-MM-DD}.{ext}
func BuildFilename(slipNo, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(slipNo), time.Now().Format("2006-01-02"), ext)
}
