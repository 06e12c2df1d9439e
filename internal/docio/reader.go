package docio

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mumcuarda/debit/internal/domain"
)

// DocxReader extracts paragraph and table text from a .docx file. A docx is
// a zip archive whose main part is word/document.xml; only direct body
// children are read, so nested tables are ignored.
type DocxReader struct{}

// NewReader creates a DocxReader.
func NewReader() *DocxReader {
	return &DocxReader{}
}

// Read parses docx bytes into a SlipDocument.
func (r *DocxReader) Read(data []byte) (*domain.SlipDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive", domain.ErrUnsupportedFileType)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: word/document.xml missing", domain.ErrUnsupportedFileType)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("opening document part: %w", err)
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading document part: %w", err)
	}

	var parsed xmlDocument
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding document part: %w", err)
	}

	doc := &domain.SlipDocument{}
	for _, p := range parsed.Body.Paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{Text: p.text()})
	}
	for _, t := range parsed.Body.Tables {
		table := domain.Table{}
		for _, row := range t.Rows {
			tr := domain.TableRow{}
			for _, cell := range row.Cells {
				tr.Cells = append(tr.Cells, domain.TableCell{Text: cell.text()})
			}
			table.Rows = append(table.Rows, tr)
		}
		doc.Tables = append(doc.Tables, table)
	}
	return doc, nil
}

// Unqualified names below match on the local element name, so the w:
// namespace prefix is irrelevant to decoding.
type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
	Tables     []xmlTable     `xml:"tbl"`
}

type xmlParagraph struct {
	Texts []string `xml:"r>t"`
}

func (p xmlParagraph) text() string {
	return strings.Join(p.Texts, "")
}

type xmlTable struct {
	Rows []xmlRow `xml:"tr"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"tc"`
}

type xmlCell struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

func (c xmlCell) text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.text())
	}
	return strings.Join(parts, "\n")
}
