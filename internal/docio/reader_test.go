package docio

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumcuarda/debit/internal/domain"
)

// buildDocx packs a word/document.xml body into an in-memory docx archive.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	xml := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
	_, err = w.Write([]byte(xml))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestDocxReader_Read(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>UNIQUE MARKET REFERENCE: X1</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>split </w:t></w:r><w:r><w:t>run</w:t></w:r></w:p>`+
			`<w:p/>`+
			`<w:tbl><w:tr>`+
			`<w:tc><w:p><w:r><w:t>PREMIUM</w:t></w:r></w:p></w:tc>`+
			`<w:tc><w:p><w:r><w:t>EUR 1,00</w:t></w:r></w:p></w:tc>`+
			`</w:tr></w:tbl>`)

	doc, err := NewReader().Read(data)
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 3)
	assert.Equal(t, "UNIQUE MARKET REFERENCE: X1", doc.Paragraphs[0].Text)
	assert.Equal(t, "split run", doc.Paragraphs[1].Text, "runs are concatenated")
	assert.Equal(t, "", doc.Paragraphs[2].Text)

	require.Len(t, doc.Tables, 1)
	require.Len(t, doc.Tables[0].Rows, 1)
	row := doc.Tables[0].Rows[0]
	require.Len(t, row.Cells, 2)
	assert.Equal(t, "PREMIUM", row.Cells[0].Text)
	assert.Equal(t, "EUR 1,00", row.Cells[1].Text)
}

func TestDocxReader_Read_NotAZip(t *testing.T) {
	_, err := NewReader().Read([]byte("plain text, not a docx"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestDocxReader_Read_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("other.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = NewReader().Read(buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}
