package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mumcuarda/debit/internal/domain"
)

func exportSlip() *domain.ParsedSlip {
	return &domain.ParsedSlip{
		SlipNo:          "B0999DN2024",
		Type:            "Facultative Reinsurance",
		Insured:         "Acme Industrial Plant",
		Reinsured:       "Anadolu Sigorta A.S.",
		Period:          "From 01.03.2024 to 28.02.2025",
		Currency:        "EUR",
		PremiumValue:    50000,
		PremiumRaw:      "EUR 50.000,00",
		PaymentTermDays: 60,
		DueDate:         time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		Reinsurer:       "Swiss Re Europe S.A.",
		AddrLine1:       "Kavak Sok. Blok 31",
		AddrLine2:       "No: 4 Kavacik Istanbul",
		BrokeragePct:    0.20,
	}
}

func TestWriter_CSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteSlip(exportSlip()))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Slip No", header[0])
	assert.Equal(t, "Address Line 2", header[len(header)-1])

	row, err := r.Read()
	require.NoError(t, err)
	require.Len(t, row, len(header))
	assert.Equal(t, "B0999DN2024", row[0])
	assert.Equal(t, "50.000,00", row[6])
	assert.Equal(t, "60", row[8])
	assert.Equal(t, "30.04.2024", row[9])
	assert.Equal(t, "20%", row[10])
	assert.Equal(t, "40.000,00", row[11])
}

func TestXLSXBytes(t *testing.T) {
	data, err := XLSXBytes(exportSlip())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue("Slip", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Slip No", v)

	v, err = f.GetCellValue("Slip", "A2")
	require.NoError(t, err)
	assert.Equal(t, "B0999DN2024", v)

	v, err = f.GetCellValue("Slip", "L2")
	require.NoError(t, err)
	assert.Equal(t, "40.000,00", v)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "B0999_DN_2024", SanitizeFilename("B0999 DN/2024"))
	assert.Equal(t, "a_b", SanitizeFilename("__a___b__"))
}
