package slip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumcuarda/debit/internal/domain"
	"github.com/mumcuarda/debit/internal/slip"
)

func TestExtractor_Line(t *testing.T) {
	ex := slip.NewExtractor(slip.DefaultLabels)

	t.Run("with_colon", func(t *testing.T) {
		v, err := ex.Line("TYPE: Facultative Reinsurance\nPERIOD: 2024", "TYPE")
		require.NoError(t, err)
		assert.Equal(t, "Facultative Reinsurance", v)
	})

	t.Run("without_colon", func(t *testing.T) {
		v, err := ex.Line("PREMIUM EUR 50.000,00", "PREMIUM")
		require.NoError(t, err)
		assert.Equal(t, "EUR 50.000,00", v)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		v, err := ex.Line("Period: from 01.01.2024", "PERIOD")
		require.NoError(t, err)
		assert.Equal(t, "from 01.01.2024", v)
	})

	t.Run("collapses_whitespace", func(t *testing.T) {
		v, err := ex.Line("TYPE:   Quota\t\tShare   ", "TYPE")
		require.NoError(t, err)
		assert.Equal(t, "Quota Share", v)
	})

	t.Run("missing_names_label", func(t *testing.T) {
		_, err := ex.Line("TYPE: something", "PERIOD")
		require.ErrorIs(t, err, domain.ErrMissingField)
		assert.Contains(t, err.Error(), "PERIOD")
	})

	t.Run("label_inside_longer_word_is_not_matched", func(t *testing.T) {
		// REINSURED must not satisfy an INSURED lookup.
		v, err := ex.Line("REINSURED: Foo\nINSURED: Bar", "INSURED")
		require.NoError(t, err)
		assert.Equal(t, "Bar", v)
	})
}

func TestExtractor_OptionalLine(t *testing.T) {
	ex := slip.NewExtractor(slip.DefaultLabels)
	assert.Equal(t, "20%", ex.OptionalLine("TOTAL BROKERAGE: 20%", "TOTAL BROKERAGE"))
	assert.Equal(t, "", ex.OptionalLine("no such label here", "TOTAL BROKERAGE"))
}

func TestExtractor_Block(t *testing.T) {
	ex := slip.NewExtractor(slip.DefaultLabels)

	t.Run("stops_at_next_known_label", func(t *testing.T) {
		text := "ADDRESS (of Reinsured): Some Street 5\nBuilding C\nPERIOD: 2024"
		assert.Equal(t, "Some Street 5 Building C", ex.Block(text, "ADDRESS (of Reinsured)"))
	})

	t.Run("runs_to_end_of_text", func(t *testing.T) {
		text := "ADDRESS (of Reinsured): Some Street 5\nBuilding C"
		assert.Equal(t, "Some Street 5 Building C", ex.Block(text, "ADDRESS (of Reinsured)"))
	})

	t.Run("absent_label", func(t *testing.T) {
		assert.Equal(t, "", ex.Block("PERIOD: 2024", "ADDRESS (of Reinsured)"))
	})
}

func TestExtractor_CustomVocabulary(t *testing.T) {
	// The boundary set is injected, so block capture adapts to whatever
	// vocabulary the caller supplies.
	ex := slip.NewExtractor([]string{"ALPHA", "BETA"})
	text := "ALPHA: one\ntwo\nBETA: three"
	assert.Equal(t, "one two", ex.Block(text, "ALPHA"))

	// With a vocabulary that does not know BETA, the block sweeps to the end.
	ex = slip.NewExtractor([]string{"ALPHA"})
	assert.Equal(t, "one two BETA: three", ex.Block(text, "ALPHA"))
}
