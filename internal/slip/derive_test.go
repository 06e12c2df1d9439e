package slip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mumcuarda/debit/internal/slip"
)

func TestDueDate(t *testing.T) {
	t.Run("within_month", func(t *testing.T) {
		inception := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t,
			time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			slip.DueDate(inception, 30))
	})

	t.Run("year_rollover", func(t *testing.T) {
		inception := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t,
			time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
			slip.DueDate(inception, 30))
	})
}

func TestNetPremium(t *testing.T) {
	assert.InDelta(t, 8000.0, slip.NetPremium(10000.0, 0.20), 1e-9)
	assert.InDelta(t, 10000.0, slip.NetPremium(10000.0, 0), 1e-9)
}

func TestReinsurerName(t *testing.T) {
	t.Run("captures_words_before_share", func(t *testing.T) {
		text := "PREMIUM: EUR 100\nSIGNED LINE\nSwiss Re Europe S.A. 100%"
		assert.Equal(t, "Swiss Re Europe S.A.", slip.ReinsurerName(text))
	})

	t.Run("stops_at_standalone_number", func(t *testing.T) {
		text := "SIGNED LINE\nMunich Re 50 Percent"
		assert.Equal(t, "Munich Re", slip.ReinsurerName(text))
	})

	t.Run("skips_share_only_lines", func(t *testing.T) {
		text := "SIGNED LINE\n100%\nSwiss Re Europe S.A."
		assert.Equal(t, "Swiss Re Europe S.A.", slip.ReinsurerName(text))
	})

	t.Run("marker_absent", func(t *testing.T) {
		assert.Equal(t, "", slip.ReinsurerName("PREMIUM: EUR 100"))
	})

	t.Run("no_capitalized_line_after_marker", func(t *testing.T) {
		assert.Equal(t, "", slip.ReinsurerName("SIGNED LINE\n42% quota"))
	})

	t.Run("marker_at_end_of_text", func(t *testing.T) {
		assert.Equal(t, "", slip.ReinsurerName("SIGNED LINE"))
	})
}
