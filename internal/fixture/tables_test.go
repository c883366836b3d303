package fixture

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthAbbrev(t *testing.T) {
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for i, name := range want {
		mm := fmt.Sprintf("%02d", i+1)
		got, ok := MonthAbbrev(mm)
		require.True(t, ok, mm)
		assert.Equal(t, name, got, mm)
	}
	assert.Equal(t, want, MonthAbbrevs())

	for _, mm := range []string{"00", "13", "1", "", "Jan"} {
		_, ok := MonthAbbrev(mm)
		assert.False(t, ok, mm)
	}
}

func TestExtract_DateForm(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{2}-(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)$`)

	for month := 1; month <= 12; month++ {
		stamp := fmt.Sprintf("2015%02d05", month)
		f, err := Extract(block(
			"SUMMARY:[H] L2 vs Newmarket 1",
			"DTSTART;VALUE=DATE:"+stamp,
			"DTEND;VALUE=DATE:"+stamp,
		))
		require.NoError(t, err)
		assert.Regexp(t, datePattern, f.Date)
		assert.Equal(t, fmt.Sprintf("05-%s", MonthAbbrevs()[month-1]), f.Date)
	}
}

func TestVenueAlias(t *testing.T) {
	tests := map[string]string{
		"Long Road Sixth Form College":    "Long Road",
		"Cambridge University HC Astro":   "Wilberforce Road",
		"Coldhams Common":                 "Abbey",
		"Peter Boizot Astro":              "St Catz",
		"St John's College Sports Ground": "St Johns",
		"The Leys School":                 "Leys",
		"Perse Girls School":              "Perse Girls",
		"Perse Boys School":               "Perse Boys",
		"Jesus Green":                     "Jesus Green",
		"long road sixth form college":    "long road sixth form college",
		"":                                "",
	}

	for raw, want := range tests {
		assert.Equal(t, want, VenueAlias(raw), raw)
	}
}
