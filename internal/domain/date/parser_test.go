package date

import (
	"testing"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		expr     string
		expected int64
	}{
		{"6 hours", 6 * 3600},
		{"1 hour", 3600},
		{"30 Seconds", 30},
		{"1 day and 2 hours", 86400 + 7200},
		{"1 hour, 30 minutes", 3600 + 1800},
		{"1 year, 2 months, and 3 days", Year.Seconds() + 2*Month.Seconds() + 3*Day.Seconds()},
		{"  2   MINUTES  ", 120},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			d, err := ParsePeriod(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Seconds())
		})
	}
}

func TestParsePeriod_Errors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"six hours",
		"6",
		"6 fortnights",
		"0 hours",
		"-1 hours",
		"1.5 hours",
		"1 day 2 hours",
		"and 1 day",
		", 1 day",
		"1 day and",
		"1 day and and 2 hours",
		"9223372036854775807 years",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := ParsePeriod(expr)
			require.Error(t, err)
			assert.True(t, dngerr.IsDurationParse(err))
			assert.True(t, dngerr.IsInvalidParameter(err))
		})
	}
}

func TestMustParsePeriod(t *testing.T) {
	assert.Equal(t, int64(6*3600), MustParsePeriod("6 hours").Seconds())
	assert.Panics(t, func() { MustParsePeriod("soon") })
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"6 hours", "6 hours"},
		{"1 hour", "1 hour"},
		{"1 day and 2 hours", "1 day and 2 hours"},
		{"90 minutes", "1 hour and 30 minutes"},
		{"1 year, 1 day, 1 second", "1 year, 1 day and 1 second"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParsePeriod(tt.expr).String())
		})
	}

	assert.Equal(t, "0 seconds", Duration{}.String())
}

func TestNewDuration(t *testing.T) {
	d, ok := NewDuration(3, Hour)
	require.True(t, ok)
	assert.Equal(t, int64(3*3600), d.Seconds())

	_, ok = NewDuration(-1, Hour)
	assert.False(t, ok)

	zero, ok := NewDuration(0, Day)
	require.True(t, ok)
	assert.True(t, zero.IsZero())
}
