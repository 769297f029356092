package date

import (
	"math"
	"testing"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("builds from calendar fields", func(t *testing.T) {
		d, err := NewDate(2, 3, 4, 5, 6, 7)
		require.NoError(t, err)

		assert.Equal(t, int64(2), d.Year())
		assert.Equal(t, int64(3), d.Month())
		assert.Equal(t, int64(4), d.Day())
		assert.Equal(t, int64(5), d.Hour())
		assert.Equal(t, int64(6), d.Minute())
		assert.Equal(t, int64(7), d.Second())
		assert.Equal(t, "0002-03-04 05:06:07", d.String())
	})

	t.Run("epoch is the first instant", func(t *testing.T) {
		d, err := NewDate(1, 1, 1, 0, 0, 0)
		require.NoError(t, err)
		assert.True(t, d.Equal(Epoch))
		assert.Equal(t, "0001-01-01 00:00:00", Epoch.String())
	})

	t.Run("rejects out of range fields", func(t *testing.T) {
		bad := [][6]int64{
			{0, 1, 1, 0, 0, 0},
			{1, 11, 1, 0, 0, 0},
			{1, 1, 11, 0, 0, 0},
			{1, 1, 1, 24, 0, 0},
			{1, 1, 1, 0, 60, 0},
			{1, 1, 1, 0, 0, 60},
		}
		for _, f := range bad {
			_, err := NewDate(f[0], f[1], f[2], f[3], f[4], f[5])
			assert.True(t, dngerr.IsInvalidArgument(err), "fields %v", f)
		}
	})
}

func TestDate_Arithmetic(t *testing.T) {
	start := FromSeconds(1000)

	assert.Equal(t, int64(1000+6*3600), start.Plus(6, Hour).Seconds())
	assert.Equal(t, int64(1000+Day.Seconds()), start.Add(MustParsePeriod("1 day")).Seconds())
	assert.Equal(t, int64(1000), start.Plus(0, Year).Seconds())

	later := start.Plus(90, Minute)
	assert.Equal(t, -1, start.Compare(later))
	assert.Equal(t, 1, later.Compare(start))
	assert.Equal(t, 0, start.Compare(FromSeconds(1000)))
	assert.True(t, start.Before(later))
	assert.True(t, later.After(start))

	assert.Equal(t, int64(90*60), start.Until(later).Seconds())
	assert.True(t, later.Until(start).IsZero())
}

func TestDate_PlusSaturates(t *testing.T) {
	d := FromSeconds(math.MaxInt64 - 10)
	assert.Equal(t, int64(math.MaxInt64), d.Plus(1, Year).Seconds())
	assert.Equal(t, int64(math.MaxInt64), d.Plus(math.MaxInt64, Hour).Seconds())
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "hour", Hour.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "unknown", TimeUnit(7).String())
	assert.Equal(t, int64(864000), Month.Seconds())
}
