// Package date models the in-simulation calendar. Nothing here reads the
// wall clock: dates only move when the surrounding simulation advances them.
package date

import (
	"fmt"
	"math"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// Date is an instant on the simulation calendar, stored as seconds since
// year 1, month 1, day 1 at 00:00:00.
type Date struct {
	seconds int64
}

// Epoch is the first instant of the simulation calendar
var Epoch = Date{}

// FromSeconds creates a Date from seconds since the epoch
func FromSeconds(seconds int64) Date {
	return Date{seconds: seconds}
}

// NewDate builds a date from calendar fields. Year, month and day are 1-based.
func NewDate(year, month, day, hour, minute, second int64) (Date, error) {
	switch {
	case year < 1:
		return Date{}, dngerr.InvalidArgumentf("invalid year %d", year)
	case month < 1 || month > int64(Year/Month):
		return Date{}, dngerr.InvalidArgumentf("invalid month %d", month)
	case day < 1 || day > int64(Month/Day):
		return Date{}, dngerr.InvalidArgumentf("invalid day %d", day)
	case hour < 0 || hour >= int64(Day/Hour):
		return Date{}, dngerr.InvalidArgumentf("invalid hour %d", hour)
	case minute < 0 || minute >= int64(Hour/Minute):
		return Date{}, dngerr.InvalidArgumentf("invalid minute %d", minute)
	case second < 0 || second >= int64(Minute):
		return Date{}, dngerr.InvalidArgumentf("invalid second %d", second)
	}

	seconds := (year-1)*Year.Seconds() +
		(month-1)*Month.Seconds() +
		(day-1)*Day.Seconds() +
		hour*Hour.Seconds() +
		minute*Minute.Seconds() +
		second
	return Date{seconds: seconds}, nil
}

// Seconds returns the number of seconds since the epoch
func (d Date) Seconds() int64 {
	return d.seconds
}

// Plus returns the date amount units after d. Results saturate instead of
// overflowing.
func (d Date) Plus(amount int64, unit TimeUnit) Date {
	if amount != 0 && unit != 0 {
		if amount > math.MaxInt64/unit.Seconds() {
			return Date{seconds: math.MaxInt64}
		}
		if amount < math.MinInt64/unit.Seconds() {
			return Date{seconds: math.MinInt64}
		}
	}
	return d.addSeconds(amount * unit.Seconds())
}

// Add returns the date a duration after d
func (d Date) Add(duration Duration) Date {
	return d.addSeconds(duration.seconds)
}

func (d Date) addSeconds(seconds int64) Date {
	if seconds > 0 && d.seconds > math.MaxInt64-seconds {
		return Date{seconds: math.MaxInt64}
	}
	if seconds < 0 && d.seconds < math.MinInt64-seconds {
		return Date{seconds: math.MinInt64}
	}
	return Date{seconds: d.seconds + seconds}
}

// Until returns the span from d to later, or zero when later is not after d
func (d Date) Until(later Date) Duration {
	if !later.After(d) {
		return Duration{}
	}
	return Duration{seconds: later.seconds - d.seconds}
}

// Compare returns -1, 0 or 1 when d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool { return d.seconds < other.seconds }

// After reports whether d is strictly after other
func (d Date) After(other Date) bool { return d.seconds > other.seconds }

// Equal reports whether d and other are the same instant
func (d Date) Equal(other Date) bool { return d.seconds == other.seconds }

func (d Date) Year() int64   { return d.seconds/Year.Seconds() + 1 }
func (d Date) Month() int64  { return (d.seconds%Year.Seconds())/Month.Seconds() + 1 }
func (d Date) Day() int64    { return (d.seconds%Month.Seconds())/Day.Seconds() + 1 }
func (d Date) Hour() int64   { return (d.seconds % Day.Seconds()) / Hour.Seconds() }
func (d Date) Minute() int64 { return (d.seconds % Hour.Seconds()) / Minute.Seconds() }
func (d Date) Second() int64 { return d.seconds % Minute.Seconds() }

// String renders the date as YYYY-MM-DD hh:mm:ss
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second())
}
