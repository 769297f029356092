package date

// TimeUnit is a span of simulated time measured in seconds.
// The simulation calendar has 24-hour days, 10-day months and 10-month years.
type TimeUnit int64

const (
	Second TimeUnit = 1
	Minute          = 60 * Second
	Hour            = 60 * Minute
	Day             = 24 * Hour
	Month           = 10 * Day
	Year            = 10 * Month
)

// unitNames lists units from the largest to the smallest, as used when
// rendering durations.
var unitNames = []struct {
	unit     TimeUnit
	singular string
	plural   string
}{
	{Year, "year", "years"},
	{Month, "month", "months"},
	{Day, "day", "days"},
	{Hour, "hour", "hours"},
	{Minute, "minute", "minutes"},
	{Second, "second", "seconds"},
}

// Seconds returns the length of the unit in seconds
func (u TimeUnit) Seconds() int64 {
	return int64(u)
}

// String returns the singular name of the unit
func (u TimeUnit) String() string {
	for _, n := range unitNames {
		if n.unit == u {
			return n.singular
		}
	}
	return "unknown"
}

func lookupUnit(name string) (TimeUnit, bool) {
	for _, n := range unitNames {
		if name == n.singular || name == n.plural {
			return n.unit, true
		}
	}
	return 0, false
}
