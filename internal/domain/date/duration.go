package date

import (
	"fmt"
	"strings"
)

// Duration is a non-negative span of simulated time
type Duration struct {
	seconds int64
}

// NewDuration returns amount units of time. Negative amounts are rejected
// by returning false.
func NewDuration(amount int64, unit TimeUnit) (Duration, bool) {
	if amount < 0 || unit <= 0 {
		return Duration{}, false
	}
	if amount > 0 && amount > maxSeconds/unit.Seconds() {
		return Duration{}, false
	}
	return Duration{seconds: amount * unit.Seconds()}, true
}

// Seconds returns the span in seconds
func (d Duration) Seconds() int64 {
	return d.seconds
}

// IsZero reports whether the span is empty
func (d Duration) IsZero() bool {
	return d.seconds == 0
}

// String renders the largest units first, e.g. "1 day and 2 hours"
func (d Duration) String() string {
	if d.seconds == 0 {
		return "0 seconds"
	}

	remaining := d.seconds
	var parts []string
	for _, n := range unitNames {
		count := remaining / n.unit.Seconds()
		if count == 0 {
			continue
		}
		remaining -= count * n.unit.Seconds()
		name := n.plural
		if count == 1 {
			name = n.singular
		}
		parts = append(parts, fmt.Sprintf("%d %s", count, name))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// UnmarshalText parses a duration expression, so durations can be read
// from environment variables and text formats
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
