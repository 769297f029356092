package date

import (
	"math"
	"strconv"
	"strings"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

const maxSeconds = math.MaxInt64

// ParsePeriod parses a human readable duration expression such as
// "6 hours", "1 day and 2 hours" or "1 hour, 30 minutes".
//
// Every term is "<positive integer> <unit>"; terms are separated by a comma,
// the word "and", or both. Units are case-insensitive and may be singular or
// plural.
func ParsePeriod(expr string) (Duration, error) {
	terms, err := splitTerms(expr)
	if err != nil {
		return Duration{}, err
	}

	var total int64
	for _, term := range terms {
		if len(term) != 2 {
			return Duration{}, dngerr.DurationParsef("malformed term %q in %q", strings.Join(term, " "), expr).
				WithMeta("expression", expr)
		}

		amount, parseErr := strconv.ParseInt(term[0], 10, 64)
		if parseErr != nil {
			return Duration{}, dngerr.DurationParsef("%q is not an integer amount in %q", term[0], expr).
				WithMeta("expression", expr)
		}
		if amount <= 0 {
			return Duration{}, dngerr.DurationParsef("amount must be positive, got %d in %q", amount, expr).
				WithMeta("expression", expr)
		}

		unit, ok := lookupUnit(term[1])
		if !ok {
			return Duration{}, dngerr.DurationParsef("unknown time unit %q in %q", term[1], expr).
				WithMeta("expression", expr)
		}

		if amount > (maxSeconds-total)/unit.Seconds() {
			return Duration{}, dngerr.DurationParsef("duration %q is too long", expr).
				WithMeta("expression", expr)
		}
		total += amount * unit.Seconds()
	}

	return Duration{seconds: total}, nil
}

// MustParsePeriod is like ParsePeriod but panics on malformed input.
// It is meant for package-level constants.
func MustParsePeriod(expr string) Duration {
	d, err := ParsePeriod(expr)
	if err != nil {
		panic(err)
	}
	return d
}

func splitTerms(expr string) ([][]string, error) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(expr, ",", " , ")))
	if len(fields) == 0 {
		return nil, dngerr.DurationParsef("empty duration expression")
	}

	var terms [][]string
	var current []string
	lastSeparator := ""
	for _, field := range fields {
		if field != "," && field != "and" {
			current = append(current, field)
			continue
		}

		switch {
		case len(current) > 0:
			terms = append(terms, current)
			current = nil
			lastSeparator = field
		case len(terms) > 0 && lastSeparator == "," && field == "and":
			// "1 day, and 2 hours"
			lastSeparator = ",and"
		default:
			return nil, dngerr.DurationParsef("unexpected separator %q in %q", field, expr).
				WithMeta("expression", expr)
		}
	}

	if len(current) == 0 {
		return nil, dngerr.DurationParsef("expression %q ends with a separator", expr).
			WithMeta("expression", expr)
	}
	return append(terms, current), nil
}
