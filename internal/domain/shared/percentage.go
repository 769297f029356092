package shared

import (
	"fmt"
	"math"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// Percentage is a ratio in [0, 1], used for bounded stats like hit rate
type Percentage float64

const (
	// Zero is 0%
	Zero Percentage = 0
	// Full is 100%
	Full Percentage = 1
)

// NewPercentage validates that v lies in [0, 1]
func NewPercentage(v float64) (Percentage, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, dngerr.InvalidArgumentf("percentage must be between 0 and 1, got %v", v)
	}
	return Percentage(v), nil
}

// ClampPercentage maps v into [0, 1]. NaN becomes 0.
func ClampPercentage(v float64) Percentage {
	switch {
	case math.IsNaN(v) || v < 0:
		return Zero
	case v > 1:
		return Full
	default:
		return Percentage(v)
	}
}

// Float64 returns the ratio as a float64
func (p Percentage) Float64() float64 {
	return float64(p)
}

// String renders the percentage with one decimal, e.g. "98.0%"
func (p Percentage) String() string {
	return fmt.Sprintf("%.1f%%", float64(p)*100)
}
