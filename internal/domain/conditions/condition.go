package conditions

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/shared"
)

// Kind selects which modifier a condition carries
type Kind int

const (
	KindAttack Kind = iota + 1
	KindHitRate
)

// UnboundedStack is the stack cap of effects that may stack without limit
const UnboundedStack = math.MaxInt

// String returns the persisted name of the kind
func (k Kind) String() string {
	switch k {
	case KindAttack:
		return "attack"
	case KindHitRate:
		return "hit_rate"
	default:
		return "unknown"
	}
}

func parseKind(s string) (Kind, bool) {
	switch s {
	case "attack":
		return KindAttack, true
	case "hit_rate":
		return KindHitRate, true
	default:
		return 0, false
	}
}

// Source identifies the effect a condition was derived from. It is a plain
// value: conditions never hold a reference to the effect itself.
type Source struct {
	EffectID     string
	MaximumStack int
}

// Condition is a time-bounded modifier attached to a creature.
// Conditions are immutable; expiration is detected by comparing ExpiresAt
// with the world clock.
type Condition struct {
	kind         Kind
	source       Source
	appliedAt    date.Date
	expiresAt    date.Date
	attackDelta  int
	hitRateRatio float64
}

// NewAttack creates a condition that adds delta to attack until expiresAt
func NewAttack(source Source, appliedAt, expiresAt date.Date, delta int) Condition {
	return Condition{
		kind:        KindAttack,
		source:      source,
		appliedAt:   appliedAt,
		expiresAt:   expiresAt,
		attackDelta: delta,
	}
}

// NewHitRate creates a condition that multiplies hit rate by multiplier
// until expiresAt
func NewHitRate(source Source, appliedAt, expiresAt date.Date, multiplier float64) Condition {
	return Condition{
		kind:         KindHitRate,
		source:       source,
		appliedAt:    appliedAt,
		expiresAt:    expiresAt,
		hitRateRatio: multiplier,
	}
}

func (c Condition) Kind() Kind                 { return c.kind }
func (c Condition) EffectID() string           { return c.source.EffectID }
func (c Condition) MaximumStack() int          { return c.source.MaximumStack }
func (c Condition) AppliedAt() date.Date       { return c.appliedAt }
func (c Condition) ExpiresAt() date.Date       { return c.expiresAt }
func (c Condition) AttackDelta() int           { return c.attackDelta }
func (c Condition) HitRateMultiplier() float64 { return c.hitRateRatio }

// IsActive reports whether the condition has not expired at now
func (c Condition) IsActive(now date.Date) bool {
	return now.Before(c.expiresAt)
}

// Remaining returns the time left before the condition expires
func (c Condition) Remaining(now date.Date) date.Duration {
	return now.Until(c.expiresAt)
}

// ModifyAttack applies the condition to an attack value
func (c Condition) ModifyAttack(current int) int {
	if c.kind != KindAttack {
		return current
	}
	return current + c.attackDelta
}

// ModifyHitRate applies the condition to a hit rate. The result never
// exceeds 100%.
func (c Condition) ModifyHitRate(current shared.Percentage) shared.Percentage {
	if c.kind != KindHitRate {
		return current
	}
	return shared.ClampPercentage(current.Float64() * c.hitRateRatio)
}

// Description returns a short summary such as "+3 to attack" or
// "+5% hit rate". Percentages are truncated, not rounded.
func (c Condition) Description() string {
	switch c.kind {
	case KindAttack:
		return fmt.Sprintf("%+d to attack", c.attackDelta)
	case KindHitRate:
		return fmt.Sprintf("%+d%% hit rate", int((c.hitRateRatio-1.0)*100))
	default:
		return "no effect"
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s (%s, until %s)", c.Description(), c.source.EffectID, c.expiresAt)
}
