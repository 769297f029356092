package conditions

import (
	"math"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// Data is the persisted form of an Entry. Dates are stored as seconds since
// the world epoch so that restoring a snapshot keeps expirations exact.
type Data struct {
	ID                string  `json:"id"`
	Kind              string  `json:"kind"`
	EffectID          string  `json:"effect_id"`
	MaximumStack      int     `json:"maximum_stack"`
	AppliedAt         int64   `json:"applied_at"`
	ExpiresAt         int64   `json:"expires_at"`
	AttackDelta       int     `json:"attack_delta,omitempty"`
	HitRateMultiplier float64 `json:"hit_rate_multiplier,omitempty"`
}

// ToData converts an entry to its persisted form
func ToData(entry Entry) Data {
	c := entry.Condition
	return Data{
		ID:                entry.ID,
		Kind:              c.Kind().String(),
		EffectID:          c.EffectID(),
		MaximumStack:      c.MaximumStack(),
		AppliedAt:         c.AppliedAt().Seconds(),
		ExpiresAt:         c.ExpiresAt().Seconds(),
		AttackDelta:       c.AttackDelta(),
		HitRateMultiplier: c.HitRateMultiplier(),
	}
}

// FromData rebuilds an entry from its persisted form
func FromData(d Data) (Entry, error) {
	if err := d.Validate(); err != nil {
		return Entry{}, err
	}

	kind, _ := parseKind(d.Kind)
	source := Source{EffectID: d.EffectID, MaximumStack: d.MaximumStack}
	appliedAt := date.FromSeconds(d.AppliedAt)
	expiresAt := date.FromSeconds(d.ExpiresAt)

	var c Condition
	switch kind {
	case KindAttack:
		c = NewAttack(source, appliedAt, expiresAt, d.AttackDelta)
	case KindHitRate:
		c = NewHitRate(source, appliedAt, expiresAt, d.HitRateMultiplier)
	}

	return Entry{ID: d.ID, Condition: c}, nil
}

// Validate checks that d describes a condition that could have been created
// by an effect
func (d Data) Validate() error {
	if d.ID == "" {
		return dngerr.InvalidArgument("condition ID is required")
	}
	kind, ok := parseKind(d.Kind)
	if !ok {
		return dngerr.InvalidArgumentf("unknown condition kind %q", d.Kind).
			WithMeta("condition_id", d.ID)
	}
	if d.EffectID == "" {
		return dngerr.InvalidArgument("condition effect ID is required").
			WithMeta("condition_id", d.ID)
	}
	if d.MaximumStack < 1 {
		return dngerr.InvalidArgumentf("maximum stack must be at least 1, got %d", d.MaximumStack).
			WithMeta("condition_id", d.ID)
	}
	if d.AppliedAt < 0 || d.ExpiresAt < d.AppliedAt {
		return dngerr.InvalidArgumentf("invalid condition window [%d, %d]", d.AppliedAt, d.ExpiresAt).
			WithMeta("condition_id", d.ID)
	}
	if kind == KindHitRate {
		m := d.HitRateMultiplier
		if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return dngerr.InvalidArgumentf("hit rate multiplier must be positive, got %v", m).
				WithMeta("condition_id", d.ID)
		}
	}
	return nil
}
