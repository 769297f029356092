package effects

//go:generate mockgen -destination=mock/mock_target.go -package=mockeffects -source=effect.go Target

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
)

// Target is what an effect acts on
type Target interface {
	IncrementHealth(amount int)
	WorldDate() date.Date
	AddCondition(c conditions.Condition) bool
}

// Effect is a resolved, immutable effect ready to be applied any number of
// times
type Effect struct {
	id           ID
	kind         Kind
	healing      int
	attackBonus  int
	multiplier   float64
	duration     date.Duration
	maximumStack int
}

func (e *Effect) ID() ID                     { return e.id }
func (e *Effect) Kind() Kind                 { return e.kind }
func (e *Effect) Healing() int               { return e.healing }
func (e *Effect) AttackBonus() int           { return e.attackBonus }
func (e *Effect) HitRateMultiplier() float64 { return e.multiplier }
func (e *Effect) Duration() date.Duration    { return e.duration }
func (e *Effect) MaximumStack() int          { return e.maximumStack }

// Affect applies the effect to target. Instant effects always succeed;
// durative effects report whether the target accepted the condition.
func (e *Effect) Affect(target Target) bool {
	switch e.kind {
	case KindHealing:
		target.IncrementHealth(e.healing)
		return true
	case KindAttack:
		now := target.WorldDate()
		return target.AddCondition(conditions.NewAttack(e.source(), now, now.Add(e.duration), e.attackBonus))
	case KindHitRate:
		now := target.WorldDate()
		return target.AddCondition(conditions.NewHitRate(e.source(), now, now.Add(e.duration), e.multiplier))
	default:
		return false
	}
}

func (e *Effect) source() conditions.Source {
	return conditions.Source{EffectID: string(e.id), MaximumStack: e.maximumStack}
}

func (e *Effect) String() string {
	switch e.kind {
	case KindHealing:
		return fmt.Sprintf("%s(%d)", e.id, e.healing)
	case KindAttack:
		return fmt.Sprintf("%s(%+d to attack for %s)", e.id, e.attackBonus, e.duration)
	case KindHitRate:
		return fmt.Sprintf("%s(x%g hit rate for %s)", e.id, e.multiplier, e.duration)
	default:
		return string(e.id)
	}
}
