package effects

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// Kind is the behaviour an effect has once applied
type Kind int

const (
	// KindHealing changes health instantly
	KindHealing Kind = iota + 1
	// KindAttack adds an attack condition
	KindAttack
	// KindHitRate adds a hit rate condition
	KindHitRate
)

func (k Kind) String() string {
	switch k {
	case KindHealing:
		return "healing"
	case KindAttack:
		return "attack"
	case KindHitRate:
		return "hit_rate"
	default:
		return "unknown"
	}
}

// ParamType is the declared type of a template parameter
type ParamType int

const (
	ParamInteger ParamType = iota + 1
	ParamReal
	ParamDuration
)

func (p ParamType) String() string {
	switch p {
	case ParamInteger:
		return "integer"
	case ParamReal:
		return "real"
	case ParamDuration:
		return "duration"
	default:
		return "unknown"
	}
}

const (
	wellFedMultiplier = 1.05
	wellFedStack      = 1
)

var wellFedDuration = date.MustParsePeriod("6 hours")

// Template turns a string parameter list into an Effect. Templates are
// values built once when the registry is constructed.
type Template struct {
	kind   Kind
	params []ParamType

	// tuning used when the template takes no parameters
	fixedMultiplier float64
	fixedDuration   date.Duration
	fixedStack      int
}

// HealingTemplate takes [integer amount]
func HealingTemplate() Template {
	return Template{kind: KindHealing, params: []ParamType{ParamInteger}}
}

// AttackTemplate takes [integer bonus, duration]. Attack conditions stack
// without limit.
func AttackTemplate() Template {
	return Template{kind: KindAttack, params: []ParamType{ParamInteger, ParamDuration}}
}

// HitRateTemplate takes [real multiplier, duration, integer stack cap]
func HitRateTemplate() Template {
	return Template{kind: KindHitRate, params: []ParamType{ParamReal, ParamDuration, ParamInteger}}
}

// FixedHitRateTemplate takes no parameters and always yields the given hit
// rate effect
func FixedHitRateTemplate(multiplier float64, duration date.Duration, maximumStack int) Template {
	return Template{
		kind:            KindHitRate,
		fixedMultiplier: multiplier,
		fixedDuration:   duration,
		fixedStack:      maximumStack,
	}
}

// WellFedTemplate is the x1.05 hit rate for 6 hours template, stack cap 1
func WellFedTemplate() Template {
	return FixedHitRateTemplate(wellFedMultiplier, wellFedDuration, wellFedStack)
}

// Kind returns the kind of effect the template produces
func (t Template) Kind() Kind {
	return t.kind
}

// Params returns a copy of the declared parameter types
func (t Template) Params() []ParamType {
	params := make([]ParamType, len(t.params))
	copy(params, t.params)
	return params
}

// Instantiate validates parameters and builds an effect named id
func (t Template) Instantiate(id ID, parameters []string) (*Effect, error) {
	if len(parameters) != len(t.params) {
		if len(t.params) == 0 {
			return nil, dngerr.InvalidParameterf("%s expected an empty parameter list, got %d parameter(s)", id, len(parameters)).
				WithMeta("effect_id", string(id))
		}
		return nil, dngerr.InvalidParameterf("%s expected %d parameter(s), got %d", id, len(t.params), len(parameters)).
			WithMeta("effect_id", string(id))
	}

	var (
		ints      []int
		reals     []float64
		durations []date.Duration
	)
	for i, raw := range parameters {
		switch t.params[i] {
		case ParamInteger:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, paramError(dngerr.InvalidParameterf("%s parameter %d: %q is not an integer", id, i, raw), id, i, raw)
			}
			ints = append(ints, v)
		case ParamReal:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, paramError(dngerr.InvalidParameterf("%s parameter %d: %q is not a real number", id, i, raw), id, i, raw)
			}
			reals = append(reals, v)
		case ParamDuration:
			v, err := date.ParsePeriod(raw)
			if err != nil {
				return nil, paramError(dngerr.WrapWithCode(err, dngerr.CodeDurationParse,
					fmt.Sprintf("%s parameter %d", id, i)), id, i, raw)
			}
			durations = append(durations, v)
		}
	}

	effect := &Effect{id: id, kind: t.kind, maximumStack: conditions.UnboundedStack}
	switch t.kind {
	case KindHealing:
		effect.healing = ints[0]
	case KindAttack:
		effect.attackBonus = ints[0]
		effect.duration = durations[0]
	case KindHitRate:
		if len(t.params) == 0 {
			effect.multiplier = t.fixedMultiplier
			effect.duration = t.fixedDuration
			effect.maximumStack = t.fixedStack
			break
		}
		if reals[0] <= 0 {
			return nil, paramError(dngerr.InvalidParameterf("%s multiplier must be positive, got %v", id, reals[0]), id, 0, parameters[0])
		}
		if ints[0] < 1 {
			return nil, paramError(dngerr.InvalidParameterf("%s stack cap must be at least 1, got %d", id, ints[0]), id, 2, parameters[2])
		}
		effect.multiplier = reals[0]
		effect.duration = durations[0]
		effect.maximumStack = ints[0]
	default:
		return nil, dngerr.Internalf("template for %s has no kind", id)
	}

	return effect, nil
}

func paramError(err *dngerr.Error, id ID, index int, raw string) *dngerr.Error {
	return err.
		WithMeta("effect_id", string(id)).
		WithMeta("parameter_index", index).
		WithMeta("parameter", raw)
}
