package effects

// ID names an effect template in the registry
type ID string

const (
	// Healing restores health instantly. Parameters: [integer amount]
	Healing ID = "HEALING"
	// ExtraAttack raises attack for a while. Parameters: [integer bonus, duration]
	ExtraAttack ID = "EXTRA_ATTACK"
	// WellFed multiplies hit rate by 1.05 for 6 hours. Takes no parameters.
	WellFed ID = "WELL_FED"
	// HitRate multiplies hit rate for a while.
	// Parameters: [real multiplier, duration, integer stack cap]
	HitRate ID = "HIT_RATE"
)

func (id ID) String() string {
	return string(id)
}
