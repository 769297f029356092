package events

// EventType represents the type of game event
type EventType int

const (
	// Condition lifecycle
	OnConditionApplied EventType = iota
	OnConditionRejected
	OnConditionEvicted
	OnConditionExpired

	// Creature state
	OnHealthChanged
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"OnConditionApplied",
		"OnConditionRejected",
		"OnConditionEvicted",
		"OnConditionExpired",
		"OnHealthChanged",
	}
	if int(e) < 0 || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}

// Context keys for event data
const (
	ContextConditionID  = "condition_id"  // string: instance ID of the condition
	ContextEffectID     = "effect_id"     // string: ID of the originating effect
	ContextExpiresAt    = "expires_at"    // date.Date: expiration of the condition
	ContextDescription  = "description"   // string: human readable condition summary
	ContextActiveCount  = "active_count"  // int: same-effect conditions already active
	ContextMaximumStack = "maximum_stack" // int: stack cap of the effect
	ContextHealthBefore = "health_before" // int
	ContextHealthAfter  = "health_after"  // int
	ContextWorldDate    = "world_date"    // date.Date: clock reading when the event fired
)
