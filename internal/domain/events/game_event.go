package events

// GameEvent represents a game event that can be processed by the event system
type GameEvent struct {
	Type      EventType
	EntityID  string                 // Creature the event is about
	Context   map[string]interface{} // Flexible context data
	Cancelled bool                   // Events can be cancelled
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType EventType, entityID string) *GameEvent {
	return &GameEvent{
		Type:     eventType,
		EntityID: entityID,
		Context:  make(map[string]interface{}),
	}
}

// WithContext adds context data to the event
func (e *GameEvent) WithContext(key string, value interface{}) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel marks the event as cancelled; remaining listeners are skipped
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

// GetContext retrieves a value from the context
func (e *GameEvent) GetContext(key string) (interface{}, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// GetIntContext retrieves an int value from the context
func (e *GameEvent) GetIntContext(key string) (int, bool) {
	val, exists := e.Context[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// GetStringContext retrieves a string value from the context
func (e *GameEvent) GetStringContext(key string) (string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}
