package events

//go:generate mockgen -destination=mock/mock_event_listener.go -package=mockevents -source=interfaces.go EventListener

// EventListener represents an object that can handle game events
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// ListenerFunc adapts a function to an EventListener with priority 0
type ListenerFunc func(event *GameEvent) error

// HandleEvent calls f(event)
func (f ListenerFunc) HandleEvent(event *GameEvent) error {
	return f(event)
}

// Priority returns 0
func (f ListenerFunc) Priority() int {
	return 0
}
