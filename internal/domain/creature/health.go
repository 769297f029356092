package creature

import "fmt"

// Health is a creature's hit point pool. Current stays within [0, Maximum].
type Health struct {
	current int
	maximum int
}

// NewHealth creates a pool with current clamped to [0, maximum]
func NewHealth(current, maximum int) *Health {
	h := &Health{maximum: maximum}
	h.set(current)
	return h
}

func (h *Health) Current() int { return h.current }
func (h *Health) Maximum() int { return h.maximum }

// IncrementBy adds n (which may be negative) and returns the change that
// was actually applied after clamping
func (h *Health) IncrementBy(n int) int {
	before := h.current
	h.set(h.current + n)
	return h.current - before
}

// DecrementBy removes n and returns the damage actually taken
func (h *Health) DecrementBy(n int) int {
	return -h.IncrementBy(-n)
}

// IsDead reports whether the pool is empty
func (h *Health) IsDead() bool {
	return h.current == 0
}

func (h *Health) String() string {
	return fmt.Sprintf("%d/%d", h.current, h.maximum)
}

func (h *Health) set(v int) {
	switch {
	case v < 0:
		h.current = 0
	case v > h.maximum:
		h.current = h.maximum
	default:
		h.current = v
	}
}
