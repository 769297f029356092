// Package world owns the simulation clock that conditions expire against.
package world

import (
	"log/slog"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// World holds the current simulated date. Time only moves forward and only
// when the simulation advances it.
//
// World is not safe for concurrent use; the simulation loop owns it.
type World struct {
	name string
	now  date.Date
}

// New creates a world whose clock starts at start
func New(name string, start date.Date) *World {
	return &World{name: name, now: start}
}

// Name returns the world name
func (w *World) Name() string {
	return w.name
}

// Now returns the current simulated date
func (w *World) Now() date.Date {
	return w.now
}

// Advance moves the clock forward by d
func (w *World) Advance(d date.Duration) date.Date {
	w.now = w.now.Add(d)
	slog.Debug("world clock advanced", "world", w.name, "by", d.String(), "now", w.now.String())
	return w.now
}

// AdvanceTo moves the clock to target. Moving backwards is rejected.
func (w *World) AdvanceTo(target date.Date) error {
	if target.Before(w.now) {
		return dngerr.InvalidArgumentf("cannot move world %q back from %s to %s", w.name, w.now, target).
			WithMeta("world", w.name)
	}
	w.now = target
	return nil
}

// Location is a place inside a world. Creatures read the world clock through
// their location.
type Location struct {
	name  string
	world *World
}

// NewLocation creates a location inside w
func NewLocation(name string, w *World) *Location {
	return &Location{name: name, world: w}
}

// Name returns the location name
func (l *Location) Name() string {
	return l.name
}

// World returns the world the location belongs to
func (l *Location) World() *World {
	return l.world
}
