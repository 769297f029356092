// Package creature holds the creatures effects are applied to, along with
// their stat pipeline.
package creature

import (
	"log/slog"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/events"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/shared"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/world"
	"github.com/KirkDiggler/dungeon-effects/internal/uuid"
)

// Config is the configuration for a creature
type Config struct {
	ID          string          // Required
	Name        string          // Defaults to ID
	Location    *world.Location // Required
	MaxHealth   int             // Required, must be positive
	Health      *int            // Defaults to MaxHealth, zero is a dead creature
	BaseAttack  int
	BaseHitRate shared.Percentage

	EventBus      *events.EventBus
	UUIDGenerator uuid.Generator
	StackPolicy   conditions.StackPolicy
}

// StartingHealth returns hp as a Config.Health value
func StartingHealth(hp int) *int {
	return &hp
}

// Creature is a living thing in the simulation. It is single-writer and not
// safe for concurrent use.
type Creature struct {
	id          string
	name        string
	location    *world.Location
	health      *Health
	baseAttack  int
	baseHitRate shared.Percentage
	conditions  *conditions.Holder
	eventBus    *events.EventBus
}

// NewCreature creates a creature from cfg
func NewCreature(cfg *Config) *Creature {
	if cfg == nil {
		panic("creature config cannot be nil")
	}
	if cfg.ID == "" {
		panic("creature ID is required")
	}
	if cfg.Location == nil {
		panic("creature location is required")
	}
	if cfg.MaxHealth <= 0 {
		panic("creature maximum health must be positive")
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}
	current := cfg.MaxHealth
	if cfg.Health != nil {
		current = *cfg.Health
	}

	return &Creature{
		id:          cfg.ID,
		name:        name,
		location:    cfg.Location,
		health:      NewHealth(current, cfg.MaxHealth),
		baseAttack:  cfg.BaseAttack,
		baseHitRate: shared.ClampPercentage(cfg.BaseHitRate.Float64()),
		eventBus:    cfg.EventBus,
		conditions: conditions.NewHolder(&conditions.HolderConfig{
			EntityID:      cfg.ID,
			EventBus:      cfg.EventBus,
			UUIDGenerator: cfg.UUIDGenerator,
			StackPolicy:   cfg.StackPolicy,
		}),
	}
}

func (c *Creature) ID() string                     { return c.id }
func (c *Creature) Name() string                   { return c.name }
func (c *Creature) Health() *Health                { return c.health }
func (c *Creature) Location() *world.Location      { return c.location }
func (c *Creature) BaseAttack() int                { return c.baseAttack }
func (c *Creature) BaseHitRate() shared.Percentage { return c.baseHitRate }
func (c *Creature) Conditions() *conditions.Holder { return c.conditions }

// WorldDate returns the clock of the world the creature is in
func (c *Creature) WorldDate() date.Date {
	return c.location.World().Now()
}

// IncrementHealth heals (or, for negative amounts, hurts) the creature
func (c *Creature) IncrementHealth(amount int) {
	before := c.health.Current()
	applied := c.health.IncrementBy(amount)

	slog.Debug("health changed",
		"creature_id", c.id, "requested", amount, "applied", applied, "health", c.health.String())

	if c.eventBus == nil {
		return
	}
	event := events.NewGameEvent(events.OnHealthChanged, c.id).
		WithContext(events.ContextHealthBefore, before).
		WithContext(events.ContextHealthAfter, c.health.Current()).
		WithContext(events.ContextWorldDate, c.WorldDate())
	if err := c.eventBus.Emit(event); err != nil {
		slog.Warn("failed to emit health event", "creature_id", c.id, "error", err)
	}
}

// AddCondition attaches cond, subject to its stack cap
func (c *Creature) AddCondition(cond conditions.Condition) bool {
	_, added := c.conditions.Add(cond, c.WorldDate())
	return added
}

// Attack returns the base attack modified by every active condition
func (c *Creature) Attack() int {
	return c.conditions.ModifyAttack(c.baseAttack, c.WorldDate())
}

// HitRate returns the base hit rate modified by every active condition
func (c *Creature) HitRate() shared.Percentage {
	return c.conditions.ModifyHitRate(c.baseHitRate, c.WorldDate())
}

// ConditionDescriptions describes every active condition in the order they
// were applied
func (c *Creature) ConditionDescriptions() []string {
	return c.conditions.Descriptions(c.WorldDate())
}
