package testutils

import (
	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/creature"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/events"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/world"
	"github.com/KirkDiggler/dungeon-effects/internal/uuid"
)

// TestWorldStart is the date test worlds start at: year 1, month 1, day 2
var TestWorldStart = date.Epoch.Plus(1, date.Day)

// CreateTestWorld creates a world starting at TestWorldStart
func CreateTestWorld() *world.World {
	return world.New("Testworld", TestWorldStart)
}

// CreateTestCreature creates a creature with 20/50 health, attack 10 and
// 98% hit rate. Condition IDs are "<id>-1", "<id>-2", ...
func CreateTestCreature(id string, w *world.World, bus *events.EventBus) *creature.Creature {
	return creature.NewCreature(&creature.Config{
		ID:            id,
		Name:          "Test " + id,
		Location:      world.NewLocation("Arena", w),
		MaxHealth:     50,
		Health:        creature.StartingHealth(20),
		BaseAttack:    10,
		BaseHitRate:   0.98,
		EventBus:      bus,
		UUIDGenerator: uuid.NewSequentialGenerator(id),
	})
}

// CreateTestConditionData returns an attack and a hit rate condition
// snapshot, both applied at TestWorldStart and lasting six hours
func CreateTestConditionData() []conditions.Data {
	applied := TestWorldStart
	expires := applied.Plus(6, date.Hour)

	return []conditions.Data{
		{
			ID:           "cond-1",
			Kind:         conditions.KindAttack.String(),
			EffectID:     "EXTRA_ATTACK",
			MaximumStack: conditions.UnboundedStack,
			AppliedAt:    applied.Seconds(),
			ExpiresAt:    expires.Seconds(),
			AttackDelta:  3,
		},
		{
			ID:                "cond-2",
			Kind:              conditions.KindHitRate.String(),
			EffectID:          "WELL_FED",
			MaximumStack:      1,
			AppliedAt:         applied.Seconds(),
			ExpiresAt:         expires.Seconds(),
			HitRateMultiplier: 1.05,
		},
	}
}
