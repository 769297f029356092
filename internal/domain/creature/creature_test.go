package creature_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/creature"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/events"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/shared"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/world"
	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/KirkDiggler/dungeon-effects/internal/uuid"
	"github.com/stretchr/testify/suite"
)

type CreatureSuite struct {
	suite.Suite
	world    *world.World
	bus      *events.EventBus
	registry *effects.Registry
	hero     *creature.Creature
}

func TestCreatureSuite(t *testing.T) {
	suite.Run(t, new(CreatureSuite))
}

func (s *CreatureSuite) SetupTest() {
	s.world = world.New("Aldera", date.Epoch.Plus(2, date.Day))
	s.bus = events.NewEventBus()
	s.registry = effects.NewRegistry()
	s.hero = creature.NewCreature(&creature.Config{
		ID:            "hero",
		Location:      world.NewLocation("Tavern", s.world),
		MaxHealth:     50,
		Health:        creature.StartingHealth(20),
		BaseAttack:    10,
		BaseHitRate:   0.98,
		EventBus:      s.bus,
		UUIDGenerator: uuid.NewSequentialGenerator("hero"),
	})
}

func (s *CreatureSuite) apply(id effects.ID, params ...string) bool {
	effect, err := s.registry.Resolve(id, params)
	s.Require().NoError(err)
	return effect.Affect(s.hero)
}

func (s *CreatureSuite) TestHealingHealsExactly() {
	var before, after int
	s.bus.Subscribe(events.OnHealthChanged, events.ListenerFunc(func(e *events.GameEvent) error {
		before, _ = e.GetIntContext(events.ContextHealthBefore)
		after, _ = e.GetIntContext(events.ContextHealthAfter)
		return nil
	}))

	s.True(s.apply(effects.Healing, "10"))

	s.Equal(30, s.hero.Health().Current())
	s.Zero(s.hero.Conditions().Len())
	s.Equal(20, before)
	s.Equal(30, after)
}

func (s *CreatureSuite) TestHealingClampsToMaximum() {
	s.True(s.apply(effects.Healing, "100"))
	s.Equal(50, s.hero.Health().Current())

	s.True(s.apply(effects.Healing, "-80"))
	s.Equal(0, s.hero.Health().Current())
	s.True(s.hero.Health().IsDead())
}

func (s *CreatureSuite) TestExtraAttackUntilExpiry() {
	s.True(s.apply(effects.ExtraAttack, "3", "6 hours"))

	s.Equal(1, s.hero.Conditions().Len())
	s.Equal(13, s.hero.Attack())
	s.Equal([]string{"+3 to attack"}, s.hero.ConditionDescriptions())

	s.world.Advance(date.MustParsePeriod("5 hours, 59 minutes"))
	s.Equal(13, s.hero.Attack())

	s.world.Advance(date.MustParsePeriod("1 minute"))
	s.Equal(10, s.hero.Attack())
	s.Zero(s.hero.Conditions().Len())
}

func (s *CreatureSuite) TestExtraAttackStacks() {
	s.True(s.apply(effects.ExtraAttack, "3", "6 hours"))
	s.True(s.apply(effects.ExtraAttack, "2", "1 hour"))

	s.Equal(15, s.hero.Attack())
	s.world.Advance(date.MustParsePeriod("1 hour"))
	s.Equal(13, s.hero.Attack())
}

func (s *CreatureSuite) TestWellFedDoesNotStack() {
	s.True(s.apply(effects.WellFed))
	s.False(s.apply(effects.WellFed))

	s.Equal(1, s.hero.Conditions().Len())
}

func (s *CreatureSuite) TestWellFedClampsHitRate() {
	s.True(s.apply(effects.WellFed))

	s.Equal(shared.Full, s.hero.HitRate())
	s.Equal([]string{"+5% hit rate"}, s.hero.ConditionDescriptions())

	s.world.Advance(date.MustParsePeriod("6 hours"))
	s.InDelta(0.98, s.hero.HitRate().Float64(), 1e-9)
}

func (s *CreatureSuite) TestWellFedRejectsParameters() {
	_, err := s.registry.Resolve(effects.WellFed, []string{"x"})
	s.True(dngerr.IsInvalidParameter(err))
}

func (s *CreatureSuite) TestDefaults() {
	c := creature.NewCreature(&creature.Config{
		ID:        "rat",
		Location:  world.NewLocation("Cellar", s.world),
		MaxHealth: 4,
	})

	s.Equal("rat", c.Name())
	s.Equal(4, c.Health().Current())
	s.Equal(s.world.Now(), c.WorldDate())
	s.Equal("Cellar", c.Location().Name())
}

func (s *CreatureSuite) TestZeroStartingHealth() {
	c := creature.NewCreature(&creature.Config{
		ID:        "corpse",
		Location:  world.NewLocation("Cellar", s.world),
		MaxHealth: 4,
		Health:    creature.StartingHealth(0),
	})

	s.Equal(0, c.Health().Current())
	s.True(c.Health().IsDead())
}

func (s *CreatureSuite) TestNewCreaturePanicsOnMissingFields() {
	loc := world.NewLocation("Nowhere", s.world)

	s.Panics(func() { creature.NewCreature(nil) })
	s.Panics(func() { creature.NewCreature(&creature.Config{Location: loc, MaxHealth: 1}) })
	s.Panics(func() { creature.NewCreature(&creature.Config{ID: "x", MaxHealth: 1}) })
	s.Panics(func() { creature.NewCreature(&creature.Config{ID: "x", Location: loc}) })
}

func TestHealth(t *testing.T) {
	h := creature.NewHealth(5, 10)

	if got := h.IncrementBy(8); got != 5 {
		t.Fatalf("expected 5 applied, got %d", got)
	}
	if got := h.DecrementBy(3); got != 3 || h.Current() != 7 {
		t.Fatalf("expected 3 damage leaving 7, got %d leaving %d", got, h.Current())
	}
	if got := h.DecrementBy(20); got != 7 || !h.IsDead() {
		t.Fatalf("expected 7 damage and death, got %d (%s)", got, h)
	}
}
