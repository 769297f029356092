package effect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/creature"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/world"
	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	conditionsRepo "github.com/KirkDiggler/dungeon-effects/internal/repositories/conditions"
	mockconditions "github.com/KirkDiggler/dungeon-effects/internal/repositories/conditions/mock"
	"github.com/KirkDiggler/dungeon-effects/internal/services/effect"
	"github.com/KirkDiggler/dungeon-effects/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mockconditions.MockRepository
	service  effect.Service
	world    *world.World
	hero     *creature.Creature
	ctx      context.Context
	registry *effects.Registry
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockconditions.NewMockRepository(s.ctrl)
	s.registry = effects.NewRegistry()
	s.service = effect.NewService(&effect.ServiceConfig{
		Registry:   s.registry,
		Repository: s.repo,
	})
	s.world = testutils.CreateTestWorld()
	s.hero = testutils.CreateTestCreature("hero", s.world, nil)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestApplyPersistsConditions() {
	s.repo.EXPECT().Save(s.ctx, "hero", gomock.Len(1)).Return(nil)

	applied, err := s.service.Apply(s.ctx, s.hero, effects.ExtraAttack, []string{"3", "6 hours"})
	s.Require().NoError(err)
	s.True(applied)
	s.Equal(13, s.hero.Attack())
}

func (s *ServiceTestSuite) TestApplyHealingDoesNotPersist() {
	applied, err := s.service.Apply(s.ctx, s.hero, effects.Healing, []string{"10"})
	s.Require().NoError(err)
	s.True(applied)
	s.Equal(30, s.hero.Health().Current())
}

func (s *ServiceTestSuite) TestApplyRejectedDoesNotPersist() {
	s.repo.EXPECT().Save(s.ctx, "hero", gomock.Any()).Return(nil).Times(1)

	applied, err := s.service.Apply(s.ctx, s.hero, effects.WellFed, nil)
	s.Require().NoError(err)
	s.True(applied)

	applied, err = s.service.Apply(s.ctx, s.hero, effects.WellFed, nil)
	s.Require().NoError(err)
	s.False(applied)
}

func (s *ServiceTestSuite) TestApplyResolveErrors() {
	_, err := s.service.Apply(s.ctx, s.hero, "NONEXISTENT", nil)
	s.True(dngerr.IsUnknownEffect(err))
	s.Equal("hero", dngerr.GetMeta(err)["creature_id"])

	_, err = s.service.Apply(s.ctx, s.hero, effects.WellFed, []string{"x"})
	s.True(dngerr.IsInvalidParameter(err))

	_, err = s.service.Apply(s.ctx, nil, effects.WellFed, nil)
	s.True(dngerr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestApplySaveFailure() {
	s.repo.EXPECT().Save(s.ctx, "hero", gomock.Any()).Return(errors.New("redis down"))

	applied, err := s.service.Apply(s.ctx, s.hero, effects.ExtraAttack, []string{"1", "1 hour"})
	s.Error(err)
	s.True(applied, "the creature keeps the condition")
}

func (s *ServiceTestSuite) TestRestorePrunesExpired() {
	data := testutils.CreateTestConditionData()
	data[0].ExpiresAt = testutils.TestWorldStart.Plus(1, date.Hour).Seconds()
	s.world.Advance(date.MustParsePeriod("2 hours"))

	s.repo.EXPECT().Get(s.ctx, "hero").Return(data, nil)

	s.Require().NoError(s.service.Restore(s.ctx, s.hero))
	s.Equal(1, s.hero.Conditions().Len())
	s.Equal(10, s.hero.Attack())
	s.Equal([]string{"+5% hit rate"}, s.hero.ConditionDescriptions())
}

func (s *ServiceTestSuite) TestRestoreNotFound() {
	s.repo.EXPECT().Get(s.ctx, "hero").Return(nil, dngerr.NotFoundf("conditions of creature hero not found"))

	err := s.service.Restore(s.ctx, s.hero)
	s.True(dngerr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestRestoreInvalidSnapshot() {
	data := testutils.CreateTestConditionData()
	data[1].Kind = "poison"
	s.repo.EXPECT().Get(s.ctx, "hero").Return(data, nil)

	err := s.service.Restore(s.ctx, s.hero)
	s.True(dngerr.IsInvalidArgument(err))
	s.Zero(s.hero.Conditions().Len())
}

func (s *ServiceTestSuite) TestRestoreAll() {
	rat := testutils.CreateTestCreature("rat", s.world, nil)
	s.repo.EXPECT().GetMany(s.ctx, []string{"hero", "rat"}).
		Return(map[string][]conditions.Data{"hero": testutils.CreateTestConditionData()}, nil)

	s.Require().NoError(s.service.RestoreAll(s.ctx, []*creature.Creature{s.hero, rat}))
	s.Equal(2, s.hero.Conditions().Len())
	s.Zero(rat.Conditions().Len())
}

func (s *ServiceTestSuite) TestRestoreAllRepositoryError() {
	s.repo.EXPECT().GetMany(s.ctx, []string{"hero"}).Return(nil, errors.New("timeout"))

	s.Error(s.service.RestoreAll(s.ctx, []*creature.Creature{s.hero}))
}

// Round trip through the in-memory repository: the restored creature
// behaves exactly like the creature it was saved from.
func TestSaveRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := effect.NewService(&effect.ServiceConfig{
		Registry:   effects.NewRegistry(),
		Repository: conditionsRepo.NewInMemoryRepository(),
	})

	w := testutils.CreateTestWorld()
	hero := testutils.CreateTestCreature("hero", w, nil)
	for _, apply := range []struct {
		id     effects.ID
		params []string
	}{
		{effects.ExtraAttack, []string{"3", "6 hours"}},
		{effects.WellFed, nil},
		{effects.HitRate, []string{"0.9", "1 day", "1"}},
	} {
		if _, err := svc.Apply(ctx, hero, apply.id, apply.params); err != nil {
			t.Fatalf("apply %s: %v", apply.id, err)
		}
	}

	clone := testutils.CreateTestCreature("hero", w, nil)
	if err := svc.Restore(ctx, clone); err != nil {
		t.Fatalf("restore: %v", err)
	}

	for _, step := range []string{"1 hour", "5 hours", "1 day"} {
		if hero.Attack() != clone.Attack() || hero.HitRate() != clone.HitRate() {
			t.Fatalf("at %s: saved %d/%s, restored %d/%s",
				w.Now(), hero.Attack(), hero.HitRate(), clone.Attack(), clone.HitRate())
		}
		w.Advance(date.MustParsePeriod(step))
	}
}

func TestNewServicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without registry")
		}
	}()
	effect.NewService(&effect.ServiceConfig{})
}
