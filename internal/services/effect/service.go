// Package effect resolves effects against creatures and keeps their
// condition snapshots in sync with storage.
package effect

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/creature"
	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	conditionsRepo "github.com/KirkDiggler/dungeon-effects/internal/repositories/conditions"
)

// Repository is an alias for the condition repository interface
type Repository = conditionsRepo.Repository

// Service applies effects to creatures
type Service interface {
	// Apply resolves id with params and applies it to c. The boolean reports
	// whether the creature accepted the effect.
	Apply(ctx context.Context, c *creature.Creature, id effects.ID, params []string) (bool, error)

	// ApplyEffect applies an already resolved effect, such as a catalog entry
	ApplyEffect(ctx context.Context, c *creature.Creature, e *effects.Effect) (bool, error)

	// Save persists the conditions of c
	Save(ctx context.Context, c *creature.Creature) error

	// Restore replaces the conditions of c with its stored snapshot and
	// drops the ones that expired in the meantime
	Restore(ctx context.Context, c *creature.Creature) error

	// RestoreAll restores every creature that has a stored snapshot.
	// Creatures without one are left untouched.
	RestoreAll(ctx context.Context, creatures []*creature.Creature) error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Registry   *effects.Registry // Required
	Repository Repository        // Optional, nothing is persisted when nil
}

type service struct {
	registry   *effects.Registry
	repository Repository
	logger     *slog.Logger
}

// NewService creates a new effect service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}

	return &service{
		registry:   cfg.Registry,
		repository: cfg.Repository,
		logger:     slog.With("component", "effect_service"),
	}
}

func (s *service) Apply(ctx context.Context, c *creature.Creature, id effects.ID, params []string) (bool, error) {
	if c == nil {
		return false, dngerr.InvalidArgument("creature is required")
	}

	e, err := s.registry.Resolve(id, params)
	if err != nil {
		return false, dngerr.Wrapf(err, "apply %s to %s", id, c.ID()).
			WithMeta("creature_id", c.ID())
	}

	return s.ApplyEffect(ctx, c, e)
}

func (s *service) ApplyEffect(ctx context.Context, c *creature.Creature, e *effects.Effect) (bool, error) {
	if c == nil {
		return false, dngerr.InvalidArgument("creature is required")
	}
	if e == nil {
		return false, dngerr.InvalidArgument("effect is required")
	}

	applied := e.Affect(c)
	s.logger.Info("effect applied",
		"creature_id", c.ID(),
		"effect", e.String(),
		"accepted", applied,
		"world_date", c.WorldDate().String())

	if !applied || e.Kind() == effects.KindHealing {
		return applied, nil
	}
	if err := s.Save(ctx, c); err != nil {
		return true, err
	}
	return true, nil
}

func (s *service) Save(ctx context.Context, c *creature.Creature) error {
	if s.repository == nil {
		return nil
	}
	if c == nil {
		return dngerr.InvalidArgument("creature is required")
	}

	if err := s.repository.Save(ctx, c.ID(), c.Conditions().Snapshot()); err != nil {
		return dngerr.Wrapf(err, "save conditions of %s", c.ID()).
			WithMeta("creature_id", c.ID())
	}
	return nil
}

func (s *service) Restore(ctx context.Context, c *creature.Creature) error {
	if s.repository == nil {
		return dngerr.Internalf("no condition repository configured")
	}
	if c == nil {
		return dngerr.InvalidArgument("creature is required")
	}

	data, err := s.repository.Get(ctx, c.ID())
	if err != nil {
		return dngerr.Wrapf(err, "restore conditions of %s", c.ID())
	}
	return s.restore(c, data)
}

func (s *service) RestoreAll(ctx context.Context, creatures []*creature.Creature) error {
	if s.repository == nil {
		return dngerr.Internalf("no condition repository configured")
	}

	ids := make([]string, 0, len(creatures))
	for _, c := range creatures {
		if c == nil {
			return dngerr.InvalidArgument("creature is required")
		}
		ids = append(ids, c.ID())
	}

	snapshots, err := s.repository.GetMany(ctx, ids)
	if err != nil {
		return dngerr.Wrap(err, "restore conditions")
	}

	for _, c := range creatures {
		data, ok := snapshots[c.ID()]
		if !ok {
			continue
		}
		if err := s.restore(c, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) restore(c *creature.Creature, data []conditions.Data) error {
	if err := c.Conditions().Restore(data); err != nil {
		return dngerr.Wrapf(err, "restore conditions of %s", c.ID()).
			WithMeta("creature_id", c.ID())
	}

	expired := c.Conditions().Prune(c.WorldDate())
	s.logger.Debug("conditions restored",
		"creature_id", c.ID(), "active", c.Conditions().Len(), "expired", len(expired))
	return nil
}
