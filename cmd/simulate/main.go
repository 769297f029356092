package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-effects/internal/config"
	"github.com/KirkDiggler/dungeon-effects/internal/content"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/creature"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/events"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/world"
	"github.com/KirkDiggler/dungeon-effects/internal/effects"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/KirkDiggler/dungeon-effects/internal/repositories/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/services/effect"
	"github.com/KirkDiggler/dungeon-effects/internal/uuid"
)

// Usage: simulate [catalog-key ...]
//
// Applies the given catalog entries (all of them when none are given) to a
// test creature, then advances the world clock SIM_STEPS times by SIM_STEP
// and prints the creature's stats after each step.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:]); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, keys []string) error {
	registry := effects.NewRegistry()

	catalog, err := content.LoadCatalogFile(cfg.EffectsFile, registry, content.WithSkipInvalid())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		keys = catalog.Keys()
	}

	repo, cleanup := newRepository(ctx, cfg.Redis)
	defer cleanup()

	svc := effect.NewService(&effect.ServiceConfig{
		Registry:   registry,
		Repository: repo,
	})

	bus := events.NewEventBus()
	for _, et := range []events.EventType{
		events.OnConditionApplied,
		events.OnConditionRejected,
		events.OnConditionEvicted,
		events.OnConditionExpired,
		events.OnHealthChanged,
	} {
		bus.Subscribe(et, events.ListenerFunc(printEvent))
	}

	start, err := date.NewDate(1, 1, 1, 8, 0, 0)
	if err != nil {
		return err
	}
	w := world.New("Aldera", start)
	hero := creature.NewCreature(&creature.Config{
		ID:            "hero",
		Name:          "Hero",
		Location:      world.NewLocation("Crossroads Inn", w),
		MaxHealth:     50,
		Health:        creature.StartingHealth(25),
		BaseAttack:    10,
		BaseHitRate:   0.9,
		EventBus:      bus,
		UUIDGenerator: uuid.NewSequentialGenerator("hero"),
		StackPolicy:   cfg.Simulation.StackPolicy,
	})

	if err := svc.Restore(ctx, hero); err != nil && !dngerr.IsNotFound(err) {
		return err
	}

	for _, key := range keys {
		e, err := catalog.Get(key)
		if err != nil {
			return err
		}
		applied, err := svc.ApplyEffect(ctx, hero, e)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %-45s applied=%v\n", key, e, applied)
	}

	printStats(hero)
	for i := 0; i < cfg.Simulation.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Advance(cfg.Simulation.Step)
		printStats(hero)
	}

	return svc.Save(ctx, hero)
}

func newRepository(ctx context.Context, cfg config.RedisConfig) (conditions.Repository, func()) {
	noop := func() {}
	if !cfg.Enabled() {
		slog.Info("REDIS_URL not set, keeping conditions in memory")
		return conditions.NewInMemoryRepository(), noop
	}

	opts, err := cfg.Options()
	if err != nil {
		slog.Warn("falling back to in-memory conditions", "error", err)
		return conditions.NewInMemoryRepository(), noop
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, falling back to in-memory conditions", "addr", opts.Addr, "error", err)
		_ = client.Close()
		return conditions.NewInMemoryRepository(), noop
	}

	slog.Info("connected to redis", "addr", opts.Addr)
	return conditions.NewRedis(client), func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
}

func printEvent(e *events.GameEvent) error {
	effectID, _ := e.GetStringContext(events.ContextEffectID)
	slog.Debug("event", "type", e.Type.String(), "entity_id", e.EntityID, "effect_id", effectID)
	return nil
}

func printStats(c *creature.Creature) {
	descriptions := c.ConditionDescriptions()
	if len(descriptions) == 0 {
		descriptions = []string{"none"}
	}
	fmt.Printf("[%s] health=%s attack=%d hit_rate=%s conditions=%s\n",
		c.WorldDate(), c.Health(), c.Attack(), c.HitRate(), strings.Join(descriptions, ", "))
}
