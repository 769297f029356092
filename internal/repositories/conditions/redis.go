package conditions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	domainconditions "github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed condition repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a repository around an existing client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(creatureID string) string {
	return fmt.Sprintf("creature:%s:conditions", creatureID)
}

func (r *redisRepo) Save(ctx context.Context, creatureID string, data []domainconditions.Data) error {
	if creatureID == "" {
		return dngerr.InvalidArgument("creature ID is required")
	}
	if data == nil {
		data = []domainconditions.Data{}
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal conditions of %s: %w", creatureID, err)
	}

	if err := r.client.Set(ctx, r.key(creatureID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to save conditions of %s to Redis: %w", creatureID, err)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, creatureID string) ([]domainconditions.Data, error) {
	jsonData, err := r.client.Get(ctx, r.key(creatureID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dngerr.NotFoundf("conditions of creature %s not found", creatureID).
				WithMeta("creature_id", creatureID)
		}
		return nil, fmt.Errorf("failed to get conditions of %s from Redis: %w", creatureID, err)
	}

	var data []domainconditions.Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conditions of %s: %w", creatureID, err)
	}
	return data, nil
}

func (r *redisRepo) GetMany(ctx context.Context, creatureIDs []string) (map[string][]domainconditions.Data, error) {
	var mu sync.Mutex
	result := make(map[string][]domainconditions.Data, len(creatureIDs))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range creatureIDs {
		id := id
		g.Go(func() error {
			data, err := r.Get(ctx, id)
			if err != nil {
				if dngerr.IsNotFound(err) {
					return nil
				}
				return err
			}

			mu.Lock()
			result[id] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *redisRepo) Delete(ctx context.Context, creatureID string) error {
	if err := r.client.Del(ctx, r.key(creatureID)).Err(); err != nil {
		return fmt.Errorf("failed to delete conditions of %s from Redis: %w", creatureID, err)
	}
	return nil
}
