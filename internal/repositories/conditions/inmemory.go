package conditions

import (
	"context"
	"sync"

	domainconditions "github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

type inMemoryRepo struct {
	mu        sync.RWMutex
	snapshots map[string][]domainconditions.Data
}

// NewInMemoryRepository creates a repository that keeps snapshots in memory
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		snapshots: make(map[string][]domainconditions.Data),
	}
}

func (r *inMemoryRepo) Save(_ context.Context, creatureID string, data []domainconditions.Data) error {
	if creatureID == "" {
		return dngerr.InvalidArgument("creature ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[creatureID] = copyData(data)
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, creatureID string) ([]domainconditions.Data, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.snapshots[creatureID]
	if !exists {
		return nil, dngerr.NotFoundf("conditions of creature %s not found", creatureID).
			WithMeta("creature_id", creatureID)
	}
	return copyData(data), nil
}

func (r *inMemoryRepo) GetMany(_ context.Context, creatureIDs []string) (map[string][]domainconditions.Data, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]domainconditions.Data, len(creatureIDs))
	for _, id := range creatureIDs {
		if data, exists := r.snapshots[id]; exists {
			result[id] = copyData(data)
		}
	}
	return result, nil
}

func (r *inMemoryRepo) Delete(_ context.Context, creatureID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, creatureID)
	return nil
}

// Data holds only value fields, so a shallow slice copy is a deep copy
func copyData(data []domainconditions.Data) []domainconditions.Data {
	copied := make([]domainconditions.Data, len(data))
	copy(copied, data)
	return copied
}
