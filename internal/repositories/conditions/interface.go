package conditions

//go:generate mockgen -destination=mock/mock.go -package=mockconditions -source=interface.go

import (
	"context"

	domainconditions "github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
)

// Repository stores the condition snapshot of each creature
type Repository interface {
	// Save replaces the stored snapshot of a creature
	Save(ctx context.Context, creatureID string, data []domainconditions.Data) error

	// Get returns the stored snapshot of a creature, or a not found error
	Get(ctx context.Context, creatureID string) ([]domainconditions.Data, error)

	// GetMany returns the snapshots of every creature that has one.
	// Creatures without a snapshot are omitted from the result.
	GetMany(ctx context.Context, creatureIDs []string) (map[string][]domainconditions.Data, error)

	// Delete removes the snapshot of a creature. Deleting a missing snapshot
	// is not an error.
	Delete(ctx context.Context, creatureID string) error
}
