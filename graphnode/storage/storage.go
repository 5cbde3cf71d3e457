package storage

import (
	"context"

	graphnode "github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
)

// Store persists entities keyed by (table, id). Load of an absent id is not
// an error: the entity comes back with Exists() == false and the caller
// decides what a miss means.
type Store interface {
	Load(ctx context.Context, entity graphnode.Entity) error
	Save(ctx context.Context, entity graphnode.Entity) error
	Delete(ctx context.Context, entity graphnode.Entity) error

	LoadAllDistinct(ctx context.Context, model graphnode.Entity) ([]graphnode.Entity, error)

	Close() error
}
