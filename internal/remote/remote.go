package remote

import (
	"context"

	"menu-planner/internal/model"
)

// Store is the remote persistence boundary. The remote service is
// authoritative for cross-device durability but reachable only sometimes;
// every operation is individually fallible and callers treat failures as
// non-fatal.
type Store interface {
	// FetchUser returns (nil, nil) when no document exists for the id.
	FetchUser(ctx context.Context, id string) (*model.User, error)
	PutUser(ctx context.Context, u model.User) error

	// FetchAllRecipes decodes each document defensively: malformed documents
	// are skipped, never aborting the batch.
	FetchAllRecipes(ctx context.Context) ([]model.Recipe, error)
	PutRecipes(ctx context.Context, recipes []model.Recipe) error

	PutPlan(ctx context.Context, key string, p model.MenuPlan) error
	// DeletePlansMatching removes every plan document whose plan_id matches.
	// Zero matches is a normal outcome.
	DeletePlansMatching(ctx context.Context, planID int64) (int64, error)
}
