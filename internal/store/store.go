package store

import (
	"context"

	"menu-planner/internal/model"
)

// LocalStore is the durable local persistence boundary. It is the source of
// truth for offline reads; the remote store only catches up with it.
//
// Lookups return (nil, nil) when the entity does not exist. Any error from a
// LocalStore is fatal to the operation that triggered it.
type LocalStore interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	PutUser(ctx context.Context, u model.User) error

	GetAllRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipesByIDs(ctx context.Context, ids []int64) ([]model.Recipe, error)
	PutRecipes(ctx context.Context, recipes []model.Recipe) error
	IncrementRecipeUsage(ctx context.Context, ids []int64) error

	GetActivePlan(ctx context.Context, userID string) (*model.MenuPlan, error)
	ListPlans(ctx context.Context, userID string) ([]model.MenuPlan, error)
	PutPlan(ctx context.Context, p *model.MenuPlan) error
	SetPlanFavorite(ctx context.Context, planID int64, favorite bool) error
	DeactivateAllPlans(ctx context.Context, userID string) error
	DeletePlan(ctx context.Context, planID int64) error
}
