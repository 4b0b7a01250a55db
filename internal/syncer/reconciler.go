// Package syncer keeps the local store and the remote store convergent under
// partial connectivity.
package syncer

import (
	"context"
	"fmt"

	"menu-planner/internal/logger"
	"menu-planner/internal/model"
	"menu-planner/internal/remote"
	"menu-planner/internal/store"
)

// Result is the terminal state of one sync operation. Every operation is
// attempted exactly once per trigger; there is no retrying state, and a
// skipped operation leaves the entity at its pre-sync local value.
type Result string

const (
	ResultCommitted Result = "committed"
	ResultSkipped   Result = "skipped"
)

// Reconciler orchestrates push and pull between the local and remote stores.
// A nil remote store means the session runs offline: every remote-facing
// operation is skipped.
type Reconciler struct {
	local  store.LocalStore
	remote remote.Store
	seed   []model.Recipe
	log    *logger.Logger
}

// NewReconciler wires a reconciler. seed is the catalog used to bootstrap an
// empty recipe store.
func NewReconciler(local store.LocalStore, rem remote.Store, seed []model.Recipe, log *logger.Logger) *Reconciler {
	return &Reconciler{local: local, remote: rem, seed: seed, log: log}
}

// PullUser fetches the user's remote document and overwrites the local copy
// with it (remote wins). When the remote is unreachable or has no document,
// the local record stands and the pull is skipped. Only a local-store failure
// is returned as an error.
func (r *Reconciler) PullUser(ctx context.Context, id string) (*model.User, Result, error) {
	if r.remote == nil {
		return r.localUser(ctx, id, ResultSkipped)
	}

	remoteUser, err := r.remote.FetchUser(ctx, id)
	if err != nil {
		r.log.Warnw("user pull skipped", "user", id, "error", err)
		return r.localUser(ctx, id, ResultSkipped)
	}
	if remoteUser == nil {
		return r.localUser(ctx, id, ResultSkipped)
	}

	if err := r.local.PutUser(ctx, *remoteUser); err != nil {
		return nil, ResultSkipped, fmt.Errorf("failed to store pulled user: %w", err)
	}
	r.log.Infow("user pulled", "user", id)
	return remoteUser, ResultCommitted, nil
}

func (r *Reconciler) localUser(ctx context.Context, id string, res Result) (*model.User, Result, error) {
	u, err := r.local.GetUser(ctx, id)
	if err != nil {
		return nil, ResultSkipped, err
	}
	return u, res, nil
}

// PushUser pushes the full user document to the remote store. Failures are
// swallowed: local state is authoritative for the session and the remote
// catches up on the next successful push.
func (r *Reconciler) PushUser(ctx context.Context, u model.User) Result {
	if r.remote == nil {
		return ResultSkipped
	}
	if err := r.remote.PutUser(ctx, u); err != nil {
		r.log.Warnw("user push skipped", "user", u.ID, "error", err)
		return ResultSkipped
	}
	return ResultCommitted
}

// PullRecipes replaces the local recipe table with the remote collection.
// An empty remote collection triggers catalog bootstrap: the seed set is
// written locally and pushed remotely best-effort. An unreachable remote
// skips the pull, except that an empty local table is still seeded so
// composition has a catalog to work with. Recipes are never deleted here,
// only inserted or overwritten by id, so re-running an unchanged pull leaves
// the local set unchanged.
func (r *Reconciler) PullRecipes(ctx context.Context) (Result, error) {
	if r.remote == nil {
		return r.seedLocalIfEmpty(ctx)
	}

	remoteRecipes, err := r.remote.FetchAllRecipes(ctx)
	if err != nil {
		r.log.Warnw("recipe pull skipped", "error", err)
		return r.seedLocalIfEmpty(ctx)
	}

	if len(remoteRecipes) == 0 {
		return r.bootstrap(ctx)
	}

	if err := r.local.PutRecipes(ctx, remoteRecipes); err != nil {
		return ResultSkipped, fmt.Errorf("failed to store pulled recipes: %w", err)
	}
	r.log.Infow("recipes pulled", "count", len(remoteRecipes))
	return ResultCommitted, nil
}

// bootstrap writes the seed catalog to both stores. The local write is
// required; the remote write is best-effort.
func (r *Reconciler) bootstrap(ctx context.Context) (Result, error) {
	if err := r.local.PutRecipes(ctx, r.seed); err != nil {
		return ResultSkipped, fmt.Errorf("failed to seed local catalog: %w", err)
	}
	if err := r.remote.PutRecipes(ctx, r.seed); err != nil {
		r.log.Warnw("remote catalog seeding skipped", "error", err)
	} else {
		r.log.Infow("catalog bootstrapped", "count", len(r.seed))
	}
	return ResultCommitted, nil
}

func (r *Reconciler) seedLocalIfEmpty(ctx context.Context) (Result, error) {
	existing, err := r.local.GetAllRecipes(ctx)
	if err != nil {
		return ResultSkipped, err
	}
	if len(existing) > 0 {
		return ResultSkipped, nil
	}
	if err := r.local.PutRecipes(ctx, r.seed); err != nil {
		return ResultSkipped, fmt.Errorf("failed to seed local catalog: %w", err)
	}
	r.log.Infow("local catalog seeded offline", "count", len(r.seed))
	return ResultCommitted, nil
}

// PushPlan pushes one plan document under its composite key, best-effort.
func (r *Reconciler) PushPlan(ctx context.Context, p model.MenuPlan) Result {
	if r.remote == nil {
		return ResultSkipped
	}
	key := remote.PlanKey(p.UserID, p.ID)
	if err := r.remote.PutPlan(ctx, key, p); err != nil {
		r.log.Warnw("plan push skipped", "plan", key, "error", err)
		return ResultSkipped
	}
	return ResultCommitted
}

// DeletePlan removes the plan locally and then deletes every matching remote
// document by plan id. Zero remote matches is a normal outcome; a remote
// failure is swallowed.
func (r *Reconciler) DeletePlan(ctx context.Context, planID int64) error {
	if err := r.local.DeletePlan(ctx, planID); err != nil {
		return err
	}
	if r.remote == nil {
		return nil
	}

	deleted, err := r.remote.DeletePlansMatching(ctx, planID)
	if err != nil {
		r.log.Warnw("remote plan delete skipped", "plan", planID, "error", err)
		return nil
	}
	r.log.Infow("remote plan documents deleted", "plan", planID, "count", deleted)
	return nil
}
