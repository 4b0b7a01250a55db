// Package app orchestrates the session-level flows: login, menu generation
// and profile maintenance. The presentation layer calls into it and stays
// out of the core.
package app

import (
	"context"
	"fmt"
	"sync"

	"menu-planner/internal/auth"
	"menu-planner/internal/compat"
	"menu-planner/internal/logger"
	"menu-planner/internal/model"
	"menu-planner/internal/planner"
	"menu-planner/internal/store"
	"menu-planner/internal/syncer"
)

// App holds the application's dependencies. All stores and collaborators are
// injected; there are no package-level handles.
type App struct {
	local      store.LocalStore
	reconciler *syncer.Reconciler
	composer   *planner.Composer
	auth       auth.Authenticator
	log        *logger.Logger

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// New creates and initializes an App instance.
func New(
	local store.LocalStore,
	reconciler *syncer.Reconciler,
	composer *planner.Composer,
	authenticator auth.Authenticator,
	log *logger.Logger,
) *App {
	return &App{
		local:      local,
		reconciler: reconciler,
		composer:   composer,
		auth:       authenticator,
		log:        log,
		userLocks:  make(map[string]*sync.Mutex),
	}
}

// userLock serializes plan-state transitions per user so concurrent sessions
// cannot break the single-active-plan invariant.
func (a *App) userLock(userID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	lock, ok := a.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		a.userLocks[userID] = lock
	}
	return lock
}

// Login authenticates the credentials and brings the session up to date: the
// user record and the recipe catalog are pulled (or the catalog seeded)
// strictly before Login returns, because the composer depends on a non-empty
// local recipe set. A user authenticated for the first time gets a skeleton
// profile to complete via UpdateProfile.
func (a *App) Login(ctx context.Context, email, password string) (*model.User, error) {
	userID, err := a.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, _, err := a.reconciler.PullUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if _, err := a.reconciler.PullRecipes(ctx); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if user == nil {
		user = &model.User{ID: userID, Email: email}
	}
	a.log.Infow("session started", "user", userID)
	return user, nil
}

// GenerateWeeklyMenu filters the catalog for the user, composes a 7-day plan,
// commits it locally as the single active plan and pushes it to the remote
// store best-effort.
func (a *App) GenerateWeeklyMenu(ctx context.Context, userID string) (*model.MenuPlan, error) {
	user, err := a.local.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("unknown user %s", userID)
	}

	recipes, err := a.local.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	compatible := compat.Filter(recipes, user.Conditions, user.Allergies)

	lock := a.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	plan, err := a.composer.GenerateWeeklyMenu(ctx, *user, compatible)
	if err != nil {
		return nil, err
	}

	a.reconciler.PushPlan(ctx, *plan)
	return plan, nil
}

// UpdateProfile validates and stores the profile locally, then pushes it to
// the remote store best-effort. The local write is the authoritative one.
func (a *App) UpdateProfile(ctx context.Context, u model.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := a.local.PutUser(ctx, u); err != nil {
		return err
	}
	a.reconciler.PushUser(ctx, u)
	return nil
}

// ActivePlan returns the user's current active plan, or nil when none exists.
func (a *App) ActivePlan(ctx context.Context, userID string) (*model.MenuPlan, error) {
	return a.local.GetActivePlan(ctx, userID)
}

// Plans lists all plans the user owns, newest first.
func (a *App) Plans(ctx context.Context, userID string) ([]model.MenuPlan, error) {
	return a.local.ListPlans(ctx, userID)
}

// SetPlanFavorite flips the favorite flag on a stored plan.
func (a *App) SetPlanFavorite(ctx context.Context, planID int64, favorite bool) error {
	return a.local.SetPlanFavorite(ctx, planID, favorite)
}

// DeletePlan removes a plan locally and from the remote store.
func (a *App) DeletePlan(ctx context.Context, planID int64) error {
	return a.reconciler.DeletePlan(ctx, planID)
}
