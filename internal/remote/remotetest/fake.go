// Package remotetest provides an in-memory remote.Store for tests.
package remotetest

import (
	"context"

	"menu-planner/internal/model"
	"menu-planner/internal/remote"
)

// Fake is an in-memory remote.Store. Errs forces a method to fail with a
// RemoteUnavailable wrapping the given error; Calls records invocations.
type Fake struct {
	UsersByID  map[string]model.User
	Recipes    []model.Recipe
	PlansByKey map[string]model.MenuPlan

	PutRecipeBatches [][]model.Recipe
	DeletedPlanIDs   []int64

	Calls []string
	Errs  map[string]error
}

func NewFake() *Fake {
	return &Fake{
		UsersByID:  make(map[string]model.User),
		PlansByKey: make(map[string]model.MenuPlan),
		Errs:       make(map[string]error),
	}
}

func (f *Fake) record(call string) error {
	f.Calls = append(f.Calls, call)
	if err := f.Errs[call]; err != nil {
		return &remote.RemoteUnavailable{Op: call, Err: err}
	}
	return nil
}

func (f *Fake) FetchUser(_ context.Context, id string) (*model.User, error) {
	if err := f.record("FetchUser"); err != nil {
		return nil, err
	}
	u, ok := f.UsersByID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *Fake) PutUser(_ context.Context, u model.User) error {
	if err := f.record("PutUser"); err != nil {
		return err
	}
	f.UsersByID[u.ID] = u
	return nil
}

func (f *Fake) FetchAllRecipes(_ context.Context) ([]model.Recipe, error) {
	if err := f.record("FetchAllRecipes"); err != nil {
		return nil, err
	}
	out := make([]model.Recipe, len(f.Recipes))
	copy(out, f.Recipes)
	return out, nil
}

func (f *Fake) PutRecipes(_ context.Context, recipes []model.Recipe) error {
	if err := f.record("PutRecipes"); err != nil {
		return err
	}
	batch := make([]model.Recipe, len(recipes))
	copy(batch, recipes)
	f.PutRecipeBatches = append(f.PutRecipeBatches, batch)
	f.Recipes = append(f.Recipes, batch...)
	return nil
}

func (f *Fake) PutPlan(_ context.Context, key string, p model.MenuPlan) error {
	if err := f.record("PutPlan"); err != nil {
		return err
	}
	f.PlansByKey[key] = p
	return nil
}

func (f *Fake) DeletePlansMatching(_ context.Context, planID int64) (int64, error) {
	if err := f.record("DeletePlansMatching"); err != nil {
		return 0, err
	}
	f.DeletedPlanIDs = append(f.DeletedPlanIDs, planID)
	var deleted int64
	for key, p := range f.PlansByKey {
		if p.ID == planID {
			delete(f.PlansByKey, key)
			deleted++
		}
	}
	return deleted, nil
}
