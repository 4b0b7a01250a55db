// Package storetest provides an in-memory LocalStore for tests.
package storetest

import (
	"context"
	"sort"

	"menu-planner/internal/model"
)

// Fake is an in-memory store.LocalStore. Calls records every method
// invocation in order; Errs forces a method to fail.
type Fake struct {
	UsersByID   map[string]model.User
	RecipesByID map[int64]model.Recipe
	PlansByID   map[int64]model.MenuPlan

	Calls []string
	Errs  map[string]error

	nextPlanID int64
}

func NewFake() *Fake {
	return &Fake{
		UsersByID:   make(map[string]model.User),
		RecipesByID: make(map[int64]model.Recipe),
		PlansByID:   make(map[int64]model.MenuPlan),
		Errs:        make(map[string]error),
	}
}

func (f *Fake) record(call string) error {
	f.Calls = append(f.Calls, call)
	return f.Errs[call]
}

func (f *Fake) GetUser(_ context.Context, id string) (*model.User, error) {
	if err := f.record("GetUser"); err != nil {
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

func (f *Fake) GetAllRecipes(_ context.Context) ([]model.Recipe, error) {
	if err := f.record("GetAllRecipes"); err != nil {
		return nil, err
	}
	return f.sortedRecipes(), nil
}

func (f *Fake) GetRecipesByIDs(_ context.Context, ids []int64) ([]model.Recipe, error) {
	if err := f.record("GetRecipesByIDs"); err != nil {
		return nil, err
	}
	var recipes []model.Recipe
	for _, id := range ids {
		if rec, ok := f.RecipesByID[id]; ok {
			recipes = append(recipes, rec)
		}
	}
	return recipes, nil
}

func (f *Fake) PutRecipes(_ context.Context, recipes []model.Recipe) error {
	if err := f.record("PutRecipes"); err != nil {
		return err
	}
	for _, rec := range recipes {
		f.RecipesByID[rec.ID] = rec
	}
	return nil
}

func (f *Fake) IncrementRecipeUsage(_ context.Context, ids []int64) error {
	if err := f.record("IncrementRecipeUsage"); err != nil {
		return err
	}
	for _, id := range ids {
		if rec, ok := f.RecipesByID[id]; ok {
			rec.TimesUsed++
			f.RecipesByID[id] = rec
		}
	}
	return nil
}

func (f *Fake) GetActivePlan(_ context.Context, userID string) (*model.MenuPlan, error) {
	if err := f.record("GetActivePlan"); err != nil {
		return nil, err
	}
	for _, p := range f.PlansByID {
		if p.UserID == userID && p.Active {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListPlans(_ context.Context, userID string) ([]model.MenuPlan, error) {
	if err := f.record("ListPlans"); err != nil {
		return nil, err
	}
	var plans []model.MenuPlan
	for _, p := range f.PlansByID {
		if p.UserID == userID {
			plans = append(plans, p)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].ID < plans[j].ID })
	return plans, nil
}

func (f *Fake) PutPlan(_ context.Context, p *model.MenuPlan) error {
	if err := f.record("PutPlan"); err != nil {
		return err
	}
	if p.ID == 0 {
		f.nextPlanID++
		p.ID = f.nextPlanID
	}
	f.PlansByID[p.ID] = *p
	return nil
}

func (f *Fake) SetPlanFavorite(_ context.Context, planID int64, favorite bool) error {
	if err := f.record("SetPlanFavorite"); err != nil {
		return err
	}
	if p, ok := f.PlansByID[planID]; ok {
		p.Favorite = favorite
		f.PlansByID[planID] = p
	}
	return nil
}

func (f *Fake) DeactivateAllPlans(_ context.Context, userID string) error {
	if err := f.record("DeactivateAllPlans"); err != nil {
		return err
	}
	for id, p := range f.PlansByID {
		if p.UserID == userID {
			p.Active = false
			f.PlansByID[id] = p
		}
	}
	return nil
}

func (f *Fake) DeletePlan(_ context.Context, planID int64) error {
	if err := f.record("DeletePlan"); err != nil {
		return err
	}
	delete(f.PlansByID, planID)
	return nil
}

func (f *Fake) sortedRecipes() []model.Recipe {
	ids := make([]int64, 0, len(f.RecipesByID))
	for id := range f.RecipesByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	recipes := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, f.RecipesByID[id])
	}
	return recipes
}
