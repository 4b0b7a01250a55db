package syncer

import (
	"context"
	"errors"
	"testing"

	"menu-planner/internal/catalog"
	"menu-planner/internal/logger"
	"menu-planner/internal/model"
	"menu-planner/internal/remote"
	"menu-planner/internal/remote/remotetest"
	"menu-planner/internal/store/storetest"
)

func newReconciler(local *storetest.Fake, rem remote.Store) *Reconciler {
	return NewReconciler(local, rem, catalog.Seed(), logger.NewNop())
}

func TestPullUser(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteWins", func(t *testing.T) {
		local := storetest.NewFake()
		local.UsersByID["u-1"] = model.User{ID: "u-1", Name: "stale"}
		rem := remotetest.NewFake()
		rem.UsersByID["u-1"] = model.User{ID: "u-1", Name: "fresh"}

		u, res, err := newReconciler(local, rem).PullUser(ctx, "u-1")
		if err != nil {
			t.Fatalf("PullUser failed: %v", err)
		}
		if res != ResultCommitted {
			t.Errorf("Expected committed, got %s", res)
		}
		if u.Name != "fresh" {
			t.Errorf("Expected remote document to win, got %q", u.Name)
		}
		if local.UsersByID["u-1"].Name != "fresh" {
			t.Errorf("Expected local overwrite, got %q", local.UsersByID["u-1"].Name)
		}
	})

	t.Run("RemoteUnavailableKeepsLocal", func(t *testing.T) {
		local := storetest.NewFake()
		local.UsersByID["u-1"] = model.User{ID: "u-1", Name: "local"}
		rem := remotetest.NewFake()
		rem.Errs["FetchUser"] = errors.New("no route to host")

		u, res, err := newReconciler(local, rem).PullUser(ctx, "u-1")
		if err != nil {
			t.Fatalf("Expected remote failure to be swallowed, got %v", err)
		}
		if res != ResultSkipped {
			t.Errorf("Expected skipped, got %s", res)
		}
		if u == nil || u.Name != "local" {
			t.Errorf("Expected pre-sync local value, got %+v", u)
		}
	})

	t.Run("NoRemoteDocument", func(t *testing.T) {
		local := storetest.NewFake()
		local.UsersByID["u-1"] = model.User{ID: "u-1", Name: "local"}

		u, res, err := newReconciler(local, remotetest.NewFake()).PullUser(ctx, "u-1")
		if err != nil {
			t.Fatalf("PullUser failed: %v", err)
		}
		if res != ResultSkipped || u == nil || u.Name != "local" {
			t.Errorf("Expected skipped with local value, got %s / %+v", res, u)
		}
	})

	t.Run("LocalFailureIsFatal", func(t *testing.T) {
		local := storetest.NewFake()
		local.Errs["PutUser"] = errors.New("disk error")
		rem := remotetest.NewFake()
		rem.UsersByID["u-1"] = model.User{ID: "u-1"}

		_, _, err := newReconciler(local, rem).PullUser(ctx, "u-1")
		if err == nil {
			t.Fatal("Expected local-store failure to surface, got nil")
		}
	})
}

func TestPushUser(t *testing.T) {
	ctx := context.Background()
	u := model.User{ID: "u-1", Name: "Ana"}

	t.Run("Committed", func(t *testing.T) {
		rem := remotetest.NewFake()
		if res := newReconciler(storetest.NewFake(), rem).PushUser(ctx, u); res != ResultCommitted {
			t.Errorf("Expected committed, got %s", res)
		}
		if rem.UsersByID["u-1"].Name != "Ana" {
			t.Error("Expected user document pushed")
		}
	})

	t.Run("FailureSwallowed", func(t *testing.T) {
		rem := remotetest.NewFake()
		rem.Errs["PutUser"] = errors.New("timeout")
		if res := newReconciler(storetest.NewFake(), rem).PushUser(ctx, u); res != ResultSkipped {
			t.Errorf("Expected skipped, got %s", res)
		}
	})
}

func TestPullRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteReplacesLocal", func(t *testing.T) {
		local := storetest.NewFake()
		rem := remotetest.NewFake()
		rem.Recipes = []model.Recipe{
			{ID: 1, Name: "remote one", Category: model.CategoryLunch},
			{ID: 2, Name: "remote two", Category: model.CategoryDinner},
		}

		res, err := newReconciler(local, rem).PullRecipes(ctx)
		if err != nil {
			t.Fatalf("PullRecipes failed: %v", err)
		}
		if res != ResultCommitted {
			t.Errorf("Expected committed, got %s", res)
		}
		if len(local.RecipesByID) != 2 {
			t.Errorf("Expected 2 local recipes, got %d", len(local.RecipesByID))
		}
	})

	t.Run("PullIsIdempotent", func(t *testing.T) {
		local := storetest.NewFake()
		rem := remotetest.NewFake()
		rem.Recipes = []model.Recipe{{ID: 1, Name: "stable"}}

		r := newReconciler(local, rem)
		if _, err := r.PullRecipes(ctx); err != nil {
			t.Fatalf("first pull failed: %v", err)
		}
		if _, err := r.PullRecipes(ctx); err != nil {
			t.Fatalf("second pull failed: %v", err)
		}
		if len(local.RecipesByID) != 1 {
			t.Errorf("Expected 1 recipe after repeated pulls, got %d", len(local.RecipesByID))
		}
		if local.RecipesByID[1].Name != "stable" {
			t.Errorf("Expected unchanged recipe, got %q", local.RecipesByID[1].Name)
		}
	})

	t.Run("EmptyRemoteBootstrapsBothStores", func(t *testing.T) {
		local := storetest.NewFake()
		rem := remotetest.NewFake()

		res, err := newReconciler(local, rem).PullRecipes(ctx)
		if err != nil {
			t.Fatalf("PullRecipes failed: %v", err)
		}
		if res != ResultCommitted {
			t.Errorf("Expected committed, got %s", res)
		}

		seed := catalog.Seed()
		if len(local.RecipesByID) != len(seed) {
			t.Errorf("Expected local store seeded with %d recipes, got %d", len(seed), len(local.RecipesByID))
		}
		if len(rem.PutRecipeBatches) != 1 || len(rem.PutRecipeBatches[0]) != len(seed) {
			t.Errorf("Expected one remote batch of %d recipes, got %v batches", len(seed), len(rem.PutRecipeBatches))
		}
		if got, _ := rem.FetchAllRecipes(ctx); len(got) == 0 {
			t.Error("Expected remote collection non-empty after bootstrap")
		}
	})

	t.Run("RemoteSeedFailureIsNonFatal", func(t *testing.T) {
		local := storetest.NewFake()
		rem := remotetest.NewFake()
		rem.Errs["PutRecipes"] = errors.New("flaky link")

		res, err := newReconciler(local, rem).PullRecipes(ctx)
		if err != nil {
			t.Fatalf("Expected remote seed failure to be swallowed, got %v", err)
		}
		if res != ResultCommitted {
			t.Errorf("Expected committed, got %s", res)
		}
		if len(local.RecipesByID) != len(catalog.Seed()) {
			t.Error("Expected local store seeded despite remote failure")
		}
	})

	t.Run("UnreachableRemoteSeedsEmptyLocal", func(t *testing.T) {
		local := storetest.NewFake()
		rem := remotetest.NewFake()
		rem.Errs["FetchAllRecipes"] = errors.New("offline")

		res, err := newReconciler(local, rem).PullRecipes(ctx)
		if err != nil {
			t.Fatalf("PullRecipes failed: %v", err)
		}
		if res != ResultCommitted {
			t.Errorf("Expected committed (local seed), got %s", res)
		}
		if len(local.RecipesByID) == 0 {
			t.Error("Expected local catalog seeded when remote unreachable and local empty")
		}
	})

	t.Run("UnreachableRemoteKeepsPopulatedLocal", func(t *testing.T) {
		local := storetest.NewFake()
		local.RecipesByID[50] = model.Recipe{ID: 50, Name: "kept"}
		rem := remotetest.NewFake()
		rem.Errs["FetchAllRecipes"] = errors.New("offline")

		res, err := newReconciler(local, rem).PullRecipes(ctx)
		if err != nil {
			t.Fatalf("PullRecipes failed: %v", err)
		}
		if res != ResultSkipped {
			t.Errorf("Expected skipped, got %s", res)
		}
		if len(local.RecipesByID) != 1 || local.RecipesByID[50].Name != "kept" {
			t.Error("Expected pre-sync local recipes untouched")
		}
	})
}

func TestPushPlan(t *testing.T) {
	ctx := context.Background()
	plan := model.MenuPlan{ID: 3, UserID: "u-1"}

	t.Run("CompositeKey", func(t *testing.T) {
		rem := remotetest.NewFake()
		if res := newReconciler(storetest.NewFake(), rem).PushPlan(ctx, plan); res != ResultCommitted {
			t.Fatalf("Expected committed, got %s", res)
		}
		if _, ok := rem.PlansByKey["u-1_3"]; !ok {
			t.Errorf("Expected plan under key u-1_3, got keys %v", rem.PlansByKey)
		}
	})

	t.Run("FailureSwallowed", func(t *testing.T) {
		rem := remotetest.NewFake()
		rem.Errs["PutPlan"] = errors.New("timeout")
		if res := newReconciler(storetest.NewFake(), rem).PushPlan(ctx, plan); res != ResultSkipped {
			t.Errorf("Expected skipped, got %s", res)
		}
	})
}

func TestDeletePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletesLocallyAndRemotely", func(t *testing.T) {
		local := storetest.NewFake()
		p := model.MenuPlan{UserID: "u-1"}
		_ = local.PutPlan(ctx, &p)
		rem := remotetest.NewFake()
		rem.PlansByKey["u-1_1"] = model.MenuPlan{ID: p.ID, UserID: "u-1"}

		if err := newReconciler(local, rem).DeletePlan(ctx, p.ID); err != nil {
			t.Fatalf("DeletePlan failed: %v", err)
		}
		if len(local.PlansByID) != 0 {
			t.Error("Expected local plan deleted")
		}
		if len(rem.PlansByKey) != 0 {
			t.Error("Expected remote plan documents deleted")
		}
	})

	t.Run("ZeroRemoteMatchesIsNormal", func(t *testing.T) {
		local := storetest.NewFake()
		p := model.MenuPlan{UserID: "u-1"}
		_ = local.PutPlan(ctx, &p)

		if err := newReconciler(local, remotetest.NewFake()).DeletePlan(ctx, p.ID); err != nil {
			t.Fatalf("Expected zero remote matches to be fine, got %v", err)
		}
	})

	t.Run("LocalFailureIsFatal", func(t *testing.T) {
		local := storetest.NewFake()
		local.Errs["DeletePlan"] = errors.New("disk error")

		if err := newReconciler(local, remotetest.NewFake()).DeletePlan(ctx, 9); err == nil {
			t.Fatal("Expected local delete failure to surface, got nil")
		}
	})

	t.Run("RemoteFailureSwallowed", func(t *testing.T) {
		local := storetest.NewFake()
		p := model.MenuPlan{UserID: "u-1"}
		_ = local.PutPlan(ctx, &p)
		rem := remotetest.NewFake()
		rem.Errs["DeletePlansMatching"] = errors.New("timeout")

		if err := newReconciler(local, rem).DeletePlan(ctx, p.ID); err != nil {
			t.Fatalf("Expected remote delete failure to be swallowed, got %v", err)
		}
	})
}
