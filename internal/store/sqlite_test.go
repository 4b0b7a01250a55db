package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"menu-planner/internal/database"
	"menu-planner/internal/logger"
	"menu-planner/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteStore(db.SQL, logger.NewNop())
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("MissingUserIsNil", func(t *testing.T) {
		u, err := s.GetUser(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if u != nil {
			t.Errorf("Expected nil for missing user, got %+v", u)
		}
	})

	u := model.User{
		ID: "u-1", Name: "Ana", Email: "ana@example.com",
		Age: 34, WeightKg: 62, HeightCm: 168,
		Conditions:    []string{"diabetes"},
		Allergies:     []string{"lacteos"},
		MonthlyBudget: decimal.RequireFromString("300.00"),
		Goal:          model.GoalMaintain,
	}

	t.Run("PutAndGet", func(t *testing.T) {
		if err := s.PutUser(ctx, u); err != nil {
			t.Fatalf("PutUser failed: %v", err)
		}
		got, err := s.GetUser(ctx, "u-1")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.Name != "Ana" || got.Conditions[0] != "diabetes" {
			t.Errorf("Unexpected user back: %+v", got)
		}
		if !got.MonthlyBudget.Equal(u.MonthlyBudget) {
			t.Errorf("Expected budget %s, got %s", u.MonthlyBudget, got.MonthlyBudget)
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		u.Name = "Ana Maria"
		if err := s.PutUser(ctx, u); err != nil {
			t.Fatalf("PutUser failed: %v", err)
		}
		got, _ := s.GetUser(ctx, "u-1")
		if got.Name != "Ana Maria" {
			t.Errorf("Expected overwritten name, got %q", got.Name)
		}
	})
}

func TestRecipes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	recipes := []model.Recipe{
		{ID: 1, Name: "Porridge", Category: model.CategoryBreakfast,
			Nutrition:     model.Nutrition{Calories: 280},
			EstimatedCost: decimal.RequireFromString("0.90")},
		{ID: 2, Name: "Lentejas", Category: model.CategoryLunch,
			Nutrition:     model.Nutrition{Calories: 450},
			EstimatedCost: decimal.RequireFromString("4.20")},
	}

	if err := s.PutRecipes(ctx, recipes); err != nil {
		t.Fatalf("PutRecipes failed: %v", err)
	}

	t.Run("GetAll", func(t *testing.T) {
		got, err := s.GetAllRecipes(ctx)
		if err != nil {
			t.Fatalf("GetAllRecipes failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 recipes, got %d", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("Expected id order [1 2], got [%d %d]", got[0].ID, got[1].ID)
		}
	})

	t.Run("UpsertIsIdempotent", func(t *testing.T) {
		if err := s.PutRecipes(ctx, recipes); err != nil {
			t.Fatalf("PutRecipes failed: %v", err)
		}
		got, _ := s.GetAllRecipes(ctx)
		if len(got) != 2 {
			t.Errorf("Expected 2 recipes after re-upsert, got %d", len(got))
		}
	})

	t.Run("GetByIDs", func(t *testing.T) {
		got, err := s.GetRecipesByIDs(ctx, []int64{2, 99})
		if err != nil {
			t.Fatalf("GetRecipesByIDs failed: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Lentejas" {
			t.Errorf("Expected only recipe 2, got %+v", got)
		}
		if empty, _ := s.GetRecipesByIDs(ctx, nil); empty != nil {
			t.Errorf("Expected nil for empty id list, got %+v", empty)
		}
	})

	t.Run("IncrementUsage", func(t *testing.T) {
		if err := s.IncrementRecipeUsage(ctx, []int64{1, 2}); err != nil {
			t.Fatalf("IncrementRecipeUsage failed: %v", err)
		}
		if err := s.IncrementRecipeUsage(ctx, []int64{1}); err != nil {
			t.Fatalf("IncrementRecipeUsage failed: %v", err)
		}
		got, _ := s.GetRecipesByIDs(ctx, []int64{1, 2})
		if got[0].TimesUsed != 2 {
			t.Errorf("Expected recipe 1 used twice, got %d", got[0].TimesUsed)
		}
		if got[1].TimesUsed != 1 {
			t.Errorf("Expected recipe 2 used once, got %d", got[1].TimesUsed)
		}
	})

	t.Run("UnknownIDSkipped", func(t *testing.T) {
		if err := s.IncrementRecipeUsage(ctx, []int64{42}); err != nil {
			t.Errorf("Expected unknown id to be skipped, got %v", err)
		}
	})
}

func TestPlans(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	newPlan := func(userID string, created time.Time) *model.MenuPlan {
		return &model.MenuPlan{
			UserID:    userID,
			Name:      "Weekly menu 2/1",
			Active:    true,
			CreatedAt: created,
			StartDate: created,
			EndDate:   created.AddDate(0, 0, 6),
			TotalCost: decimal.RequireFromString("31.50"),
		}
	}

	base := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)

	first := newPlan("u-1", base)
	if err := s.PutPlan(ctx, first); err != nil {
		t.Fatalf("PutPlan failed: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("Expected inserted plan to get an id")
	}

	t.Run("ActivePlan", func(t *testing.T) {
		got, err := s.GetActivePlan(ctx, "u-1")
		if err != nil {
			t.Fatalf("GetActivePlan failed: %v", err)
		}
		if got == nil || got.ID != first.ID {
			t.Fatalf("Expected plan %d active, got %+v", first.ID, got)
		}
		if !got.TotalCost.Equal(first.TotalCost) {
			t.Errorf("Expected cost %s, got %s", first.TotalCost, got.TotalCost)
		}
	})

	t.Run("DeactivateThenActivateNew", func(t *testing.T) {
		if err := s.DeactivateAllPlans(ctx, "u-1"); err != nil {
			t.Fatalf("DeactivateAllPlans failed: %v", err)
		}
		second := newPlan("u-1", base.AddDate(0, 0, 7))
		if err := s.PutPlan(ctx, second); err != nil {
			t.Fatalf("PutPlan failed: %v", err)
		}

		active, err := s.GetActivePlan(ctx, "u-1")
		if err != nil {
			t.Fatalf("GetActivePlan failed: %v", err)
		}
		if active == nil || active.ID != second.ID {
			t.Errorf("Expected plan %d active, got %+v", second.ID, active)
		}

		plans, err := s.ListPlans(ctx, "u-1")
		if err != nil {
			t.Fatalf("ListPlans failed: %v", err)
		}
		activeCount := 0
		for _, p := range plans {
			if p.Active {
				activeCount++
			}
		}
		if activeCount != 1 {
			t.Errorf("Expected exactly 1 active plan, got %d", activeCount)
		}
	})

	t.Run("Favorite", func(t *testing.T) {
		if err := s.SetPlanFavorite(ctx, first.ID, true); err != nil {
			t.Fatalf("SetPlanFavorite failed: %v", err)
		}
		plans, _ := s.ListPlans(ctx, "u-1")
		found := false
		for _, p := range plans {
			if p.ID == first.ID && p.Favorite {
				found = true
			}
		}
		if !found {
			t.Error("Expected favorite flag set on first plan")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeletePlan(ctx, first.ID); err != nil {
			t.Fatalf("DeletePlan failed: %v", err)
		}
		plans, _ := s.ListPlans(ctx, "u-1")
		for _, p := range plans {
			if p.ID == first.ID {
				t.Error("Expected first plan deleted")
			}
		}
	})

	t.Run("OtherUsersUnaffected", func(t *testing.T) {
		other := newPlan("u-2", base)
		if err := s.PutPlan(ctx, other); err != nil {
			t.Fatalf("PutPlan failed: %v", err)
		}
		if err := s.DeactivateAllPlans(ctx, "u-1"); err != nil {
			t.Fatalf("DeactivateAllPlans failed: %v", err)
		}
		got, _ := s.GetActivePlan(ctx, "u-2")
		if got == nil || got.ID != other.ID {
			t.Error("Expected u-2's plan untouched by u-1's deactivation")
		}
	})
}
