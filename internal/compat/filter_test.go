package compat

import (
	"testing"

	"menu-planner/internal/model"
)

func rec(id int64, category model.Category, suitableFor, allergens []string) model.Recipe {
	return model.Recipe{ID: id, Category: category, SuitableFor: suitableFor, Allergens: allergens}
}

func TestFilter(t *testing.T) {
	catalog := []model.Recipe{
		rec(1, model.CategoryBreakfast, []string{"diabetes"}, nil),
		rec(2, model.CategoryBreakfast, []string{"hipertension"}, nil),
		rec(3, model.CategoryLunch, []string{"diabetes"}, []string{"lacteos"}),
		rec(4, model.CategoryLunch, []string{"diabetes", "celiaquia"}, []string{"gluten"}),
		rec(5, model.CategoryDinner, nil, nil),
	}

	t.Run("ConditionIntersection", func(t *testing.T) {
		got := Filter(catalog, []string{"diabetes"}, nil)
		wantIDs := map[int64]bool{1: true, 3: true, 4: true}
		if len(got) != 3 {
			t.Fatalf("Expected 3 compatible recipes, got %d", len(got))
		}
		for _, r := range got {
			if !wantIDs[r.ID] {
				t.Errorf("Unexpected recipe %d in result", r.ID)
			}
		}
	})

	t.Run("AllergenAlwaysDisqualifies", func(t *testing.T) {
		got := Filter(catalog, []string{"diabetes"}, []string{"lacteos"})
		for _, r := range got {
			if r.ID == 3 {
				t.Error("Expected recipe 3 (lacteos) to be excluded")
			}
		}
		if len(got) != 2 {
			t.Errorf("Expected 2 compatible recipes, got %d", len(got))
		}
	})

	t.Run("UntaggedRecipeExcludedForConditionedUser", func(t *testing.T) {
		got := Filter(catalog, []string{"diabetes"}, nil)
		for _, r := range got {
			if r.ID == 5 {
				t.Error("Expected untagged recipe 5 to be excluded for a user with conditions")
			}
		}
	})

	t.Run("NoConditionsMeansAllPassConditionCheck", func(t *testing.T) {
		got := Filter(catalog, nil, []string{"gluten"})
		if len(got) != 4 {
			t.Fatalf("Expected 4 compatible recipes, got %d", len(got))
		}
		for _, r := range got {
			if r.ID == 4 {
				t.Error("Expected recipe 4 (gluten) to be excluded")
			}
		}
	})

	t.Run("TagsAreTrimmed", func(t *testing.T) {
		catalog := []model.Recipe{
			rec(10, model.CategoryLunch, []string{" diabetes "}, []string{" lacteos "}),
		}
		if got := Filter(catalog, []string{"diabetes"}, nil); len(got) != 1 {
			t.Errorf("Expected padded suitable-for tag to match, got %d recipes", len(got))
		}
		if got := Filter(catalog, []string{"diabetes"}, []string{"lacteos"}); len(got) != 0 {
			t.Errorf("Expected padded allergen tag to disqualify, got %d recipes", len(got))
		}
	})

	t.Run("DeterministicAndPure", func(t *testing.T) {
		first := Filter(catalog, []string{"diabetes"}, []string{"lacteos"})
		second := Filter(catalog, []string{"diabetes"}, []string{"lacteos"})
		if len(first) != len(second) {
			t.Fatalf("Expected identical results, got %d and %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Errorf("Expected same order, got %d vs %d at %d", first[i].ID, second[i].ID, i)
			}
		}
		if catalog[2].Allergens[0] != "lacteos" {
			t.Error("Expected input catalog to be unmodified")
		}
	})
}

func TestByCategory(t *testing.T) {
	pools := ByCategory([]model.Recipe{
		rec(1, model.CategoryBreakfast, nil, nil),
		rec(2, model.CategoryLunch, nil, nil),
		rec(3, model.CategoryLunch, nil, nil),
		rec(4, model.CategoryDessert, nil, nil),
	})

	if len(pools[model.CategoryBreakfast]) != 1 {
		t.Errorf("Expected 1 breakfast recipe, got %d", len(pools[model.CategoryBreakfast]))
	}
	if len(pools[model.CategoryLunch]) != 2 {
		t.Errorf("Expected 2 lunch recipes, got %d", len(pools[model.CategoryLunch]))
	}
	if len(pools[model.CategoryDinner]) != 0 {
		t.Errorf("Expected no dinner recipes, got %d", len(pools[model.CategoryDinner]))
	}
}
