// Package compat decides which catalog recipes a user profile can eat.
package compat

import (
	"strings"

	"menu-planner/internal/model"
)

// Filter returns the subset of recipes compatible with the given condition
// and allergy tags. A recipe is compatible when none of its allergen tags
// matches a user allergy, and at least one of its suitable-for tags matches a
// user condition. A user with no declared conditions passes the condition
// check for every recipe. Tag comparison is exact string match after
// trimming. Pure: the input slice and its recipes are never mutated.
func Filter(recipes []model.Recipe, conditions, allergies []string) []model.Recipe {
	conditionSet := tagSet(conditions)
	allergySet := tagSet(allergies)

	var compatible []model.Recipe
	for _, rec := range recipes {
		if intersects(rec.Allergens, allergySet) {
			continue
		}
		if len(conditionSet) > 0 && !intersects(rec.SuitableFor, conditionSet) {
			continue
		}
		compatible = append(compatible, rec)
	}
	return compatible
}

// ByCategory partitions recipes by their canonical category.
func ByCategory(recipes []model.Recipe) map[model.Category][]model.Recipe {
	pools := make(map[model.Category][]model.Recipe)
	for _, rec := range recipes {
		pools[rec.Category] = append(pools[rec.Category], rec)
	}
	return pools
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

func intersects(tags []string, set map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := set[strings.TrimSpace(tag)]; ok {
			return true
		}
	}
	return false
}
