package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaySlot holds the recipe ids selected for one day, ordered as
// [breakfast, lunch, dinner].
type DaySlot struct {
	RecipeIDs []int64 `json:"recipe_ids"`
}

// MenuPlan is a 7-day menu for one user, Monday first. At most one plan per
// user is active at any time; activating a new plan deactivates the previous
// one in the same logical operation.
type MenuPlan struct {
	ID     int64      `json:"id"`
	UserID string     `json:"user_id"`
	Name   string     `json:"name"`
	Days   [7]DaySlot `json:"days"`

	TotalCalories        int             `json:"total_calories"`
	AverageDailyCalories int             `json:"average_daily_calories"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	AverageDailyCost     decimal.Decimal `json:"average_daily_cost"`

	Active    bool      `json:"active"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RecipeIDs returns the distinct recipe ids referenced anywhere in the plan.
func (p MenuPlan) RecipeIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, day := range p.Days {
		for _, id := range day.RecipeIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
