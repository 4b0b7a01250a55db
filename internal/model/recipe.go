package model

import "github.com/shopspring/decimal"

// Category classifies a recipe into one of the catalog meal groups.
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategorySnack     Category = "Snack"
	CategoryDessert   Category = "Dessert"
)

// Difficulty grades how hard a recipe is to prepare.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Nutrition holds the per-serving nutrition facts of a recipe.
type Nutrition struct {
	Calories int             `json:"calories"`
	Protein  decimal.Decimal `json:"protein"`
	Carbs    decimal.Decimal `json:"carbs"`
	Fat      decimal.Decimal `json:"fat"`
	Fiber    decimal.Decimal `json:"fiber"`
	Sodium   decimal.Decimal `json:"sodium"`
	Sugar    decimal.Decimal `json:"sugar"`
}

// Recipe is a catalog entry. Recipes are immutable after creation except for
// TimesUsed, which only the composer commit step increments, and are replaced
// whole by remote sync (no partial patches).
type Recipe struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     Category   `json:"category"`
	Nutrition    Nutrition  `json:"nutrition"`
	SuitableFor  []string   `json:"suitable_for"`
	Allergens    []string   `json:"allergens"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	PrepMinutes  int        `json:"prep_minutes"`
	Difficulty   Difficulty `json:"difficulty"`
	Servings     int        `json:"servings"`

	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Rating        float64         `json:"rating"`
	TimesUsed     int             `json:"times_used"`
}
