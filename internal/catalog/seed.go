// Package catalog holds the fixed recipe set used to bootstrap an empty
// recipe store.
package catalog

import (
	"github.com/shopspring/decimal"

	"menu-planner/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed returns the bootstrap catalog. IDs are stable so repeated seeding
// upserts the same rows instead of duplicating them.
func Seed() []model.Recipe {
	return []model.Recipe{
		{
			ID:          1,
			Name:        "Porridge de avena",
			Description: "Oat porridge cooked in water with cinnamon and apple.",
			Category:    model.CategoryBreakfast,
			Nutrition: model.Nutrition{
				Calories: 280, Protein: dec("8.5"), Carbs: dec("48.0"), Fat: dec("5.2"),
				Fiber: dec("6.1"), Sodium: dec("0.1"), Sugar: dec("9.0"),
			},
			SuitableFor:  []string{"diabetes", "hipertension"},
			Allergens:    []string{"gluten"},
			Ingredients:  []string{"oats", "water", "apple", "cinnamon"},
			Instructions: []string{"Simmer the oats in water", "Grate the apple in", "Dust with cinnamon"},
			PrepMinutes:  10,
			Difficulty:   model.DifficultyEasy,
			Servings:     1,

			EstimatedCost: dec("0.90"),
			Rating:        4.2,
		},
		{
			ID:          2,
			Name:        "Tortilla francesa con espinacas",
			Description: "Two-egg omelette folded over wilted spinach.",
			Category:    model.CategoryBreakfast,
			Nutrition: model.Nutrition{
				Calories: 240, Protein: dec("15.0"), Carbs: dec("3.0"), Fat: dec("18.0"),
				Fiber: dec("1.5"), Sodium: dec("0.4"), Sugar: dec("1.0"),
			},
			SuitableFor:  []string{"diabetes", "celiaquia"},
			Allergens:    []string{"huevo"},
			Ingredients:  []string{"eggs", "spinach", "olive oil"},
			Instructions: []string{"Wilt the spinach", "Beat the eggs", "Cook and fold"},
			PrepMinutes:  8,
			Difficulty:   model.DifficultyEasy,
			Servings:     1,

			EstimatedCost: dec("1.10"),
			Rating:        4.4,
		},
		{
			ID:          3,
			Name:        "Yogur con frutos rojos",
			Description: "Plain yogurt with berries and chia.",
			Category:    model.CategoryBreakfast,
			Nutrition: model.Nutrition{
				Calories: 190, Protein: dec("10.0"), Carbs: dec("21.0"), Fat: dec("6.5"),
				Fiber: dec("4.0"), Sodium: dec("0.1"), Sugar: dec("14.0"),
			},
			SuitableFor:  []string{"hipertension", "celiaquia"},
			Allergens:    []string{"lacteos"},
			Ingredients:  []string{"yogurt", "berries", "chia seeds"},
			Instructions: []string{"Spoon the yogurt into a bowl", "Top with berries and chia"},
			PrepMinutes:  3,
			Difficulty:   model.DifficultyEasy,
			Servings:     1,

			EstimatedCost: dec("1.30"),
			Rating:        4.0,
		},
		{
			ID:          4,
			Name:        "Lentejas estofadas",
			Description: "Lentils stewed with carrot, leek and paprika.",
			Category:    model.CategoryLunch,
			Nutrition: model.Nutrition{
				Calories: 450, Protein: dec("22.0"), Carbs: dec("58.0"), Fat: dec("8.0"),
				Fiber: dec("14.0"), Sodium: dec("0.6"), Sugar: dec("4.5"),
			},
			SuitableFor:  []string{"diabetes", "hipertension", "celiaquia"},
			Allergens:    nil,
			Ingredients:  []string{"lentils", "carrot", "leek", "paprika", "olive oil"},
			Instructions: []string{"Soak the lentils", "Sweat the vegetables", "Simmer 40 minutes"},
			PrepMinutes:  55,
			Difficulty:   model.DifficultyMedium,
			Servings:     4,

			EstimatedCost: dec("4.20"),
			Rating:        4.7,
		},
		{
			ID:          5,
			Name:        "Pollo al horno con verduras",
			Description: "Roast chicken thighs over seasonal vegetables.",
			Category:    model.CategoryLunch,
			Nutrition: model.Nutrition{
				Calories: 520, Protein: dec("38.0"), Carbs: dec("24.0"), Fat: dec("28.0"),
				Fiber: dec("5.5"), Sodium: dec("0.5"), Sugar: dec("7.0"),
			},
			SuitableFor:  []string{"diabetes", "celiaquia"},
			Allergens:    nil,
			Ingredients:  []string{"chicken thighs", "zucchini", "pepper", "onion", "olive oil"},
			Instructions: []string{"Slice the vegetables", "Season the chicken", "Roast 45 minutes"},
			PrepMinutes:  60,
			Difficulty:   model.DifficultyMedium,
			Servings:     2,

			EstimatedCost: dec("5.80"),
			Rating:        4.6,
		},
		{
			ID:          6,
			Name:        "Risotto de champiñones",
			Description: "Creamy mushroom risotto finished with parmesan.",
			Category:    model.CategoryLunch,
			Nutrition: model.Nutrition{
				Calories: 610, Protein: dec("14.0"), Carbs: dec("78.0"), Fat: dec("24.0"),
				Fiber: dec("3.0"), Sodium: dec("1.1"), Sugar: dec("2.5"),
			},
			SuitableFor:  []string{"hipertension"},
			Allergens:    []string{"lacteos"},
			Ingredients:  []string{"arborio rice", "mushrooms", "stock", "parmesan", "butter"},
			Instructions: []string{"Toast the rice", "Add stock by the ladle", "Finish with cheese"},
			PrepMinutes:  40,
			Difficulty:   model.DifficultyHard,
			Servings:     2,

			EstimatedCost: dec("4.90"),
			Rating:        4.3,
		},
		{
			ID:          7,
			Name:        "Merluza a la plancha",
			Description: "Seared hake with lemon and steamed green beans.",
			Category:    model.CategoryDinner,
			Nutrition: model.Nutrition{
				Calories: 340, Protein: dec("32.0"), Carbs: dec("12.0"), Fat: dec("16.0"),
				Fiber: dec("4.0"), Sodium: dec("0.4"), Sugar: dec("3.0"),
			},
			SuitableFor:  []string{"diabetes", "hipertension", "celiaquia"},
			Allergens:    []string{"pescado"},
			Ingredients:  []string{"hake fillet", "green beans", "lemon", "olive oil"},
			Instructions: []string{"Steam the beans", "Sear the fillet", "Dress with lemon"},
			PrepMinutes:  20,
			Difficulty:   model.DifficultyEasy,
			Servings:     1,

			EstimatedCost: dec("4.50"),
			Rating:        4.5,
		},
		{
			ID:          8,
			Name:        "Crema de calabaza",
			Description: "Silky pumpkin soup with a drizzle of olive oil.",
			Category:    model.CategoryDinner,
			Nutrition: model.Nutrition{
				Calories: 260, Protein: dec("6.0"), Carbs: dec("34.0"), Fat: dec("11.0"),
				Fiber: dec("7.0"), Sodium: dec("0.5"), Sugar: dec("12.0"),
			},
			SuitableFor:  []string{"diabetes", "hipertension", "celiaquia"},
			Allergens:    nil,
			Ingredients:  []string{"pumpkin", "potato", "onion", "olive oil"},
			Instructions: []string{"Boil the vegetables", "Blend until smooth", "Season"},
			PrepMinutes:  35,
			Difficulty:   model.DifficultyEasy,
			Servings:     3,

			EstimatedCost: dec("2.60"),
			Rating:        4.1,
		},
		{
			ID:          9,
			Name:        "Ensalada de quinoa",
			Description: "Quinoa salad with cucumber, tomato and feta.",
			Category:    model.CategoryDinner,
			Nutrition: model.Nutrition{
				Calories: 380, Protein: dec("13.0"), Carbs: dec("46.0"), Fat: dec("15.0"),
				Fiber: dec("6.5"), Sodium: dec("0.8"), Sugar: dec("5.0"),
			},
			SuitableFor:  []string{"hipertension", "celiaquia"},
			Allergens:    []string{"lacteos"},
			Ingredients:  []string{"quinoa", "cucumber", "tomato", "feta", "mint"},
			Instructions: []string{"Rinse and cook the quinoa", "Chop the vegetables", "Toss with feta"},
			PrepMinutes:  25,
			Difficulty:   model.DifficultyEasy,
			Servings:     2,

			EstimatedCost: dec("3.70"),
			Rating:        4.0,
		},
		{
			ID:          10,
			Name:        "Hummus con crudités",
			Description: "Chickpea hummus with carrot and celery sticks.",
			Category:    model.CategorySnack,
			Nutrition: model.Nutrition{
				Calories: 210, Protein: dec("7.0"), Carbs: dec("20.0"), Fat: dec("12.0"),
				Fiber: dec("6.0"), Sodium: dec("0.4"), Sugar: dec("4.0"),
			},
			SuitableFor:  []string{"diabetes", "hipertension", "celiaquia"},
			Allergens:    []string{"sesamo", "apio"},
			Ingredients:  []string{"chickpeas", "tahini", "lemon", "carrot", "celery"},
			Instructions: []string{"Blend the chickpeas with tahini and lemon", "Cut the sticks"},
			PrepMinutes:  12,
			Difficulty:   model.DifficultyEasy,
			Servings:     2,

			EstimatedCost: dec("2.10"),
			Rating:        4.4,
		},
		{
			ID:          11,
			Name:        "Manzana asada",
			Description: "Baked apple with cinnamon and walnuts.",
			Category:    model.CategoryDessert,
			Nutrition: model.Nutrition{
				Calories: 180, Protein: dec("2.0"), Carbs: dec("32.0"), Fat: dec("6.0"),
				Fiber: dec("5.0"), Sodium: dec("0.0"), Sugar: dec("24.0"),
			},
			SuitableFor:  []string{"diabetes", "hipertension"},
			Allergens:    []string{"frutos secos"},
			Ingredients:  []string{"apple", "walnuts", "cinnamon"},
			Instructions: []string{"Core the apple", "Stuff with walnuts", "Bake 25 minutes"},
			PrepMinutes:  30,
			Difficulty:   model.DifficultyEasy,
			Servings:     1,

			EstimatedCost: dec("1.20"),
			Rating:        3.9,
		},
	}
}
