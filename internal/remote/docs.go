package remote

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"menu-planner/internal/model"
)

// The remote service is an opaque document store; these are the wire shapes
// of its three collections. Decimal amounts travel as strings so the exact
// values survive the round trip.

type userDoc struct {
	ID            string   `bson:"_id"`
	Name          string   `bson:"name"`
	Email         string   `bson:"email"`
	Age           int      `bson:"age"`
	WeightKg      float64  `bson:"weight_kg"`
	HeightCm      float64  `bson:"height_cm"`
	Conditions    []string `bson:"conditions"`
	Allergies     []string `bson:"allergies"`
	MonthlyBudget string   `bson:"monthly_budget"`
	Goal          string   `bson:"goal"`
}

type recipeDoc struct {
	ID           int64    `bson:"_id"`
	Name         string   `bson:"name"`
	Description  string   `bson:"description"`
	Category     string   `bson:"category"`
	Calories     int      `bson:"calories"`
	Protein      string   `bson:"protein"`
	Carbs        string   `bson:"carbs"`
	Fat          string   `bson:"fat"`
	Fiber        string   `bson:"fiber"`
	Sodium       string   `bson:"sodium"`
	Sugar        string   `bson:"sugar"`
	SuitableFor  []string `bson:"suitable_for"`
	Allergens    []string `bson:"allergens"`
	Ingredients  []string `bson:"ingredients"`
	Instructions []string `bson:"instructions"`
	PrepMinutes  int      `bson:"prep_minutes"`
	Difficulty   string   `bson:"difficulty"`
	Servings     int      `bson:"servings"`
	Cost         string   `bson:"cost"`
	Rating       float64  `bson:"rating"`
	TimesUsed    int      `bson:"times_used"`
}

type planDayDoc struct {
	RecipeIDs []int64 `bson:"recipe_ids"`
}

type planDoc struct {
	Key          string       `bson:"_id"`
	PlanID       int64        `bson:"plan_id"`
	UserID       string       `bson:"user_id"`
	Name         string       `bson:"name"`
	Days         []planDayDoc `bson:"days"`
	TotalCal     int          `bson:"total_calories"`
	AvgDailyCal  int          `bson:"average_daily_calories"`
	TotalCost    string       `bson:"total_cost"`
	AvgDailyCost string       `bson:"average_daily_cost"`
	Active       bool         `bson:"active"`
	Favorite     bool         `bson:"favorite"`
	CreatedAt    int64        `bson:"created_at"`
	StartDate    int64        `bson:"start_date"`
	EndDate      int64        `bson:"end_date"`
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad %s amount %q: %w", field, raw, err)
	}
	return d, nil
}

func userToDoc(u model.User) userDoc {
	return userDoc{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Age:           u.Age,
		WeightKg:      u.WeightKg,
		HeightCm:      u.HeightCm,
		Conditions:    u.Conditions,
		Allergies:     u.Allergies,
		MonthlyBudget: u.MonthlyBudget.String(),
		Goal:          string(u.Goal),
	}
}

func userFromDoc(d userDoc) (model.User, error) {
	budget, err := parseAmount("monthly_budget", d.MonthlyBudget)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:            d.ID,
		Name:          d.Name,
		Email:         d.Email,
		Age:           d.Age,
		WeightKg:      d.WeightKg,
		HeightCm:      d.HeightCm,
		Conditions:    d.Conditions,
		Allergies:     d.Allergies,
		MonthlyBudget: budget,
		Goal:          model.Goal(d.Goal),
	}, nil
}

func recipeToDoc(r model.Recipe) recipeDoc {
	return recipeDoc{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Category:     string(r.Category),
		Calories:     r.Nutrition.Calories,
		Protein:      r.Nutrition.Protein.String(),
		Carbs:        r.Nutrition.Carbs.String(),
		Fat:          r.Nutrition.Fat.String(),
		Fiber:        r.Nutrition.Fiber.String(),
		Sodium:       r.Nutrition.Sodium.String(),
		Sugar:        r.Nutrition.Sugar.String(),
		SuitableFor:  r.SuitableFor,
		Allergens:    r.Allergens,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		PrepMinutes:  r.PrepMinutes,
		Difficulty:   string(r.Difficulty),
		Servings:     r.Servings,
		Cost:         r.EstimatedCost.String(),
		Rating:       r.Rating,
		TimesUsed:    r.TimesUsed,
	}
}

func recipeFromDoc(d recipeDoc) (model.Recipe, error) {
	if d.ID <= 0 {
		return model.Recipe{}, fmt.Errorf("bad recipe id %d", d.ID)
	}

	nutrition := model.Nutrition{Calories: d.Calories}
	var err error
	if nutrition.Protein, err = parseAmount("protein", d.Protein); err != nil {
		return model.Recipe{}, err
	}
	if nutrition.Carbs, err = parseAmount("carbs", d.Carbs); err != nil {
		return model.Recipe{}, err
	}
	if nutrition.Fat, err = parseAmount("fat", d.Fat); err != nil {
		return model.Recipe{}, err
	}
	if nutrition.Fiber, err = parseAmount("fiber", d.Fiber); err != nil {
		return model.Recipe{}, err
	}
	if nutrition.Sodium, err = parseAmount("sodium", d.Sodium); err != nil {
		return model.Recipe{}, err
	}
	if nutrition.Sugar, err = parseAmount("sugar", d.Sugar); err != nil {
		return model.Recipe{}, err
	}

	cost, err := parseAmount("cost", d.Cost)
	if err != nil {
		return model.Recipe{}, err
	}

	return model.Recipe{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Category:      model.Category(d.Category),
		Nutrition:     nutrition,
		SuitableFor:   d.SuitableFor,
		Allergens:     d.Allergens,
		Ingredients:   d.Ingredients,
		Instructions:  d.Instructions,
		PrepMinutes:   d.PrepMinutes,
		Difficulty:    model.Difficulty(d.Difficulty),
		Servings:      d.Servings,
		EstimatedCost: cost,
		Rating:        d.Rating,
		TimesUsed:     d.TimesUsed,
	}, nil
}

func planToDoc(key string, p model.MenuPlan) planDoc {
	days := make([]planDayDoc, len(p.Days))
	for i, d := range p.Days {
		days[i] = planDayDoc{RecipeIDs: d.RecipeIDs}
	}
	return planDoc{
		Key:          key,
		PlanID:       p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Days:         days,
		TotalCal:     p.TotalCalories,
		AvgDailyCal:  p.AverageDailyCalories,
		TotalCost:    p.TotalCost.String(),
		AvgDailyCost: p.AverageDailyCost.String(),
		Active:       p.Active,
		Favorite:     p.Favorite,
		CreatedAt:    p.CreatedAt.Unix(),
		StartDate:    p.StartDate.Unix(),
		EndDate:      p.EndDate.Unix(),
	}
}

// PlanKey builds the composite identifier a plan document is stored under.
func PlanKey(userID string, planID int64) string {
	return userID + "_" + strconv.FormatInt(planID, 10)
}
