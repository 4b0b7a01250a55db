// Package planner assembles weekly menu plans from compatible recipes.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"menu-planner/internal/compat"
	"menu-planner/internal/logger"
	"menu-planner/internal/model"
	"menu-planner/internal/store"
)

const planDays = 7

// mealCategories is the per-day slot order.
var mealCategories = []model.Category{
	model.CategoryBreakfast,
	model.CategoryLunch,
	model.CategoryDinner,
}

// InsufficientCategory reports that a meal category has no compatible recipe,
// so no plan can be produced. It aborts composition before any write.
type InsufficientCategory struct {
	Category model.Category
}

func (e *InsufficientCategory) Error() string {
	return fmt.Sprintf("no %s recipes available for this profile", strings.ToLower(string(e.Category)))
}

// Picker supplies the random selection. *math/rand.Rand satisfies it, so
// production wires an unseeded PRNG and tests wire a fixed seed.
type Picker interface {
	Intn(n int) int
}

// Composer builds and commits weekly menu plans.
type Composer struct {
	local  store.LocalStore
	picker Picker
	log    *logger.Logger
	now    func() time.Time
}

// NewComposer creates a Composer writing committed plans to the local store.
func NewComposer(local store.LocalStore, picker Picker, log *logger.Logger) *Composer {
	return &Composer{
		local:  local,
		picker: picker,
		log:    log,
		now:    time.Now,
	}
}

// Compose assembles a 7-day plan from the compatible recipe subset without
// touching any store. Each day gets one uniformly random recipe per meal
// category, sampling with replacement, so a recipe may recur across days and
// within the week.
func (c *Composer) Compose(user model.User, compatible []model.Recipe) (*model.MenuPlan, error) {
	pools := compat.ByCategory(compatible)
	for _, cat := range mealCategories {
		if len(pools[cat]) == 0 {
			return nil, &InsufficientCategory{Category: cat}
		}
	}

	start := c.now()
	plan := &model.MenuPlan{
		UserID:    user.ID,
		Name:      fmt.Sprintf("Weekly menu %d/%d", start.Day(), int(start.Month())),
		Active:    true,
		CreatedAt: start,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, planDays-1),
	}

	totalCost := decimal.Zero
	totalCalories := 0
	for day := 0; day < planDays; day++ {
		ids := make([]int64, 0, len(mealCategories))
		for _, cat := range mealCategories {
			pool := pools[cat]
			picked := pool[c.picker.Intn(len(pool))]
			ids = append(ids, picked.ID)
			totalCalories += picked.Nutrition.Calories
			totalCost = totalCost.Add(picked.EstimatedCost)
		}
		plan.Days[day] = model.DaySlot{RecipeIDs: ids}
	}

	plan.TotalCalories = totalCalories
	plan.TotalCost = totalCost
	plan.AverageDailyCalories, plan.AverageDailyCost = dailyAverages(totalCalories, totalCost)

	return plan, nil
}

// dailyAverages divides the weekly totals down to per-day figures. Calories
// use truncating integer division; cost uses exact decimal division. The
// asymmetry is part of the output contract.
func dailyAverages(totalCalories int, totalCost decimal.Decimal) (int, decimal.Decimal) {
	return totalCalories / planDays, totalCost.Div(decimal.NewFromInt(planDays))
}

// Commit persists the composed plan: the user's previous plans are
// deactivated and the new plan inserted as the single active one, then the
// usage counter of every distinct referenced recipe is incremented once.
// A usage-counter failure after the insert is logged and swallowed; the
// committed plan stands and the counters are not retried.
func (c *Composer) Commit(ctx context.Context, plan *model.MenuPlan) error {
	if err := c.local.DeactivateAllPlans(ctx, plan.UserID); err != nil {
		return fmt.Errorf("failed to deactivate previous plans: %w", err)
	}
	if err := c.local.PutPlan(ctx, plan); err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	if err := c.local.IncrementRecipeUsage(ctx, plan.RecipeIDs()); err != nil {
		c.log.Warnw("failed to increment recipe usage counters",
			"plan", plan.ID, "error", err)
	}
	return nil
}

// GenerateWeeklyMenu composes and commits in one step.
func (c *Composer) GenerateWeeklyMenu(ctx context.Context, user model.User, compatible []model.Recipe) (*model.MenuPlan, error) {
	plan, err := c.Compose(user, compatible)
	if err != nil {
		return nil, err
	}
	if err := c.Commit(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
