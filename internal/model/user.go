package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Goal is the user's nutritional goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// User is a planner profile. The ID is assigned by the remote auth system and
// is opaque to this code.
type User struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Age           int             `json:"age"`
	WeightKg      float64         `json:"weight_kg"`
	HeightCm      float64         `json:"height_cm"`
	Conditions    []string        `json:"conditions"`
	Allergies     []string        `json:"allergies"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Goal          Goal            `json:"goal"`
}

// BMI derives the body mass index from weight and height.
func (u User) BMI() float64 {
	if u.HeightCm <= 0 {
		return 0
	}
	m := u.HeightCm / 100
	return u.WeightKg / (m * m)
}

// ValidationError reports a profile field rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the profile fields that guard every user write.
func (u User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if u.Age < 1 || u.Age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 1 and 120"}
	}
	if u.WeightKg <= 0 || u.WeightKg > 400 {
		return &ValidationError{Field: "weight", Reason: "must be between 0 and 400 kg"}
	}
	if u.HeightCm <= 0 || u.HeightCm > 260 {
		return &ValidationError{Field: "height", Reason: "must be between 0 and 260 cm"}
	}
	switch u.Goal {
	case GoalLose, GoalMaintain, GoalGain, "":
	default:
		return &ValidationError{Field: "goal", Reason: "must be lose, maintain or gain"}
	}
	return nil
}
