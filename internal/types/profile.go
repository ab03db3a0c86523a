package types

import "strings"

// UserProfile is the profile a client submits to the plan endpoints. It is
// never stored.
type UserProfile struct {
	Goal                string   `json:"goal"`
	Weight              *float64 `json:"weight,omitempty"`
	Height              float64  `json:"height"`
	Age                 float64  `json:"age"`
	Gender              string   `json:"gender"`
	BodyFatPercentage   float64  `json:"bodyFatPercentage"`
	ActivityLevel       string   `json:"activityLevel"`
	FitnessExperience   string   `json:"fitnessExperience"`
	MedicalConditions   []string `json:"medicalConditions"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	TargetCalories      *float64 `json:"targetCalories,omitempty"`
	DaysAvailable       int      `json:"daysAvailable"`
}

// GoalOr returns the goal, or def when none was given.
func (p UserProfile) GoalOr(def string) string {
	if p.Goal == "" {
		return def
	}
	return p.Goal
}

// WeightOr returns the weight in kg, or def when none was given.
func (p UserProfile) WeightOr(def float64) float64 {
	if p.Weight == nil {
		return def
	}
	return *p.Weight
}

// TargetCaloriesOr returns the daily calorie target, or def when none was given.
func (p UserProfile) TargetCaloriesOr(def float64) float64 {
	if p.TargetCalories == nil {
		return def
	}
	return *p.TargetCalories
}

// HasRestriction reports whether the profile lists the dietary restriction,
// ignoring case.
func (p UserProfile) HasRestriction(name string) bool {
	return containsFold(p.DietaryRestrictions, name)
}

// HasCondition reports whether the profile lists the medical condition,
// ignoring case.
func (p UserProfile) HasCondition(name string) bool {
	return containsFold(p.MedicalConditions, name)
}

func containsFold(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return true
		}
	}
	return false
}
