package service

import (
	"math"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var goalAdjustments = map[string]float64{
	"bulking":     300,
	"cutting":     -400,
	"maintenance": 0,
}

var defaultRatios = types.MacroRatios{Protein: 0.30, Carbs: 0.45, Fats: 0.25}

// ratioRules are applied in order; a later match replaces an earlier one.
var ratioRules = []struct {
	Matches func(types.UserProfile) bool
	Ratios  types.MacroRatios
}{
	{func(p types.UserProfile) bool { return p.HasCondition("diabetes") }, types.MacroRatios{Protein: 0.35, Carbs: 0.35, Fats: 0.30}},
	{func(p types.UserProfile) bool { return p.HasCondition("hypertension") }, types.MacroRatios{Protein: 0.35, Carbs: 0.40, Fats: 0.25}},
	{func(p types.UserProfile) bool { return p.HasRestriction("vegan") }, types.MacroRatios{Protein: 0.35, Carbs: 0.45, Fats: 0.20}},
	{func(p types.UserProfile) bool { return p.HasRestriction("keto") }, types.MacroRatios{Protein: 0.25, Carbs: 0.05, Fats: 0.70}},
}

// NutritionService computes nutrition figures from profiles and meal lists.
type NutritionService struct{}

func NewNutritionService() *NutritionService {
	return &NutritionService{}
}

// CalculateMacroTargets derives daily calorie and macro targets using the
// Mifflin-St Jeor equation, adjusted for activity, goal and the profile's
// conditions and restrictions.
func (s *NutritionService) CalculateMacroTargets(profile types.UserProfile) (*types.MacroTargets, error) {
	if profile.Weight == nil {
		return nil, apperrors.MissingFields([]string{"weight"})
	}
	weight := *profile.Weight
	if weight <= 0 || profile.Height <= 0 || profile.Age <= 0 {
		return nil, apperrors.Validation("weight, height and age must be positive")
	}

	bmr := 10*weight + 6.25*profile.Height - 5*profile.Age
	if profile.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[DefaultActivityLevel]
	}
	tdee := roundHalfUp(bmr * multiplier)
	calories := tdee + goalAdjustments[profile.Goal]

	ratios := defaultRatios
	for _, rule := range ratioRules {
		if rule.Matches(profile) {
			ratios = rule.Ratios
		}
	}

	return &types.MacroTargets{
		BMR:      int(roundHalfUp(bmr)),
		TDEE:     int(tdee),
		Calories: int(roundHalfUp(calories)),
		Protein:  int(roundHalfUp(calories * ratios.Protein / 4)),
		Carbs:    int(roundHalfUp(calories * ratios.Carbs / 4)),
		Fats:     int(roundHalfUp(calories * ratios.Fats / 9)),
		Ratios:   ratios,
	}, nil
}

// NutritionTotals sums the entries and computes their macro split.
func (s *NutritionService) NutritionTotals(entries []types.NutritionEntry) (model.Macros, model.MacroPercentages, error) {
	if len(entries) == 0 {
		return model.Macros{}, model.MacroPercentages{}, apperrors.Validation("No meals provided")
	}
	var totals model.Macros
	for _, e := range entries {
		totals = totals.Add(model.MealItem{
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fats:     e.Fats,
		})
	}
	return totals, CalculateMacroPercentages(totals), nil
}

// roundHalfUp rounds halves towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
