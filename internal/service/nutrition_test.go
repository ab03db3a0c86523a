package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

func TestCalculateMacroTargetsMale(t *testing.T) {
	got, err := NewNutritionService().CalculateMacroTargets(types.UserProfile{
		Gender:        "male",
		Weight:        floatPtr(80),
		Height:        180,
		Age:           30,
		ActivityLevel: "moderate",
		Goal:          "maintenance",
	})
	require.NoError(t, err)

	assert.Equal(t, types.MacroTargets{
		BMR:      1780,
		TDEE:     2759,
		Calories: 2759,
		Protein:  207,
		Carbs:    310,
		Fats:     77,
		Ratios:   defaultRatios,
	}, *got)
}

func TestCalculateMacroTargetsKetoCutting(t *testing.T) {
	got, err := NewNutritionService().CalculateMacroTargets(types.UserProfile{
		Gender:              "female",
		Weight:              floatPtr(60),
		Height:              165,
		Age:                 25,
		ActivityLevel:       "sedentary",
		Goal:                "cutting",
		DietaryRestrictions: []string{"Keto"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1345, got.BMR)
	assert.Equal(t, 1614, got.TDEE)
	assert.Equal(t, 1214, got.Calories)
	assert.Equal(t, 76, got.Protein)
	assert.Equal(t, 15, got.Carbs)
	assert.Equal(t, 94, got.Fats)
}

func TestCalculateMacroTargetsLaterRulesOverride(t *testing.T) {
	got, err := NewNutritionService().CalculateMacroTargets(types.UserProfile{
		Weight:              floatPtr(70),
		Height:              170,
		Age:                 40,
		MedicalConditions:   []string{"Diabetes"},
		DietaryRestrictions: []string{"Vegan"},
	})
	require.NoError(t, err)
	assert.Equal(t, types.MacroRatios{Protein: 0.35, Carbs: 0.45, Fats: 0.20}, got.Ratios)

	got, err = NewNutritionService().CalculateMacroTargets(types.UserProfile{
		Weight:            floatPtr(70),
		Height:            170,
		Age:               40,
		MedicalConditions: []string{"Diabetes"},
	})
	require.NoError(t, err)
	assert.Equal(t, types.MacroRatios{Protein: 0.35, Carbs: 0.35, Fats: 0.30}, got.Ratios)
}

func TestCalculateMacroTargetsValidation(t *testing.T) {
	svc := NewNutritionService()

	_, err := svc.CalculateMacroTargets(types.UserProfile{Height: 170, Age: 30})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CalculateMacroTargets(types.UserProfile{Weight: floatPtr(70), Height: 0, Age: 30})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNutritionTotals(t *testing.T) {
	totals, pct, err := NewNutritionService().NutritionTotals([]types.NutritionEntry{
		{Name: "a", Calories: 250, Protein: 10, Carbs: 30, Fats: 5},
		{Name: "b", Calories: 150, Protein: 15, Carbs: 20, Fats: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, model.Macros{Protein: 25, Carbs: 50, Fats: 10, Calories: 400}, totals)
	assert.Equal(t, model.MacroPercentages{Protein: 25, Carbs: 50, Fats: 22.5}, pct)
}

func TestNutritionTotalsEmpty(t *testing.T) {
	_, _, err := NewNutritionService().NutritionTotals(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "No meals provided", err.Error())
}
