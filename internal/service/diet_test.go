package service

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vibe-fitness/backend/internal/catalog"
	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

func fixedClock() time.Time {
	return time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
}

func newTestDietService() *DietService {
	return NewDietService(catalog.New(), fixedClock)
}

func floatPtr(v float64) *float64 { return &v }

func mealNames(day types.DayPlan) []string {
	names := make([]string, len(day.Meals))
	for i, m := range day.Meals {
		names[i] = m.Name
	}
	return names
}

func TestBuildMealPlanDefaults(t *testing.T) {
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{}, 7)
	require.NoError(t, err)

	assert.Equal(t, "maintenance", plan.Goal)
	assert.Equal(t, float64(2000), plan.TargetCalories)
	assert.Equal(t, "7 days", plan.Duration)
	assert.Equal(t, "2024-01-01T09:30:00Z", plan.GeneratedAt)
	assert.Empty(t, plan.MedicalConsiderations)
	assert.NotNil(t, plan.DietaryNotes)
	require.Len(t, plan.Days, 7)

	for i, day := range plan.Days {
		assert.Equal(t, fmt.Sprintf("day_%d", i+1), day.Key)
		require.Len(t, day.Meals, 4)
		assert.Equal(t, []string{"breakfast", "lunch", "snack", "dinner"},
			[]string{day.Meals[0].Slot, day.Meals[1].Slot, day.Meals[2].Slot, day.Meals[3].Slot})
	}

	first := plan.Days[0]
	assert.Equal(t, "Monday, January 01", first.Date)
	assert.Equal(t, "Tuesday, January 02", plan.Days[1].Date)
	assert.Equal(t, []string{
		"Scrambled Eggs with Whole Wheat Toast",
		"Salmon with Brown Rice",
		"Protein Bar",
		"Lean Beef Stir-Fry",
	}, mealNames(first))
	assert.Equal(t, float64(1500), first.TotalCalories)
	assert.Equal(t, first.TotalCalories, first.Macros.Calories)
}

func TestBuildMealPlanHonorsTargetCalories(t *testing.T) {
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{
		TargetCalories:    floatPtr(1360),
		MedicalConditions: []string{"Diabetes"},
	}, 1)
	require.NoError(t, err)

	// Smoothie Bowl is the closest breakfast but too high in carbs.
	assert.Equal(t, "Greek Yogurt Parfait", plan.Days[0].Meals[0].Name)
	assert.Equal(t, []string{"⚠️ Diabetes: Focus on complex carbs and fiber to manage blood sugar"},
		plan.MedicalConsiderations)

	plain, err := newTestDietService().BuildMealPlan(types.UserProfile{TargetCalories: floatPtr(1360)}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Smoothie Bowl", plain.Days[0].Meals[0].Name)
}

func TestBuildMealPlanVegan(t *testing.T) {
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{
		DietaryRestrictions: []string{"Vegan"},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Avocado Toast",
		"Quinoa Buddha Bowl",
		"Apple with Almond Butter",
		"Chickpea Pasta Primavera",
	}, mealNames(plan.Days[0]))
	for _, m := range plan.Days[0].Meals {
		assert.True(t, m.HasTag(model.TagVegan), m.Name)
	}
	assert.Equal(t, []string{"Vegan"}, plan.DietaryNotes)
}

func TestBuildMealPlanKeto(t *testing.T) {
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{
		DietaryRestrictions: []string{"keto"},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Scrambled Eggs with Whole Wheat Toast",
		"Grilled Chicken Salad",
		"Mixed Nuts Trail Mix",
		"Grilled Fish with Vegetables",
	}, mealNames(plan.Days[0]))
}

func TestBuildMealPlanFallsBackWhenNothingQualifies(t *testing.T) {
	// No catalog item is both vegan and keto friendly.
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{
		DietaryRestrictions: []string{"Vegan", "Keto"},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Scrambled Eggs with Whole Wheat Toast", plan.Days[0].Meals[0].Name)
}

func TestBuildMealPlanIsDeterministic(t *testing.T) {
	svc := newTestDietService()
	profile := types.UserProfile{Goal: "cutting", TargetCalories: floatPtr(1800)}

	a, err := svc.BuildMealPlan(profile, 3)
	require.NoError(t, err)
	b, err := svc.BuildMealPlan(profile, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildMealPlanRejectsNonPositiveDays(t *testing.T) {
	_, err := newTestDietService().BuildMealPlan(types.UserProfile{}, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBuildMealPlanEmptyCatalog(t *testing.T) {
	svc := NewDietService(catalog.NewStore(catalog.Tables{}), fixedClock)
	_, err := svc.BuildMealPlan(types.UserProfile{}, 1)
	require.ErrorIs(t, err, ErrEmptyCatalog)
	assert.False(t, apperrors.IsValidation(err))
}

func TestBuildMealPlanShoppingList(t *testing.T) {
	plan, err := newTestDietService().BuildMealPlan(types.UserProfile{}, 7)
	require.NoError(t, err)

	list := plan.ShoppingList
	require.NotEmpty(t, list)
	assert.True(t, slices.IsSorted(list))
	assert.Len(t, list, len(slices.Compact(slices.Clone(list))))
	for _, m := range plan.Days[0].Meals {
		for _, ing := range m.Ingredients {
			assert.Contains(t, list, ing)
		}
	}
}

func TestShoppingListFor(t *testing.T) {
	req := &types.ShoppingListRequest{Days: map[string]types.ShoppingDay{
		"day_1": {Meals: []types.ShoppingMeal{{Ingredients: []string{"rice", "eggs"}}}},
		"day_2": {Meals: []types.ShoppingMeal{{Ingredients: []string{"eggs"}}, {}}},
	}}
	assert.Equal(t, []string{"eggs", "rice"}, ShoppingListFor(req))
	assert.Equal(t, []string{}, ShoppingListFor(nil))
	assert.Equal(t, []string{}, ShoppingListFor(&types.ShoppingListRequest{}))
}

func TestBuildShoppingListNilPlan(t *testing.T) {
	assert.Equal(t, []string{}, BuildShoppingList(nil))
}

func TestCalculateMacroPercentages(t *testing.T) {
	got := CalculateMacroPercentages(model.Macros{Protein: 25, Carbs: 50, Fats: 10, Calories: 400})
	assert.Equal(t, model.MacroPercentages{Protein: 25, Carbs: 50, Fats: 22.5}, got)

	got = CalculateMacroPercentages(model.Macros{Protein: 10, Calories: 300})
	assert.Equal(t, 13.3, got.Protein)

	assert.Equal(t, model.MacroPercentages{}, CalculateMacroPercentages(model.Macros{Protein: 10}))
}

func TestCategorizeShoppingList(t *testing.T) {
	got := CategorizeShoppingList([]string{
		"Chicken breast", "Brown rice", "Spinach", "Berries", "Greek yogurt", "Olive oil", "Eggs on bread",
	})

	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Proteins", "Grains", "Vegetables", "Fruits", "Dairy", "Other"}, names)
	assert.Equal(t, []string{"Chicken breast", "Eggs on bread"}, got.Get("Proteins"))
	assert.Equal(t, []string{"Brown rice"}, got.Get("Grains"))
	assert.Equal(t, []string{"Spinach"}, got.Get("Vegetables"))
	assert.Equal(t, []string{"Berries"}, got.Get("Fruits"))
	assert.Equal(t, []string{"Greek yogurt"}, got.Get("Dairy"))
	assert.Equal(t, []string{"Olive oil"}, got.Get("Other"))
}

func TestCategorizeShoppingListEmpty(t *testing.T) {
	got := CategorizeShoppingList(nil)
	require.Len(t, got, 6)
	for _, c := range got {
		assert.NotNil(t, c.Items, c.Name)
		assert.Empty(t, c.Items, c.Name)
	}
}

func TestMedicalNotesOrder(t *testing.T) {
	notes := MedicalNotes([]string{"Arthritis", "Hypertension", "Unknown"})
	require.Len(t, notes, 2)
	assert.Contains(t, notes[0], "Hypertension")
	assert.Contains(t, notes[1], "Arthritis")
}

func TestMealPrepTips(t *testing.T) {
	assert.Len(t, MealPrepTips("maintenance"), 5)
	assert.Equal(t, "💪 Include calorie-dense snacks between meals", MealPrepTips("bulking")[5])
	assert.Equal(t, "🔥 Prep low-calorie, high-volume options", MealPrepTips("cutting")[5])
}

func TestSearchMeals(t *testing.T) {
	svc := newTestDietService()

	all, err := svc.SearchMeals("breakfast", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	vegan, err := svc.SearchMeals("lunch", model.TagVegan)
	require.NoError(t, err)
	require.Len(t, vegan, 2)
	assert.Equal(t, "Quinoa Buddha Bowl", vegan[0].Name)

	none, err := svc.SearchMeals("snacks", "nothing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = svc.SearchMeals("brunch", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"breakfast", "lunch", "dinner", "snacks"}, appErr.Extra["valid_types"])
}

func TestSwaps(t *testing.T) {
	swaps := newTestDietService().Swaps()
	assert.NotEmpty(t, swaps)
	swaps["milk"] = "changed"
	assert.NotEqual(t, "changed", newTestDietService().Swaps()["milk"])
}
