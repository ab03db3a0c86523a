package service

import (
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

// IDietService defines the interface for meal plan operations
type IDietService interface {
	BuildMealPlan(profile types.UserProfile, numDays int) (*types.DietPlan, error)
	SearchMeals(mealType, restriction string) ([]model.MealItem, error)
	Swaps() map[string]string
}

// IWorkoutService defines the interface for workout plan operations
type IWorkoutService interface {
	BuildWorkoutPlan(profile types.UserProfile) (*types.WorkoutPlan, error)
	GetExerciseAlternatives(name string) []string
	Exercises(category string) ([]model.ExerciseItem, error)
	Templates() []string
}

// IAdvisoryService defines the interface for recommendation operations
type IAdvisoryService interface {
	GenerateRecommendations(profile types.UserProfile) *types.Recommendations
}

// INutritionService defines the interface for nutrition calculations
type INutritionService interface {
	CalculateMacroTargets(profile types.UserProfile) (*types.MacroTargets, error)
	NutritionTotals(entries []types.NutritionEntry) (model.Macros, model.MacroPercentages, error)
}

var (
	_ IDietService      = (*DietService)(nil)
	_ IWorkoutService   = (*WorkoutService)(nil)
	_ IAdvisoryService  = (*AdvisoryService)(nil)
	_ INutritionService = (*NutritionService)(nil)
)
