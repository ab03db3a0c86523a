package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/service"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

const defaultMealType = string(model.Breakfast)

// SearchMeals handles GET /api/meal-search.
func (h *Handler) SearchMeals(c *gin.Context) {
	var query types.MealSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(apperrors.Validation("Invalid query: %v", err))
		return
	}
	if query.Type == "" {
		query.Type = defaultMealType
	}

	meals, err := h.diet.SearchMeals(query.Type, query.Restriction)
	if err != nil {
		fail(c, "Failed to search meals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"mealType": query.Type,
		"count":    len(meals),
		"meals":    meals,
	})
}

// CalculateNutrition handles POST /api/calculate-nutrition.
func (h *Handler) CalculateNutrition(c *gin.Context) {
	body, _, err := readObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req types.CalculateNutritionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid meals: %v", err))
		return
	}

	totals, pct, err := h.nutrition.NutritionTotals(req.Meals)
	if err != nil {
		fail(c, "Failed to calculate nutrition", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"mealCount": len(req.Meals),
		"totals": gin.H{
			"calories": totals.Calories,
			"protein":  totals.Protein,
			"carbs":    totals.Carbs,
			"fats":     totals.Fats,
		},
		"macroPercentages": pct,
	})
}

// ShoppingList handles POST /api/shopping-list. The body is a diet plan as
// returned by /api/diet-plan, or at least its days.
func (h *Handler) ShoppingList(c *gin.Context) {
	body, raw, err := readObject(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if _, ok := raw["days"]; !ok {
		_ = c.Error(apperrors.MissingFields([]string{"days"}))
		return
	}
	var req types.ShoppingListRequest
	if err := json.Unmarshal(body, &req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid meal plan: %v", err))
		return
	}

	items := service.ShoppingListFor(&req)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(items),
		"items":       items,
		"categorized": service.CategorizeShoppingList(items),
	})
}

// DietarySwaps handles GET /api/dietary-swaps.
func (h *Handler) DietarySwaps(c *gin.Context) {
	swaps := h.diet.Swaps()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(swaps),
		"swaps":   swaps,
	})
}

// Exercises handles GET /api/exercises.
func (h *Handler) Exercises(c *gin.Context) {
	var query types.ExerciseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(apperrors.Validation("Invalid query: %v", err))
		return
	}

	exercises, err := h.workout.Exercises(query.Category)
	if err != nil {
		fail(c, "Failed to list exercises", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"category":  query.Category,
		"count":     len(exercises),
		"exercises": exercises,
	})
}

// ExerciseAlternatives handles GET /api/exercises/alternatives.
func (h *Handler) ExerciseAlternatives(c *gin.Context) {
	var query types.ExerciseQuery
	if err := c.ShouldBindQuery(&query); err != nil || query.Name == "" {
		_ = c.Error(apperrors.MissingFields([]string{"name"}))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"exercise":     query.Name,
		"alternatives": h.workout.GetExerciseAlternatives(query.Name),
	})
}
