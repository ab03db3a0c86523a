package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Health returns the health status of the API
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.timestamp(),
		"service":   serviceName,
		"cors":      "enabled",
	})
}

// Info describes the endpoints and their expected request bodies.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":           serviceName,
		"version":           apiVersion,
		"workout_templates": h.workout.Templates(),
		"endpoints": gin.H{
			"POST /api/diet-plan": gin.H{
				"description":     "Generate personalized 7-day diet plan",
				"required_fields": dietPlanFields,
				"optional_fields": []string{"gender", "activityLevel", "medicalConditions", "dietaryRestrictions", "targetCalories"},
				"example": gin.H{
					"height":              180,
					"weight":              75,
					"age":                 25,
					"gender":              "male",
					"activityLevel":       "moderate",
					"goal":                "cutting",
					"medicalConditions":   []string{},
					"dietaryRestrictions": []string{},
					"targetCalories":      2000,
				},
			},
			"POST /api/workout-plan": gin.H{
				"description":     "Generate personalized 8-week workout plan",
				"required_fields": workoutPlanFields,
				"optional_fields": []string{"weight", "height", "age", "medicalConditions", "daysAvailable"},
				"example": gin.H{
					"goal":              "muscle_gain",
					"fitnessExperience": "intermediate",
					"weight":            75,
					"height":            180,
					"age":               25,
					"medicalConditions": []string{},
					"daysAvailable":     4,
				},
			},
			"POST /api/macro-targets": gin.H{
				"description":     "Calculate daily calorie and macro targets",
				"required_fields": macroTargetsFields,
				"optional_fields": []string{"gender", "activityLevel", "goal", "medicalConditions", "dietaryRestrictions"},
			},
			"POST /api/recommendations":       gin.H{"description": "Get personalized nutrition recommendations"},
			"GET /api/meal-search":            gin.H{"description": "Search meals by type and dietary restriction"},
			"POST /api/calculate-nutrition":   gin.H{"description": "Calculate nutrition totals for a list of meals"},
			"POST /api/shopping-list":         gin.H{"description": "Generate a categorized shopping list from a diet plan"},
			"GET /api/dietary-swaps":          gin.H{"description": "List healthier ingredient substitutions"},
			"GET /api/exercises":              gin.H{"description": "List exercises by category"},
			"GET /api/exercises/alternatives": gin.H{"description": "Find alternatives for an exercise"},
		},
	})
}
