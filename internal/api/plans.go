package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/vibe-fitness/backend/internal/metrics"
)

// DietPlan handles POST /api/diet-plan.
func (h *Handler) DietPlan(c *gin.Context) {
	profile, err := bindProfile(c, dietPlanFields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	plan, err := h.diet.BuildMealPlan(profile, h.planDays)
	if err != nil {
		fail(c, "Failed to generate diet plan", err)
		return
	}

	metrics.PlansGenerated.WithLabelValues(metrics.PlanDiet).Inc()
	h.log.Info("generated diet plan", map[string]interface{}{
		"goal": plan.Goal,
		"days": len(plan.Days),
	})
	h.respondPlan(c, plan)
}

// WorkoutPlan handles POST /api/workout-plan.
func (h *Handler) WorkoutPlan(c *gin.Context) {
	profile, err := bindProfile(c, workoutPlanFields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	plan, err := h.workout.BuildWorkoutPlan(profile)
	if err != nil {
		fail(c, "Failed to generate workout plan", err)
		return
	}

	metrics.PlansGenerated.WithLabelValues(metrics.PlanWorkout).Inc()
	h.log.Info("generated workout plan", map[string]interface{}{
		"goal":     plan.Goal,
		"template": plan.Template,
	})
	h.respondPlan(c, plan)
}

// Recommendations handles POST /api/recommendations. No field is required.
func (h *Handler) Recommendations(c *gin.Context) {
	profile, err := bindProfile(c, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recs := h.advisory.GenerateRecommendations(profile)
	metrics.PlansGenerated.WithLabelValues(metrics.PlanRecommendations).Inc()
	h.respondPlan(c, recs)
}

// MacroTargets handles POST /api/macro-targets.
func (h *Handler) MacroTargets(c *gin.Context) {
	profile, err := bindProfile(c, macroTargetsFields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	targets, err := h.nutrition.CalculateMacroTargets(profile)
	if err != nil {
		fail(c, "Failed to calculate macro targets", err)
		return
	}

	metrics.PlansGenerated.WithLabelValues(metrics.PlanMacroTargets).Inc()
	h.respondPlan(c, targets)
}
