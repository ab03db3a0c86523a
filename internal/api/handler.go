package api

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/logger"
	"github.com/pageza/vibe-fitness/backend/internal/service"
)

const serviceName = "Vibe Fitness Backend API"

// Handler serves the fitness API endpoints.
type Handler struct {
	diet      service.IDietService
	workout   service.IWorkoutService
	advisory  service.IAdvisoryService
	nutrition service.INutritionService
	planDays  int
	log       logger.Logger
	now       func() time.Time
}

// Services groups the services a Handler depends on.
type Services struct {
	Diet      service.IDietService
	Workout   service.IWorkoutService
	Advisory  service.IAdvisoryService
	Nutrition service.INutritionService
}

// NewHandler creates a Handler. planDays is the length of generated diet
// plans and a nil clock means time.Now.
func NewHandler(svc Services, planDays int, log logger.Logger, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		diet:      svc.Diet,
		workout:   svc.Workout,
		advisory:  svc.Advisory,
		nutrition: svc.Nutrition,
		planDays:  planDays,
		log:       log,
		now:       now,
	}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/info", h.Info)

	router.POST("/diet-plan", h.DietPlan)
	router.POST("/workout-plan", h.WorkoutPlan)
	router.POST("/recommendations", h.Recommendations)
	router.POST("/macro-targets", h.MacroTargets)

	router.GET("/meal-search", h.SearchMeals)
	router.POST("/calculate-nutrition", h.CalculateNutrition)
	router.POST("/shopping-list", h.ShoppingList)
	router.GET("/dietary-swaps", h.DietarySwaps)

	router.GET("/exercises", h.Exercises)
	router.GET("/exercises/alternatives", h.ExerciseAlternatives)
}

func (h *Handler) timestamp() string {
	return h.now().Format(time.RFC3339)
}

// respondPlan writes the envelope shared by the generator endpoints.
func (h *Handler) respondPlan(c *gin.Context, data interface{}) {
	c.JSON(200, gin.H{
		"success":      true,
		"data":         data,
		"generated_at": h.timestamp(),
	})
}

// fail attaches err for the error middleware. Anything that is not a
// validation error is reported under message.
func fail(c *gin.Context, message string, err error) {
	if apperrors.IsValidation(err) {
		_ = c.Error(err)
		return
	}
	_ = c.Error(apperrors.Internal(message, err))
}
