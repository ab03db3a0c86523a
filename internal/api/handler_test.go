package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vibe-fitness/backend/internal/catalog"
	"github.com/pageza/vibe-fitness/backend/internal/logger"
	"github.com/pageza/vibe-fitness/backend/internal/middleware"
	"github.com/pageza/vibe-fitness/backend/internal/mocks"
	"github.com/pageza/vibe-fitness/backend/internal/service"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
}

func realServices() Services {
	store := catalog.New()
	return Services{
		Diet:      service.NewDietService(store, fixedNow),
		Workout:   service.NewWorkoutService(store, fixedNow),
		Advisory:  service.NewAdvisoryService(),
		Nutrition: service.NewNutritionService(),
	}
}

func setupTestRouter(t *testing.T, svc Services) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewTestLogger(t)

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	NewHandler(svc, 7, log, fixedNow).RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return w, response
}

func TestDietPlan(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/diet-plan",
		`{"goal":"cutting","weight":75,"height":180,"age":25,"targetCalories":1800,"dietaryRestrictions":["Vegan"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, response["success"])
	assert.Equal(t, "2024-03-04T08:00:00Z", response["generated_at"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "cutting", data["goal"])
	assert.Equal(t, "7 days", data["duration"])
	assert.Equal(t, float64(1800), data["targetCalories"])
	assert.Len(t, data["mealPrepTips"], 6)

	days := data["days"].(map[string]interface{})
	assert.Len(t, days, 7)
	day1 := days["day_1"].(map[string]interface{})
	assert.Equal(t, "Monday, March 04", day1["date"])
	meals := day1["meals"].([]interface{})
	require.Len(t, meals, 4)
	first := meals[0].(map[string]interface{})
	assert.Equal(t, "breakfast", first["type"])
	assert.Contains(t, first, "suitableFor")
	assert.Contains(t, first, "ingredients")

	raw := w.Body.String()
	assert.Less(t, strings.Index(raw, `"day_1":`), strings.Index(raw, `"day_2":`))
	assert.Less(t, strings.Index(raw, `"day_6":`), strings.Index(raw, `"day_7":`))
}

func TestDietPlanMissingFields(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/diet-plan", `{"goal":"cutting","height":180}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: weight, age", response["error"])
	assert.Equal(t, []interface{}{"weight", "age"}, response["missing"])
	assert.Equal(t, []interface{}{"goal", "weight", "height", "age"}, response["required"])
	assert.Equal(t, []interface{}{"goal", "height"}, response["received"])
}

func TestDietPlanZeroValuesCountAsPresent(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, _ := doRequest(t, router, http.MethodPost, "/api/diet-plan", `{"goal":"","weight":0,"height":0,"age":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDietPlanRejectsNonObjectBody(t *testing.T) {
	router := setupTestRouter(t, realServices())

	for _, body := range []string{`[1,2]`, `null`, `not json`, ``} {
		w, response := doRequest(t, router, http.MethodPost, "/api/diet-plan", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Request body must be a JSON object", response["error"])
	}
}

func TestDietPlanServiceFailure(t *testing.T) {
	diet := new(mocks.MockDietService)
	diet.On("BuildMealPlan", mock.AnythingOfType("types.UserProfile"), 7).
		Return(nil, errors.New("catalog table is empty"))

	svc := realServices()
	svc.Diet = diet
	router := setupTestRouter(t, svc)

	w, response := doRequest(t, router, http.MethodPost, "/api/diet-plan", `{"goal":"x","weight":1,"height":1,"age":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate diet plan", response["error"])
	assert.Equal(t, "catalog table is empty", response["details"])
	diet.AssertExpectations(t)
}

func TestWorkoutPlan(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/workout-plan",
		`{"goal":"fat_loss","fitnessExperience":"intermediate","medicalConditions":["knee_problems"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "cardio_endurance", data["template"])
	assert.Equal(t, "8 weeks", data["duration"])
	assert.Equal(t, float64(8), data["templateWeeks"])
	assert.Len(t, data["medicalConsiderations"], 1)

	raw := w.Body.String()
	assert.Less(t, strings.Index(raw, `"Monday":`), strings.Index(raw, `"Tuesday":`))
	assert.Less(t, strings.Index(raw, `"Thursday":`), strings.Index(raw, `"Saturday":`))
}

func TestWorkoutPlanEmptyExperienceIsBeginner(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/workout-plan", `{"goal":"fat_loss","fitnessExperience":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "beginner", data["fitnessLevel"])
	assert.Equal(t, "beginner_strength", data["template"])
	assert.Equal(t, "8 weeks", data["duration"])
	assert.Equal(t, float64(4), data["templateWeeks"])
}

func TestWorkoutPlanMissingFields(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/workout-plan", `{"goal":"cut"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: fitnessExperience", response["error"])
}

func TestWorkoutPlanServiceFailure(t *testing.T) {
	workout := new(mocks.MockWorkoutService)
	workout.On("BuildWorkoutPlan", mock.Anything).Return(nil, errors.New("no template"))

	svc := realServices()
	svc.Workout = workout
	router := setupTestRouter(t, svc)

	w, response := doRequest(t, router, http.MethodPost, "/api/workout-plan", `{"goal":"cut","fitnessExperience":"beginner"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate workout plan", response["error"])
	assert.Equal(t, "no template", response["details"])
}

func TestRecommendations(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/recommendations",
		`{"goal":"bulking","weight":70,"dietaryRestrictions":["Vegan"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Len(t, data["personalizedTips"], 5)
	assert.Len(t, data["supplementRecommendations"], 4)
	hydration := data["hydrationPlan"].(map[string]interface{})
	assert.Equal(t, "2.9L", hydration["dailyTarget"])
	assert.Contains(t, data, "trainingFoodPairing")
}

func TestRecommendationsUsesProfile(t *testing.T) {
	advisory := new(mocks.MockAdvisoryService)
	advisory.On("GenerateRecommendations", mock.MatchedBy(func(p types.UserProfile) bool {
		return p.Goal == "cutting" && p.ActivityLevel == "active"
	})).Return(&types.Recommendations{PersonalizedTips: []string{"tip"}})

	svc := realServices()
	svc.Advisory = advisory
	router := setupTestRouter(t, svc)

	w, response := doRequest(t, router, http.MethodPost, "/api/recommendations", `{"goal":"cutting","activityLevel":"active"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"tip"}, data["personalizedTips"])
	advisory.AssertExpectations(t)
}

func TestMacroTargets(t *testing.T) {
	router := setupTestRouter(t, realServices())

	w, response := doRequest(t, router, http.MethodPost, "/api/macro-targets",
		`{"gender":"male","weight":80,"height":180,"age":30,"activityLevel":"moderate"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1780), data["bmr"])
	assert.Equal(t, float64(2759), data["calories"])

	w, response = doRequest(t, router, http.MethodPost, "/api/macro-targets", `{"weight":80}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: height, age", response["error"])

	w, _ = doRequest(t, router, http.MethodPost, "/api/macro-targets", `{"weight":80,"height":-1,"age":30}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
