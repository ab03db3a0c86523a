package api

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

var (
	dietPlanFields     = []string{"goal", "weight", "height", "age"}
	workoutPlanFields  = []string{"goal", "fitnessExperience"}
	macroTargetsFields = []string{"weight", "height", "age"}
)

// readObject reads the request body as a JSON object. Field presence is
// judged on the raw keys so explicit zero values count as given.
func readObject(c *gin.Context) ([]byte, map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, nil, apperrors.Validation("Failed to read request body")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, nil, apperrors.Validation("Request body must be a JSON object")
	}
	return body, raw, nil
}

// bindProfile decodes the body into a profile after checking the required
// fields are present.
func bindProfile(c *gin.Context, required []string) (types.UserProfile, error) {
	var profile types.UserProfile

	body, raw, err := readObject(c)
	if err != nil {
		return profile, err
	}

	var missing []string
	for _, field := range required {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return profile, apperrors.MissingFields(missing).
			WithExtra("required", required).
			WithExtra("received", slices.Sorted(maps.Keys(raw)))
	}

	if err := json.Unmarshal(body, &profile); err != nil {
		return profile, apperrors.Validation("Invalid profile: %v", err)
	}
	return profile, nil
}
