package mocks

import (
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockNutritionService is a mock implementation of the NutritionService interface
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) CalculateMacroTargets(profile types.UserProfile) (*types.MacroTargets, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.MacroTargets), args.Error(1)
}

func (m *MockNutritionService) NutritionTotals(entries []types.NutritionEntry) (model.Macros, model.MacroPercentages, error) {
	args := m.Called(entries)
	return args.Get(0).(model.Macros), args.Get(1).(model.MacroPercentages), args.Error(2)
}

// MockAdvisoryService is a mock implementation of the AdvisoryService interface
type MockAdvisoryService struct {
	mock.Mock
}

func (m *MockAdvisoryService) GenerateRecommendations(profile types.UserProfile) *types.Recommendations {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*types.Recommendations)
}
