package mocks

import (
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockDietService is a mock implementation of the DietService interface
type MockDietService struct {
	mock.Mock
}

func (m *MockDietService) BuildMealPlan(profile types.UserProfile, numDays int) (*types.DietPlan, error) {
	args := m.Called(profile, numDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DietPlan), args.Error(1)
}

func (m *MockDietService) SearchMeals(mealType, restriction string) ([]model.MealItem, error) {
	args := m.Called(mealType, restriction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MealItem), args.Error(1)
}

func (m *MockDietService) Swaps() map[string]string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]string)
}
