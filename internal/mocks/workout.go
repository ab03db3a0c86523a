package mocks

import (
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockWorkoutService is a mock implementation of the WorkoutService interface
type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) BuildWorkoutPlan(profile types.UserProfile) (*types.WorkoutPlan, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutService) GetExerciseAlternatives(name string) []string {
	args := m.Called(name)
	return args.Get(0).([]string)
}

func (m *MockWorkoutService) Exercises(category string) ([]model.ExerciseItem, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExerciseItem), args.Error(1)
}

func (m *MockWorkoutService) Templates() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
