// Package catalog holds the static meal, exercise and workout template
// tables the plan assemblers select from.
package catalog

import (
	"maps"
	"slices"

	"github.com/pageza/vibe-fitness/backend/internal/model"
)

// Workout template keys.
const (
	BeginnerStrength     = "beginner_strength"
	IntermediateStrength = "intermediate_strength"
	CardioEndurance      = "cardio_endurance"
)

// Tables is the raw content a Store is built from.
type Tables struct {
	Meals     map[model.MealType][]model.MealItem
	Exercises map[model.ExerciseCategory][]model.ExerciseItem
	Templates map[string]model.WorkoutTemplate
	Swaps     map[string]string
}

// Store is a read-only view over the catalog tables. Accessors return copies,
// so callers can never mutate the shared tables.
type Store struct {
	meals     map[model.MealType][]model.MealItem
	exercises map[model.ExerciseCategory][]model.ExerciseItem
	templates map[string]model.WorkoutTemplate
	swaps     map[string]string
}

// New returns a Store with the built-in catalog.
func New() *Store {
	return NewStore(Tables{
		Meals:     defaultMeals(),
		Exercises: defaultExercises(),
		Templates: defaultTemplates(),
		Swaps:     defaultSwaps(),
	})
}

// NewStore builds a Store from t. The tables are copied.
func NewStore(t Tables) *Store {
	s := &Store{
		meals:     make(map[model.MealType][]model.MealItem, len(t.Meals)),
		exercises: make(map[model.ExerciseCategory][]model.ExerciseItem, len(t.Exercises)),
		templates: make(map[string]model.WorkoutTemplate, len(t.Templates)),
		swaps:     maps.Clone(t.Swaps),
	}
	for k, items := range t.Meals {
		s.meals[k] = cloneMeals(items)
	}
	for k, items := range t.Exercises {
		s.exercises[k] = cloneExercises(items)
	}
	for k, tpl := range t.Templates {
		s.templates[k] = tpl.Clone()
	}
	if s.swaps == nil {
		s.swaps = map[string]string{}
	}
	return s
}

// Meals returns the items of a meal table and whether the table exists.
func (s *Store) Meals(t model.MealType) ([]model.MealItem, bool) {
	items, ok := s.meals[t]
	if !ok {
		return nil, false
	}
	return cloneMeals(items), true
}

// MealTypes returns the meal tables present in the store, in display order.
func (s *Store) MealTypes() []model.MealType {
	var out []model.MealType
	for _, t := range model.MealTypes {
		if _, ok := s.meals[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Exercises returns the items of an exercise table and whether it exists.
func (s *Store) Exercises(c model.ExerciseCategory) ([]model.ExerciseItem, bool) {
	items, ok := s.exercises[c]
	if !ok {
		return nil, false
	}
	return cloneExercises(items), true
}

// ExerciseCategories returns the exercise tables present, in display order.
func (s *Store) ExerciseCategories() []model.ExerciseCategory {
	var out []model.ExerciseCategory
	for _, c := range model.ExerciseCategories {
		if _, ok := s.exercises[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Template returns the workout template stored under key.
func (s *Store) Template(key string) (model.WorkoutTemplate, bool) {
	tpl, ok := s.templates[key]
	if !ok {
		return model.WorkoutTemplate{}, false
	}
	return tpl.Clone(), true
}

// TemplateKeys returns the template keys in sorted order.
func (s *Store) TemplateKeys() []string {
	return slices.Sorted(maps.Keys(s.templates))
}

// Swaps returns the dietary substitution table.
func (s *Store) Swaps() map[string]string {
	return maps.Clone(s.swaps)
}

func cloneMeals(items []model.MealItem) []model.MealItem {
	out := make([]model.MealItem, len(items))
	for i, m := range items {
		out[i] = m.Clone()
	}
	return out
}

func cloneExercises(items []model.ExerciseItem) []model.ExerciseItem {
	out := make([]model.ExerciseItem, len(items))
	for i, e := range items {
		out[i] = e.Clone()
	}
	return out
}
