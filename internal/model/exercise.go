package model

import "slices"

// ExerciseCategory names an exercise table in the catalog.
type ExerciseCategory string

const (
	Strength    ExerciseCategory = "strength"
	Cardio      ExerciseCategory = "cardio"
	Flexibility ExerciseCategory = "flexibility"
	Core        ExerciseCategory = "core"
)

// ExerciseCategories lists the catalog exercise tables in display order.
var ExerciseCategories = []ExerciseCategory{Strength, Cardio, Flexibility, Core}

// ExerciseItem is one entry of an exercise table. Only the fields that make
// sense for the item's category are set.
type ExerciseItem struct {
	Name         string           `json:"name"`
	Category     ExerciseCategory `json:"category"`
	MuscleGroups []string         `json:"muscle_groups,omitempty"`
	Difficulty   string           `json:"difficulty,omitempty"`
	Type         string           `json:"type,omitempty"`
	Sets         int              `json:"sets,omitempty"`
	Reps         string           `json:"reps,omitempty"`
	Rest         string           `json:"rest,omitempty"`
	Duration     string           `json:"duration,omitempty"`
	Intensity    string           `json:"intensity,omitempty"`
	CaloriesBurn int              `json:"caloriesBurn,omitempty"`
	Equipment    string           `json:"equipment,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Alternatives []string         `json:"alternatives,omitempty"`
	Variations   []string         `json:"variations,omitempty"`
	Benefits     []string         `json:"benefits,omitempty"`
}

// Clone returns a deep copy of the item.
func (e ExerciseItem) Clone() ExerciseItem {
	e.MuscleGroups = slices.Clone(e.MuscleGroups)
	e.Alternatives = slices.Clone(e.Alternatives)
	e.Variations = slices.Clone(e.Variations)
	e.Benefits = slices.Clone(e.Benefits)
	return e
}
