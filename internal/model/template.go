package model

import "slices"

// TemplateExercise is an exercise prescription inside a workout template.
// Sets, reps and duration override the catalog defaults for that exercise.
type TemplateExercise struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets,omitempty"`
	Reps      string `json:"reps,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Intensity string `json:"intensity,omitempty"`
}

// DaySpec is one training day of a template.
type DaySpec struct {
	Weekday   string             `json:"weekday"`
	Name      string             `json:"name"`
	Type      string             `json:"type,omitempty"`
	Duration  string             `json:"duration,omitempty"`
	Exercises []TemplateExercise `json:"exercises"`
}

// WorkoutTemplate is a weekly training skeleton for a fitness level and goal.
type WorkoutTemplate struct {
	Key                string    `json:"key"`
	Weeks              int       `json:"weeks"`
	Frequency          int       `json:"frequency"`
	DurationPerSession string    `json:"duration_per_session"`
	Focus              string    `json:"focus"`
	Days               []DaySpec `json:"days"`
}

// Clone returns a deep copy of the template.
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	days := make([]DaySpec, len(t.Days))
	for i, d := range t.Days {
		d.Exercises = slices.Clone(d.Exercises)
		days[i] = d
	}
	t.Days = days
	return t
}
