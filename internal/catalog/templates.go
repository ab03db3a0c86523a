package catalog

import "github.com/pageza/vibe-fitness/backend/internal/model"

func defaultTemplates() map[string]model.WorkoutTemplate {
	return map[string]model.WorkoutTemplate{
		BeginnerStrength: {
			Key:                BeginnerStrength,
			Weeks:              4,
			Frequency:          3,
			DurationPerSession: "45-60 mins",
			Focus:              "Build foundational strength and confidence",
			Days: []model.DaySpec{
				{
					Weekday: "Monday",
					Name:    "Upper Body",
					Exercises: []model.TemplateExercise{
						{Name: "Bench Press", Sets: 3, Reps: "8-10"},
						{Name: "Barbell Rows", Sets: 3, Reps: "8-10"},
						{Name: "Overhead Press", Sets: 2, Reps: "8-10"},
					},
				},
				{
					Weekday: "Wednesday",
					Name:    "Lower Body",
					Exercises: []model.TemplateExercise{
						{Name: "Squats", Sets: 3, Reps: "8-10"},
						{Name: "Leg Press", Sets: 3, Reps: "10-12"},
					},
				},
				{
					Weekday: "Friday",
					Name:    "Full Body",
					Exercises: []model.TemplateExercise{
						{Name: "Deadlifts", Sets: 2, Reps: "5-6"},
						{Name: "Pull-ups", Sets: 3, Reps: "5-8"},
						{Name: "Planks", Sets: 3, Duration: "30-45 secs"},
					},
				},
			},
		},
		IntermediateStrength: {
			Key:                IntermediateStrength,
			Weeks:              6,
			Frequency:          4,
			DurationPerSession: "60-75 mins",
			Focus:              "Build muscle and increase strength",
			Days: []model.DaySpec{
				{
					Weekday: "Monday",
					Name:    "Chest & Triceps",
					Exercises: []model.TemplateExercise{
						{Name: "Bench Press", Sets: 4, Reps: "6-8"},
						{Name: "Overhead Press", Sets: 3, Reps: "8-10"},
					},
				},
				{
					Weekday: "Tuesday",
					Name:    "Back & Biceps",
					Exercises: []model.TemplateExercise{
						{Name: "Barbell Rows", Sets: 4, Reps: "6-8"},
						{Name: "Pull-ups", Sets: 3, Reps: "8-12"},
					},
				},
				{
					Weekday: "Thursday",
					Name:    "Legs",
					Exercises: []model.TemplateExercise{
						{Name: "Squats", Sets: 4, Reps: "6-8"},
						{Name: "Deadlifts", Sets: 3, Reps: "5-6"},
					},
				},
				{
					Weekday: "Saturday",
					Name:    "Accessory & Core",
					Exercises: []model.TemplateExercise{
						{Name: "Ab Wheel Rollouts", Sets: 3, Reps: "8-12"},
						{Name: "Planks", Sets: 3, Duration: "45-60 secs"},
					},
				},
			},
		},
		CardioEndurance: {
			Key:                CardioEndurance,
			Weeks:              8,
			Frequency:          4,
			DurationPerSession: "30-45 mins",
			Focus:              "Build cardiovascular endurance and fat loss",
			Days: []model.DaySpec{
				{
					Weekday: "Monday",
					Name:    "Steady State Cardio",
					Exercises: []model.TemplateExercise{
						{Name: "Running", Duration: "30 mins", Intensity: "steady"},
					},
				},
				{
					Weekday: "Tuesday",
					Name:    "Strength & Core",
					Exercises: []model.TemplateExercise{
						{Name: "Squats", Sets: 3, Reps: "10-12"},
						{Name: "Planks", Sets: 3, Duration: "45 secs"},
					},
				},
				{
					Weekday: "Thursday",
					Name:    "HIIT Training",
					Exercises: []model.TemplateExercise{
						{Name: "Jump Rope", Sets: 8, Duration: "30 secs on, 30 secs off"},
					},
				},
				{
					Weekday: "Saturday",
					Name:    "Recovery & Flexibility",
					Exercises: []model.TemplateExercise{
						{Name: "Yoga", Duration: "45-60 mins"},
					},
				},
			},
		},
	}
}
