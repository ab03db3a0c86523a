package catalog

import "github.com/pageza/vibe-fitness/backend/internal/model"

func defaultExercises() map[model.ExerciseCategory][]model.ExerciseItem {
	return map[model.ExerciseCategory][]model.ExerciseItem{
		model.Strength: {
			{
				Name:         "Bench Press",
				Category:     model.Strength,
				MuscleGroups: []string{"chest", "triceps", "shoulders"},
				Difficulty:   "intermediate",
				Sets:         4,
				Reps:         "6-8",
				Rest:         "3 mins",
				Equipment:    "barbell",
				Instructions: "Lie flat on bench, lower bar to chest, press up explosively",
				Alternatives: []string{"Dumbbell Press", "Machine Chest Press"},
			},
			{
				Name:         "Squats",
				Category:     model.Strength,
				MuscleGroups: []string{"quads", "glutes", "hamstrings"},
				Difficulty:   "intermediate",
				Sets:         4,
				Reps:         "6-8",
				Rest:         "3 mins",
				Equipment:    "barbell",
				Instructions: "Feet shoulder-width apart, lower hips back and down, drive through heels",
				Alternatives: []string{"Leg Press", "Goblet Squats"},
			},
			{
				Name:         "Deadlifts",
				Category:     model.Strength,
				MuscleGroups: []string{"back", "glutes", "hamstrings", "quads"},
				Difficulty:   "advanced",
				Sets:         3,
				Reps:         "5-6",
				Rest:         "3 mins",
				Equipment:    "barbell",
				Instructions: "Feet hip-width apart, grip shoulder-width, lift from hips then knees",
				Alternatives: []string{"Romanian Deadlifts", "Trap Bar Deadlifts"},
			},
			{
				Name:         "Barbell Rows",
				Category:     model.Strength,
				MuscleGroups: []string{"back", "biceps", "traps"},
				Difficulty:   "intermediate",
				Sets:         4,
				Reps:         "6-8",
				Rest:         "2 mins",
				Equipment:    "barbell",
				Instructions: "Hinge at hips, pull bar to lower chest, control descent",
				Alternatives: []string{"Dumbbell Rows", "Machine Rows"},
			},
			{
				Name:         "Overhead Press",
				Category:     model.Strength,
				MuscleGroups: []string{"shoulders", "triceps", "chest"},
				Difficulty:   "intermediate",
				Sets:         3,
				Reps:         "6-8",
				Rest:         "2 mins",
				Equipment:    "barbell",
				Instructions: "Press from shoulders to full extension overhead",
				Alternatives: []string{"Dumbbell Press", "Machine Press"},
			},
			{
				Name:         "Pull-ups",
				Category:     model.Strength,
				MuscleGroups: []string{"back", "biceps", "lats"},
				Difficulty:   "intermediate",
				Sets:         3,
				Reps:         "8-12",
				Rest:         "2 mins",
				Equipment:    "pull-up bar",
				Instructions: "Grip bar slightly wider than shoulder-width, pull until chin over bar",
				Alternatives: []string{"Assisted Pull-ups", "Lat Pulldown"},
			},
		},
		model.Cardio: {
			{
				Name:         "Running",
				Category:     model.Cardio,
				Intensity:    "variable",
				Duration:     "20-45 mins",
				CaloriesBurn: 400,
				Equipment:    "none",
				Instructions: "Maintain steady pace, breathe rhythmically",
				Variations:   []string{"HIIT", "Steady State", "Hill Sprints"},
			},
			{
				Name:         "Rowing Machine",
				Category:     model.Cardio,
				Intensity:    "high",
				Duration:     "20-30 mins",
				CaloriesBurn: 350,
				Equipment:    "rower",
				Instructions: "Drive through legs first, then lean back, pull arms",
				Variations:   []string{"Steady Pace", "Interval Training"},
			},
			{
				Name:         "Cycling",
				Category:     model.Cardio,
				Intensity:    "variable",
				Duration:     "30-60 mins",
				CaloriesBurn: 350,
				Equipment:    "bike",
				Instructions: "Maintain cadence of 80-100 RPM, adjust resistance as needed",
				Variations:   []string{"Steady State", "Sprints", "Climb Intervals"},
			},
			{
				Name:         "Jump Rope",
				Category:     model.Cardio,
				Intensity:    "high",
				Duration:     "15-20 mins",
				CaloriesBurn: 280,
				Equipment:    "jump rope",
				Instructions: "Keep hands at waist height, jump on balls of feet",
				Variations:   []string{"Single Leg", "Double Unders", "High Knees"},
			},
			{
				Name:         "Elliptical",
				Category:     model.Cardio,
				Intensity:    "moderate",
				Duration:     "25-40 mins",
				CaloriesBurn: 300,
				Equipment:    "elliptical",
				Instructions: "Maintain steady pace, use full range of motion",
				Variations:   []string{"Steady State", "Hill Climb", "Intervals"},
			},
		},
		model.Flexibility: {
			{
				Name:         "Yoga",
				Category:     model.Flexibility,
				Type:         "full-body",
				Duration:     "30-60 mins",
				Intensity:    "low",
				Benefits:     []string{"flexibility", "balance", "mental_clarity"},
				Instructions: "Follow instructor or flow, breathe deeply",
			},
			{
				Name:         "Dynamic Stretching",
				Category:     model.Flexibility,
				Type:         "mobility",
				Duration:     "10-15 mins",
				Intensity:    "low",
				Benefits:     []string{"flexibility", "mobility", "activation"},
				Instructions: "Perform controlled movements through full range of motion",
			},
			{
				Name:         "Foam Rolling",
				Category:     model.Flexibility,
				Type:         "recovery",
				Duration:     "10-20 mins",
				Intensity:    "low",
				Benefits:     []string{"recovery", "flexibility", "soreness_relief"},
				Instructions: "Roll slowly along muscle groups, focus on tight areas",
			},
		},
		model.Core: {
			{
				Name:         "Planks",
				Category:     model.Core,
				Sets:         3,
				Duration:     "30-60 seconds",
				Rest:         "60 seconds",
				Difficulty:   "beginner",
				Instructions: "Keep body straight line, engage core, breathe steadily",
			},
			{
				Name:         "Ab Wheel Rollouts",
				Category:     model.Core,
				Sets:         3,
				Reps:         "8-12",
				Rest:         "90 seconds",
				Difficulty:   "advanced",
				Instructions: "Roll forward slowly, engage core, return to start",
			},
			{
				Name:         "Hollow Body Holds",
				Category:     model.Core,
				Sets:         3,
				Duration:     "20-40 seconds",
				Rest:         "60 seconds",
				Difficulty:   "intermediate",
				Instructions: "Tuck chin, squeeze glutes, create hollow body position",
			},
		},
	}
}
