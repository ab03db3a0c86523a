package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pageza/vibe-fitness/backend/internal/catalog"
	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

const (
	DefaultFitnessLevel = "beginner"
	DefaultWorkoutGoal  = "balanced"

	// programDuration covers the four two-week progression phases.
	programDuration = "8 weeks"

	defaultDayType     = "mixed"
	defaultDayDuration = "60 mins"
	scheduleNote       = "Focus on controlled movements. Rest 2-3 minutes between sets."
	consultProvider    = "Consult with a healthcare provider before starting this program."
)

// goalTemplates maps a non-beginner goal to its template. Unknown goals use
// intermediate strength.
var goalTemplates = map[string]string{
	"muscle_gain": catalog.IntermediateStrength,
	"bulk":        catalog.IntermediateStrength,
	"balanced":    catalog.IntermediateStrength,
	"strength":    catalog.IntermediateStrength,
	"fat_loss":    catalog.CardioEndurance,
	"cut":         catalog.CardioEndurance,
	"endurance":   catalog.CardioEndurance,
}

var conditionAdvice = map[string]string{
	"lower_back_pain": "Avoid heavy deadlifts and loaded spinal flexion. Focus on core strengthening. Consult a physical therapist.",
	"knee_problems":   "Modify squats to partial range of motion. Avoid deep lunges. Consider cycling over running.",
	"shoulder_injury": "Avoid heavy pressing movements. Focus on rotator cuff exercises. Use machines over free weights.",
	"diabetes":        "Stay well-hydrated, monitor energy levels, carry fast-acting carbs during training.",
	"hypertension":    "Avoid isometric holds, focus on moderate intensity, include more cardio.",
}

var baseRecoveryTips = []string{
	"Sleep 7-9 hours every night for optimal recovery",
	"Stay hydrated - drink at least 3-4 liters of water daily",
	"Eat protein with every meal to support muscle repair",
	"Take at least one full rest day per week",
	"Incorporate foam rolling and stretching 2-3 times weekly",
	"Manage stress through meditation or breathing exercises",
}

// WorkoutService assembles workout plans and answers exercise lookups.
type WorkoutService struct {
	catalog *catalog.Store
	now     func() time.Time
}

// NewWorkoutService creates a WorkoutService. A nil clock means time.Now.
func NewWorkoutService(store *catalog.Store, now func() time.Time) *WorkoutService {
	if now == nil {
		now = time.Now
	}
	return &WorkoutService{catalog: store, now: now}
}

// BuildWorkoutPlan picks a template for the profile and expands it into a
// weekly schedule with recovery and safety guidance.
func (s *WorkoutService) BuildWorkoutPlan(profile types.UserProfile) (*types.WorkoutPlan, error) {
	level := profile.FitnessExperience
	if level == "" {
		level = DefaultFitnessLevel
	}
	goal := profile.GoalOr(DefaultWorkoutGoal)

	key := SelectTemplate(level, goal)
	template, ok := s.catalog.Template(key)
	if !ok {
		return nil, fmt.Errorf("%w: template %s", ErrEmptyCatalog, key)
	}

	return &types.WorkoutPlan{
		FitnessLevel:          level,
		Goal:                  goal,
		Template:              key,
		Duration:              programDuration,
		TemplateWeeks:         template.Weeks,
		Frequency:             template.Frequency,
		DurationPerSession:    template.DurationPerSession,
		Focus:                 template.Focus,
		WeeklySchedule:        BuildSchedule(template),
		RecoveryTips:          RecoveryTips(goal, level),
		WarmUpCooldown:        WarmUpCooldown(),
		ProgressionStrategy:   ProgressionStrategy(),
		MedicalConsiderations: MedicalConsiderations(profile.MedicalConditions),
		GeneratedAt:           s.now().Format(time.RFC3339),
	}, nil
}

// SelectTemplate returns the template key for a fitness level and goal.
// Beginners always get the beginner template.
func SelectTemplate(level, goal string) string {
	if level == DefaultFitnessLevel {
		return catalog.BeginnerStrength
	}
	if key, ok := goalTemplates[goal]; ok {
		return key
	}
	return catalog.IntermediateStrength
}

// BuildSchedule expands the template days in order.
func BuildSchedule(template model.WorkoutTemplate) types.Schedule {
	schedule := make(types.Schedule, 0, len(template.Days))
	for _, day := range template.Days {
		sd := types.ScheduledDay{
			Weekday:   day.Weekday,
			Name:      day.Name,
			Type:      day.Type,
			Duration:  day.Duration,
			Exercises: slices.Clone(day.Exercises),
			Notes:     scheduleNote,
		}
		if sd.Name == "" {
			sd.Name = day.Weekday
		}
		if sd.Type == "" {
			sd.Type = defaultDayType
		}
		if sd.Duration == "" {
			sd.Duration = defaultDayDuration
		}
		if sd.Exercises == nil {
			sd.Exercises = []model.TemplateExercise{}
		}
		schedule = append(schedule, sd)
	}
	return schedule
}

// RecoveryTips adds goal and beginner specific advice to the base tips.
func RecoveryTips(goal, level string) []string {
	tips := slices.Clone(baseRecoveryTips)
	switch goal {
	case "muscle_gain", "bulk":
		tips = append(tips,
			"Consume calories in surplus (300-500 above maintenance)",
			"Prioritize compound lifts for maximum muscle growth")
	case "fat_loss", "cut":
		tips = append(tips,
			"Maintain a moderate calorie deficit (300-500 below maintenance)",
			"Include both strength and cardio for best results")
	}
	if level == DefaultFitnessLevel {
		tips = append(tips,
			"Focus on form over weight - quality over quantity",
			"Don't progress weight too quickly")
	}
	return tips
}

// WarmUpCooldown returns the fixed warm-up and cool-down routines.
func WarmUpCooldown() types.WarmUpCooldown {
	return types.WarmUpCooldown{
		WarmUp: types.Routine{
			Duration: "5-10 minutes",
			Exercises: []string{
				"5 minutes light cardio (walking/light jog)",
				"5-10 reps of dynamic stretches",
				"General movement prep (arm circles, leg swings)",
				"2-3 light sets with target weight",
			},
		},
		CoolDown: types.Routine{
			Duration: "5-10 minutes",
			Exercises: []string{
				"3-5 minutes easy walking",
				"Static stretching of worked muscles (30 seconds each)",
				"Deep breathing exercises",
				"Foam rolling if available (1-2 minutes)",
			},
		},
	}
}

// ProgressionStrategy returns the two-week phases of the program.
func ProgressionStrategy() types.ProgressionStrategy {
	return types.ProgressionStrategy{
		Week1To2: "Focus on form and establishing baseline",
		Week3To4: "Increase weight by 5-10% or add 1-2 reps",
		Week5To6: "Deload week - reduce volume by 40%, maintain intensity",
		Week7To8: "Final push - attempt new PRs or add extra volume",
		Tips: []string{
			"Track your workouts in a notebook or app",
			"Aim for progressive overload each week",
			"If you can't maintain form, reduce weight",
			"Listen to your body and adjust as needed",
		},
	}
}

// MedicalConsiderations returns training advice for each known condition,
// in the order given. With no known condition it returns a single
// consult-a-provider line.
func MedicalConsiderations(conditions []string) []string {
	var out []string
	for _, c := range conditions {
		if advice, ok := conditionAdvice[strings.ToLower(strings.TrimSpace(c))]; ok {
			out = append(out, advice)
		}
	}
	if len(out) == 0 {
		return []string{consultProvider}
	}
	return out
}

// GetExerciseAlternatives looks an exercise up by name, ignoring case, and
// returns its alternatives. Unknown exercises have none.
func (s *WorkoutService) GetExerciseAlternatives(name string) []string {
	for _, category := range s.catalog.ExerciseCategories() {
		items, _ := s.catalog.Exercises(category)
		for _, ex := range items {
			if strings.EqualFold(ex.Name, strings.TrimSpace(name)) {
				if ex.Alternatives == nil {
					return []string{}
				}
				return ex.Alternatives
			}
		}
	}
	return []string{}
}

// Exercises lists the exercises of a category.
func (s *WorkoutService) Exercises(category string) ([]model.ExerciseItem, error) {
	items, ok := s.catalog.Exercises(model.ExerciseCategory(strings.ToLower(category)))
	if !ok {
		return nil, apperrors.Validation("Invalid exercise category: %s", category).
			WithExtra("valid_categories", s.categoryNames())
	}
	return items, nil
}

func (s *WorkoutService) categoryNames() []string {
	cats := s.catalog.ExerciseCategories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// Templates lists the workout template keys.
func (s *WorkoutService) Templates() []string {
	return s.catalog.TemplateKeys()
}
