package types

import (
	"encoding/json"

	"github.com/pageza/vibe-fitness/backend/internal/model"
)

// PlannedMeal is a catalog meal chosen for a slot of the day. The item's
// fields are flattened next to the slot name when encoded.
type PlannedMeal struct {
	Slot string `json:"type"`
	model.MealItem
}

// DayPlan is one day of a diet plan.
type DayPlan struct {
	Key              string                 `json:"-"`
	Date             string                 `json:"date"`
	Meals            []PlannedMeal          `json:"meals"`
	TotalCalories    float64                `json:"totalCalories"`
	Macros           model.Macros           `json:"macros"`
	MacroPercentages model.MacroPercentages `json:"macroPercentages"`
}

// DayPlans encodes as a JSON object keyed by DayPlan.Key, in slice order.
type DayPlans []DayPlan

func (d DayPlans) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(d),
		func(i int) string { return d[i].Key },
		func(i int) interface{} { return d[i] })
}

func (d *DayPlans) UnmarshalJSON(data []byte) error {
	var out DayPlans
	err := unmarshalOrdered(data, func(key string, dec *json.Decoder) error {
		var day DayPlan
		if err := dec.Decode(&day); err != nil {
			return err
		}
		day.Key = key
		out = append(out, day)
		return nil
	})
	if err != nil {
		return err
	}
	*d = out
	return nil
}

// DietPlan is a generated multi-day meal plan.
type DietPlan struct {
	GeneratedAt           string   `json:"generatedAt"`
	Duration              string   `json:"duration"`
	TargetCalories        float64  `json:"targetCalories"`
	Goal                  string   `json:"goal"`
	MedicalConsiderations []string `json:"medicalConsiderations"`
	DietaryNotes          []string `json:"dietaryNotes"`
	Days                  DayPlans `json:"days"`
	ShoppingList          []string `json:"shoppingList"`
	MealPrepTips          []string `json:"mealPrepTips"`
}

// ScheduledDay is one training day of a workout plan.
type ScheduledDay struct {
	Weekday   string                   `json:"-"`
	Name      string                   `json:"name"`
	Type      string                   `json:"type"`
	Duration  string                   `json:"duration"`
	Exercises []model.TemplateExercise `json:"exercises"`
	Notes     string                   `json:"notes"`
}

// Schedule encodes as a JSON object keyed by weekday, in template order.
type Schedule []ScheduledDay

func (s Schedule) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(s),
		func(i int) string { return s[i].Weekday },
		func(i int) interface{} { return s[i] })
}

// Routine is a warm-up or cool-down block.
type Routine struct {
	Duration  string   `json:"duration"`
	Exercises []string `json:"exercises"`
}

type WarmUpCooldown struct {
	WarmUp   Routine `json:"warmUp"`
	CoolDown Routine `json:"coolDown"`
}

type ProgressionStrategy struct {
	Week1To2 string   `json:"week1to2"`
	Week3To4 string   `json:"week3to4"`
	Week5To6 string   `json:"week5to6"`
	Week7To8 string   `json:"week7to8"`
	Tips     []string `json:"tips"`
}

// WorkoutPlan is a generated weekly training plan.
type WorkoutPlan struct {
	FitnessLevel          string              `json:"fitnessLevel"`
	Goal                  string              `json:"goal"`
	Template              string              `json:"template"`
	Duration              string              `json:"duration"`
	TemplateWeeks         int                 `json:"templateWeeks"`
	Frequency             int                 `json:"frequency"`
	DurationPerSession    string              `json:"durationPerSession"`
	Focus                 string              `json:"focus"`
	WeeklySchedule        Schedule            `json:"weeklySchedule"`
	RecoveryTips          []string            `json:"recoveryTips"`
	WarmUpCooldown        WarmUpCooldown      `json:"warmUpCooldown"`
	ProgressionStrategy   ProgressionStrategy `json:"progressionStrategy"`
	MedicalConsiderations []string            `json:"medicalConsiderations"`
	GeneratedAt           string              `json:"generatedAt"`
}

type HydrationPlan struct {
	DailyTarget string   `json:"dailyTarget"`
	Schedule    []string `json:"schedule"`
	Tips        []string `json:"tips"`
}

type Supplement struct {
	Supplement string `json:"supplement"`
	Dosage     string `json:"dosage"`
	Reason     string `json:"reason"`
}

type TrainingFoodPairing struct {
	PreWorkout  []string `json:"preWorkout"`
	PostWorkout []string `json:"postWorkout"`
	Timing      string   `json:"timing"`
}

// Recommendations bundles the advisory outputs for a profile.
type Recommendations struct {
	PersonalizedTips          []string            `json:"personalizedTips"`
	HydrationPlan             HydrationPlan       `json:"hydrationPlan"`
	SupplementRecommendations []Supplement        `json:"supplementRecommendations"`
	TrainingFoodPairing       TrainingFoodPairing `json:"trainingFoodPairing"`
}

// MacroRatios is the share of calories assigned to each macronutrient.
type MacroRatios struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// MacroTargets is the daily energy and macro budget derived from a profile.
type MacroTargets struct {
	BMR      int         `json:"bmr"`
	TDEE     int         `json:"tdee"`
	Calories int         `json:"calories"`
	Protein  int         `json:"protein"`
	Carbs    int         `json:"carbs"`
	Fats     int         `json:"fats"`
	Ratios   MacroRatios `json:"ratios"`
}

// ShoppingCategory is one bucket of a categorized shopping list.
type ShoppingCategory struct {
	Name  string
	Items []string
}

// CategorizedList encodes as a JSON object keyed by category name, in
// category order.
type CategorizedList []ShoppingCategory

func (c CategorizedList) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(c),
		func(i int) string { return c[i].Name },
		func(i int) interface{} { return c[i].Items })
}

// Get returns the items of the named category.
func (c CategorizedList) Get(name string) []string {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Items
		}
	}
	return nil
}
