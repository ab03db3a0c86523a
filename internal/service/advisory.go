package service

import (
	"fmt"
	"slices"

	"github.com/pageza/vibe-fitness/backend/internal/types"
)

const (
	DefaultWeightKg      = 70
	DefaultActivityLevel = "moderate"

	// Millilitres of water per kg of body weight per day.
	waterPerKg = 35
)

var (
	bulkingTips = []string{
		"Eat 300-500 calories in surplus daily",
		"Prioritize protein (1.6-2.2g per kg body weight)",
		"Include calorie-dense foods like nuts, seeds, and oils",
		"Don't neglect vegetables for micronutrients",
		"Eat every 3-4 hours to maintain caloric surplus",
	}
	cuttingTips = []string{
		"Create a 300-500 calorie deficit daily",
		"Prioritize high-protein foods for satiety",
		"Load up on vegetables (low calorie, high volume)",
		"Stay hydrated to reduce false hunger signals",
		"Schedule cheat meals 1x per week for adherence",
	}
	maintenanceTips = []string{
		"Balance all three macronutrients",
		"Eat intuitively when hungry, stop when satisfied",
		"Include variety to ensure micronutrient coverage",
		"Practice mindful eating",
		"Adjust calories if body composition changes",
	}
)

var hydrationMultipliers = map[string]float64{
	"sedentary":   1.0,
	"light":       1.1,
	"moderate":    1.2,
	"active":      1.3,
	"very_active": 1.4,
}

var (
	hydrationSchedule = []string{
		"💧 Morning: 500ml with breakfast",
		"💧 Mid-morning: 250ml with snack",
		"💧 Lunch: 500ml",
		"💧 Afternoon: 250ml with snack",
		"💧 Dinner: 500ml",
		"💧 Evening: 250ml",
	}
	hydrationTips = []string{
		"Drink water before meals to aid digestion",
		"Add electrolytes on workout days",
		"Monitor urine color (should be light yellow)",
	}
)

var (
	baseSupplements = []types.Supplement{
		{Supplement: "Vitamin D", Dosage: "1000-2000 IU", Reason: "Essential for bone health and immunity"},
		{Supplement: "Omega-3 Fish Oil", Dosage: "1-2g EPA+DHA", Reason: "Anti-inflammatory, heart health"},
	}
	veganSupplements = []types.Supplement{
		{Supplement: "Vitamin B12", Dosage: "1000-2000 mcg weekly", Reason: "Not naturally found in plant-based foods"},
		{Supplement: "Iron", Dosage: "18mg", Reason: "Plant-based iron has lower bioavailability"},
	}
)

// PersonalizedTips returns the dietary tips for a goal.
func PersonalizedTips(goal string) []string {
	switch goal {
	case "bulking":
		return slices.Clone(bulkingTips)
	case "cutting":
		return slices.Clone(cuttingTips)
	default:
		return slices.Clone(maintenanceTips)
	}
}

// HydrationPlan scales the daily water target by body weight and activity.
// Unknown activity levels use the moderate multiplier.
func HydrationPlan(weightKg float64, activityLevel string) types.HydrationPlan {
	multiplier, ok := hydrationMultipliers[activityLevel]
	if !ok {
		multiplier = hydrationMultipliers[DefaultActivityLevel]
	}
	litres := weightKg * waterPerKg * multiplier / 1000

	return types.HydrationPlan{
		DailyTarget: fmt.Sprintf("%.1fL", litres),
		Schedule:    slices.Clone(hydrationSchedule),
		Tips:        slices.Clone(hydrationTips),
	}
}

// SupplementRecommendations always suggests the base supplements and adds
// the plant-based ones for vegans.
func SupplementRecommendations(restrictions []string) []types.Supplement {
	out := slices.Clone(baseSupplements)
	if (types.UserProfile{DietaryRestrictions: restrictions}).HasRestriction("vegan") {
		out = append(out, veganSupplements...)
	}
	return out
}

// TrainingFoodPairing returns the pre and post workout food suggestions.
func TrainingFoodPairing() types.TrainingFoodPairing {
	return types.TrainingFoodPairing{
		PreWorkout: []string{
			"30-60 min before: Banana with almond butter",
			"30-60 min before: Rice cakes with honey",
			"Choose easily digestible carbs + small protein",
		},
		PostWorkout: []string{
			"Within 30 min: Protein shake with fruit",
			"Within 2 hours: Full meal with protein + carbs",
			"Example: Chicken with rice and vegetables",
		},
		Timing: "These windows optimize recovery and performance",
	}
}

// AdvisoryService bundles the advisory generators behind an interface for
// the handlers.
type AdvisoryService struct{}

// NewAdvisoryService creates an AdvisoryService.
func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{}
}

// GenerateRecommendations builds every advisory section for the profile.
func (s *AdvisoryService) GenerateRecommendations(profile types.UserProfile) *types.Recommendations {
	activity := profile.ActivityLevel
	if activity == "" {
		activity = DefaultActivityLevel
	}
	return &types.Recommendations{
		PersonalizedTips:          PersonalizedTips(profile.GoalOr(DefaultDietGoal)),
		HydrationPlan:             HydrationPlan(profile.WeightOr(DefaultWeightKg), activity),
		SupplementRecommendations: SupplementRecommendations(profile.DietaryRestrictions),
		TrainingFoodPairing:       TrainingFoodPairing(),
	}
}
