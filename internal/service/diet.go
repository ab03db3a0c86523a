package service

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pageza/vibe-fitness/backend/internal/catalog"
	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/model"
	"github.com/pageza/vibe-fitness/backend/internal/types"
)

const (
	DefaultTargetCalories = 2000
	DefaultDietGoal       = "maintenance"

	// Items above this many grams of carbs are excluded for diabetic
	// profiles unless tagged diabetes friendly.
	diabeticCarbLimit = 50

	dayDateLayout = "Monday, January 02"
)

// ErrEmptyCatalog is returned when a table the assembler needs has no items.
var ErrEmptyCatalog = errors.New("catalog table is empty")

type mealSlot struct {
	Name  string
	Table model.MealType
	Share float64
}

// mealSlots are filled in this order every day.
var mealSlots = []mealSlot{
	{Name: "breakfast", Table: model.Breakfast, Share: 0.25},
	{Name: "lunch", Table: model.Lunch, Share: 0.35},
	{Name: "snack", Table: model.Snacks, Share: 0.10},
	{Name: "dinner", Table: model.Dinner, Share: 0.30},
}

var medicalNotes = []struct {
	Condition string
	Note      string
}{
	{"Diabetes", "⚠️ Diabetes: Focus on complex carbs and fiber to manage blood sugar"},
	{"Hypertension", "⚠️ Hypertension: Reduced sodium, increased potassium from vegetables"},
	{"Heart Disease", "⚠️ Heart Disease: Lean proteins, healthy fats, reduced saturated fats"},
	{"Arthritis", "⚠️ Arthritis: Anti-inflammatory foods, omega-3 rich options"},
}

var baseMealPrepTips = []string{
	"🥗 Prep vegetables on Sunday for the week",
	"🍗 Cook proteins in bulk and portion into containers",
	"❄️ Use freezer for pre-portioned meals",
	"📦 Invest in glass containers for meal storage",
	"⏰ Set reminders for snack times to stay on track",
}

// shoppingCategories are matched in order; the first keyword hit wins.
var shoppingCategories = []struct {
	Name     string
	Keywords []string
}{
	{"Proteins", []string{"chicken", "beef", "fish", "turkey", "eggs", "tofu", "tempeh"}},
	{"Grains", []string{"rice", "oats", "bread", "pasta", "quinoa"}},
	{"Vegetables", []string{"broccoli", "asparagus", "kale", "spinach", "bell pepper", "tomato"}},
	{"Fruits", []string{"apple", "banana", "berries", "avocado"}},
	{"Dairy", []string{"milk", "yogurt", "cheese"}},
}

const otherCategory = "Other"

// DietService assembles meal plans from the catalog.
type DietService struct {
	catalog *catalog.Store
	now     func() time.Time
}

// NewDietService creates a DietService. A nil clock means time.Now.
func NewDietService(store *catalog.Store, now func() time.Time) *DietService {
	if now == nil {
		now = time.Now
	}
	return &DietService{catalog: store, now: now}
}

// BuildMealPlan builds a numDays meal plan for the profile.
func (s *DietService) BuildMealPlan(profile types.UserProfile, numDays int) (*types.DietPlan, error) {
	if numDays <= 0 {
		return nil, apperrors.Validation("number of days must be positive, got %d", numDays)
	}

	now := s.now()
	goal := profile.GoalOr(DefaultDietGoal)
	target := profile.TargetCaloriesOr(DefaultTargetCalories)
	exclusions := mealExclusions(profile)

	tables := make(map[model.MealType][]model.MealItem, len(mealSlots))
	for _, slot := range mealSlots {
		items, _ := s.catalog.Meals(slot.Table)
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, slot.Table)
		}
		tables[slot.Table] = items
	}

	plan := &types.DietPlan{
		GeneratedAt:           now.Format(time.RFC3339),
		Duration:              fmt.Sprintf("%d days", numDays),
		TargetCalories:        target,
		Goal:                  goal,
		MedicalConsiderations: MedicalNotes(profile.MedicalConditions),
		DietaryNotes:          nonNil(profile.DietaryRestrictions),
		Days:                  make(types.DayPlans, 0, numDays),
	}

	for day := 0; day < numDays; day++ {
		meals := make([]types.PlannedMeal, 0, len(mealSlots))
		items := make([]model.MealItem, 0, len(mealSlots))
		for _, slot := range mealSlots {
			item, _ := Select(tables[slot.Table], target*slot.Share, mealCalories, exclusions...)
			meals = append(meals, types.PlannedMeal{Slot: slot.Name, MealItem: item})
			items = append(items, item)
		}

		totals := SumMacros(items)
		plan.Days = append(plan.Days, types.DayPlan{
			Key:              "day_" + strconv.Itoa(day+1),
			Date:             now.AddDate(0, 0, day).Format(dayDateLayout),
			Meals:            meals,
			TotalCalories:    totals.Calories,
			Macros:           totals,
			MacroPercentages: CalculateMacroPercentages(totals),
		})
	}

	plan.ShoppingList = BuildShoppingList(plan)
	plan.MealPrepTips = MealPrepTips(goal)
	return plan, nil
}

func mealCalories(m model.MealItem) float64 { return m.Calories }

func lacksTag(tag string) Predicate[model.MealItem] {
	return func(m model.MealItem) bool { return !m.HasTag(tag) }
}

// mealExclusions turns the profile's restrictions and conditions into
// selector predicates. The diabetes rule only drops high-carb items that
// are not tagged diabetes friendly.
func mealExclusions(profile types.UserProfile) []Predicate[model.MealItem] {
	var out []Predicate[model.MealItem]
	if profile.HasRestriction("vegan") {
		out = append(out, lacksTag(model.TagVegan))
	}
	if profile.HasRestriction("keto") {
		out = append(out, lacksTag(model.TagKeto))
	}
	if profile.HasCondition("diabetes") {
		out = append(out, func(m model.MealItem) bool {
			return !m.HasTag(model.TagDiabetes) && m.Carbs > diabeticCarbLimit
		})
	}
	return out
}

// SumMacros totals the macros of the given items.
func SumMacros(items []model.MealItem) model.Macros {
	var total model.Macros
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}

// CalculateMacroPercentages converts macro grams to their share of total
// calories, rounded to one decimal. All shares are zero when there are no
// calories.
func CalculateMacroPercentages(totals model.Macros) model.MacroPercentages {
	if totals.Calories <= 0 {
		return model.MacroPercentages{}
	}
	return model.MacroPercentages{
		Protein: round1(totals.Protein * 4 / totals.Calories * 100),
		Carbs:   round1(totals.Carbs * 4 / totals.Calories * 100),
		Fats:    round1(totals.Fats * 9 / totals.Calories * 100),
	}
}

// round1 rounds to one decimal the way a decimal formatter does.
func round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// BuildShoppingList returns every ingredient of the plan once, sorted.
func BuildShoppingList(plan *types.DietPlan) []string {
	if plan == nil {
		return []string{}
	}
	var lists [][]string
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			lists = append(lists, meal.Ingredients)
		}
	}
	return uniqueSorted(lists)
}

// ShoppingListFor is BuildShoppingList over a submitted plan, which only
// carries the ingredients of each meal.
func ShoppingListFor(req *types.ShoppingListRequest) []string {
	if req == nil {
		return []string{}
	}
	var lists [][]string
	for _, day := range req.Days {
		for _, meal := range day.Meals {
			lists = append(lists, meal.Ingredients)
		}
	}
	return uniqueSorted(lists)
}

func uniqueSorted(lists [][]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	slices.Sort(out)
	return out
}

// CategorizeShoppingList buckets items by keyword. Every category is
// present in the result, possibly empty.
func CategorizeShoppingList(items []string) types.CategorizedList {
	out := make(types.CategorizedList, 0, len(shoppingCategories)+1)
	for _, c := range shoppingCategories {
		out = append(out, types.ShoppingCategory{Name: c.Name, Items: []string{}})
	}
	out = append(out, types.ShoppingCategory{Name: otherCategory, Items: []string{}})

	for _, item := range items {
		idx := categoryIndex(item)
		out[idx].Items = append(out[idx].Items, item)
	}
	return out
}

func categoryIndex(item string) int {
	lower := strings.ToLower(item)
	for i, c := range shoppingCategories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return len(shoppingCategories)
}

// MedicalNotes returns the dietary advisory for each listed condition.
func MedicalNotes(conditions []string) []string {
	profile := types.UserProfile{MedicalConditions: conditions}
	notes := []string{}
	for _, n := range medicalNotes {
		if profile.HasCondition(n.Condition) {
			notes = append(notes, n.Note)
		}
	}
	return notes
}

// MealPrepTips returns the prep tips for a goal.
func MealPrepTips(goal string) []string {
	tips := slices.Clone(baseMealPrepTips)
	switch goal {
	case "bulking":
		tips = append(tips, "💪 Include calorie-dense snacks between meals")
	case "cutting":
		tips = append(tips, "🔥 Prep low-calorie, high-volume options")
	}
	return tips
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// SearchMeals lists the items of a meal table, optionally keeping only
// those carrying the restriction tag.
func (s *DietService) SearchMeals(mealType, restriction string) ([]model.MealItem, error) {
	items, ok := s.catalog.Meals(model.MealType(mealType))
	if !ok {
		mealTypes := s.catalog.MealTypes()
		valid := make([]string, len(mealTypes))
		for i, t := range mealTypes {
			valid[i] = string(t)
		}
		return nil, apperrors.Validation("Invalid meal type").WithExtra("valid_types", valid)
	}
	if restriction == "" {
		return items, nil
	}
	out := []model.MealItem{}
	for _, item := range items {
		if item.HasTag(restriction) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Swaps returns the dietary substitution table.
func (s *DietService) Swaps() map[string]string {
	return s.catalog.Swaps()
}
