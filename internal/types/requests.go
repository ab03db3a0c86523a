package types

// NutritionEntry is a meal submitted for nutrition totals. Unknown fields,
// such as a full catalog item's ingredients, are ignored.
type NutritionEntry struct {
	Name     string  `json:"name,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// CalculateNutritionRequest is the body of POST /api/calculate-nutrition.
type CalculateNutritionRequest struct {
	Meals []NutritionEntry `json:"meals"`
}

// MealSearchQuery is the query of GET /api/meal-search.
type MealSearchQuery struct {
	Type        string `form:"type"`
	Restriction string `form:"restriction"`
}

// ExerciseQuery is the query of the exercise lookup endpoints.
type ExerciseQuery struct {
	Category string `form:"category"`
	Name     string `form:"name"`
}

// ShoppingListRequest is the body of POST /api/shopping-list. Only the meal
// ingredients of each day are read; any other plan field is ignored.
type ShoppingListRequest struct {
	Days map[string]ShoppingDay `json:"days"`
}

// ShoppingDay is the part of a submitted plan day a shopping list needs.
type ShoppingDay struct {
	Meals []ShoppingMeal `json:"meals"`
}

// ShoppingMeal is the part of a submitted meal a shopping list needs.
type ShoppingMeal struct {
	Ingredients []string `json:"ingredients"`
}
