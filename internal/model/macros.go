package model

// Macros represents summed nutrition information for one or more meals.
type Macros struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// Add returns the sum of m and the macros of item.
func (m Macros) Add(item MealItem) Macros {
	return Macros{
		Protein:  m.Protein + item.Protein,
		Carbs:    m.Carbs + item.Carbs,
		Fats:     m.Fats + item.Fats,
		Calories: m.Calories + item.Calories,
	}
}

// MacroPercentages is the calorie-weighted share of each macronutrient.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}
