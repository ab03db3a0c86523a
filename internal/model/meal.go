package model

import "slices"

// MealType names a meal table in the catalog.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snacks    MealType = "snacks"
)

// MealTypes lists the catalog meal tables in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snacks}

// Suitability tags carried by meal items.
const (
	TagVegan         = "vegan_friendly"
	TagKeto          = "keto_friendly"
	TagDiabetes      = "diabetes_friendly"
	TagHighProtein   = "high_protein"
	TagGlutenFreeAlt = "gluten_free_alt"
	TagBalanced      = "balanced"
	TagOmega3        = "omega3"
	TagHeartHealthy  = "heart_healthy"
	TagHighFiber     = "high_fiber"
	TagConvenient    = "convenient"
	TagQuick         = "quick"
	TagPortable      = "portable"
)

// MealItem is one entry of a meal table.
type MealItem struct {
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Ingredients []string `json:"ingredients"`
	SuitableFor []string `json:"suitableFor"`
	Time        string   `json:"time"`
}

// HasTag reports whether the item carries the given suitability tag.
func (m MealItem) HasTag(tag string) bool {
	return slices.Contains(m.SuitableFor, tag)
}

// Clone returns a deep copy of the item.
func (m MealItem) Clone() MealItem {
	m.Ingredients = slices.Clone(m.Ingredients)
	m.SuitableFor = slices.Clone(m.SuitableFor)
	return m
}
