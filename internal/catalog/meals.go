package catalog

import "github.com/pageza/vibe-fitness/backend/internal/model"

func defaultMeals() map[model.MealType][]model.MealItem {
	return map[model.MealType][]model.MealItem{
		model.Breakfast: {
			{
				Name:        "Oatmeal with Berries",
				Calories:    350,
				Protein:     12,
				Carbs:       55,
				Fats:        8,
				Ingredients: []string{"oats", "berries", "milk", "honey"},
				SuitableFor: []string{model.TagVegan, model.TagGlutenFreeAlt},
				Time:        "15 mins",
			},
			{
				Name:        "Scrambled Eggs with Whole Wheat Toast",
				Calories:    380,
				Protein:     18,
				Carbs:       42,
				Fats:        14,
				Ingredients: []string{"eggs", "whole wheat bread", "butter", "spinach"},
				SuitableFor: []string{model.TagKeto},
				Time:        "10 mins",
			},
			{
				Name:        "Greek Yogurt Parfait",
				Calories:    320,
				Protein:     20,
				Carbs:       45,
				Fats:        6,
				Ingredients: []string{"greek yogurt", "granola", "berries", "honey"},
				SuitableFor: []string{model.TagHighProtein},
				Time:        "5 mins",
			},
			{
				Name:        "Smoothie Bowl",
				Calories:    340,
				Protein:     15,
				Carbs:       58,
				Fats:        5,
				Ingredients: []string{"banana", "berries", "protein powder", "almond milk"},
				SuitableFor: []string{model.TagVegan, model.TagHighProtein},
				Time:        "8 mins",
			},
			{
				Name:        "Avocado Toast",
				Calories:    380,
				Protein:     14,
				Carbs:       45,
				Fats:        16,
				Ingredients: []string{"whole grain bread", "avocado", "egg", "tomato"},
				SuitableFor: []string{model.TagVegan},
				Time:        "10 mins",
			},
		},
		model.Lunch: {
			{
				Name:        "Grilled Chicken Salad",
				Calories:    450,
				Protein:     42,
				Carbs:       25,
				Fats:        18,
				Ingredients: []string{"chicken breast", "mixed greens", "olive oil", "vegetables"},
				SuitableFor: []string{model.TagKeto, model.TagHighProtein},
				Time:        "25 mins",
			},
			{
				Name:        "Quinoa Buddha Bowl",
				Calories:    420,
				Protein:     16,
				Carbs:       52,
				Fats:        14,
				Ingredients: []string{"quinoa", "chickpeas", "vegetables", "tahini"},
				SuitableFor: []string{model.TagVegan, model.TagBalanced},
				Time:        "25 mins",
			},
			{
				Name:        "Salmon with Brown Rice",
				Calories:    480,
				Protein:     38,
				Carbs:       48,
				Fats:        14,
				Ingredients: []string{"salmon fillet", "brown rice", "broccoli", "olive oil"},
				SuitableFor: []string{model.TagHighProtein, model.TagOmega3},
				Time:        "30 mins",
			},
			{
				Name:        "Vegan Lentil Curry",
				Calories:    410,
				Protein:     18,
				Carbs:       55,
				Fats:        10,
				Ingredients: []string{"red lentils", "coconut milk", "spices", "rice"},
				SuitableFor: []string{model.TagVegan, model.TagDiabetes},
				Time:        "35 mins",
			},
			{
				Name:        "Turkey Sandwich",
				Calories:    380,
				Protein:     28,
				Carbs:       38,
				Fats:        12,
				Ingredients: []string{"turkey", "whole wheat bread", "vegetables", "mustard"},
				SuitableFor: []string{model.TagBalanced, model.TagGlutenFreeAlt},
				Time:        "10 mins",
			},
		},
		model.Dinner: {
			{
				Name:        "Grilled Fish with Vegetables",
				Calories:    420,
				Protein:     40,
				Carbs:       30,
				Fats:        14,
				Ingredients: []string{"white fish", "asparagus", "olive oil", "lemon"},
				SuitableFor: []string{model.TagKeto, model.TagHeartHealthy},
				Time:        "25 mins",
			},
			{
				Name:        "Plant-Based Protein Bowl",
				Calories:    400,
				Protein:     22,
				Carbs:       48,
				Fats:        12,
				Ingredients: []string{"tempeh", "sweet potato", "kale", "tahini"},
				SuitableFor: []string{model.TagVegan, model.TagHighProtein},
				Time:        "30 mins",
			},
			{
				Name:        "Lean Beef Stir-Fry",
				Calories:    440,
				Protein:     36,
				Carbs:       42,
				Fats:        14,
				Ingredients: []string{"lean beef", "mixed vegetables", "brown rice", "soy sauce"},
				SuitableFor: []string{model.TagBalanced, model.TagHighProtein},
				Time:        "25 mins",
			},
			{
				Name:        "Stuffed Bell Pepper",
				Calories:    380,
				Protein:     24,
				Carbs:       38,
				Fats:        12,
				Ingredients: []string{"bell pepper", "ground turkey", "quinoa", "cheese"},
				SuitableFor: []string{model.TagBalanced, model.TagDiabetes},
				Time:        "35 mins",
			},
			{
				Name:        "Chickpea Pasta Primavera",
				Calories:    420,
				Protein:     16,
				Carbs:       55,
				Fats:        12,
				Ingredients: []string{"whole wheat pasta", "chickpeas", "seasonal vegetables", "olive oil"},
				SuitableFor: []string{model.TagVegan, model.TagHighFiber},
				Time:        "20 mins",
			},
		},
		model.Snacks: {
			{
				Name:        "Protein Bar",
				Calories:    200,
				Protein:     20,
				Carbs:       20,
				Fats:        6,
				Ingredients: []string{"whey protein", "oats", "nuts"},
				SuitableFor: []string{model.TagHighProtein, model.TagConvenient},
				Time:        "0 mins",
			},
			{
				Name:        "Greek Yogurt with Nuts",
				Calories:    180,
				Protein:     15,
				Carbs:       12,
				Fats:        8,
				Ingredients: []string{"greek yogurt", "almonds", "honey"},
				SuitableFor: []string{model.TagHighProtein, model.TagQuick},
				Time:        "2 mins",
			},
			{
				Name:        "Apple with Almond Butter",
				Calories:    200,
				Protein:     8,
				Carbs:       25,
				Fats:        9,
				Ingredients: []string{"apple", "almond butter"},
				SuitableFor: []string{model.TagVegan, model.TagPortable},
				Time:        "2 mins",
			},
			{
				Name:        "Mixed Nuts Trail Mix",
				Calories:    220,
				Protein:     7,
				Carbs:       20,
				Fats:        14,
				Ingredients: []string{"almonds", "cashews", "dried berries", "dark chocolate"},
				SuitableFor: []string{model.TagKeto, model.TagPortable},
				Time:        "0 mins",
			},
		},
	}
}

func defaultSwaps() map[string]string {
	return map[string]string{
		"milk":    "almond milk",
		"chicken": "tofu",
		"bread":   "gluten-free bread",
		"pasta":   "chickpea pasta",
		"rice":    "cauliflower rice",
		"butter":  "coconut oil",
		"eggs":    "flax eggs",
		"cheese":  "nutritional yeast",
	}
}
