package recipe

import (
	"strings"

	"github.com/receptkylen/backend/internal/recipesource"
)

// Keyword blocklists for the diet heuristic. Matching is by substring on
// purpose: it catches "chicken broth", "buttermilk" and the like. This is a
// coarse classification, not nutritional ground truth.
var (
	meatKeywords     = []string{"chicken", "beef", "pork", "bacon", "turkey", "ham", "lamb"}
	dairyEggKeywords = []string{"cheese", "egg", "milk", "butter", "yogurt", "cream", "honey"}
)

// Include decides whether a recipe passes the search criteria. All four
// predicates must pass.
func Include(detail *recipesource.Detail, c Criteria) bool {
	if c.MaxCalories != nil {
		if kcal := caloriesEntry(detail); kcal != nil && kcal.Amount > float64(*c.MaxCalories) {
			return false
		}
	}

	if c.MaxTimeMinutes != nil && detail.ReadyInMinutes > *c.MaxTimeMinutes {
		return false
	}

	if c.Difficulty != "" && DifficultyFor(detail.ReadyInMinutes) != c.Difficulty {
		return false
	}

	return matchesDiet(detail, c.Diet)
}

// matchesDiet applies the keyword blocklist for the selected diet. An absent
// or unrecognized diet always passes.
func matchesDiet(detail *recipesource.Detail, diet string) bool {
	var blocked []string
	switch diet {
	case "vegetarian":
		blocked = meatKeywords
	case "vegan":
		blocked = append(append([]string{}, meatKeywords...), dairyEggKeywords...)
	default:
		return true
	}

	title := strings.ToLower(detail.Title)
	ingredients := make([]string, 0, len(detail.ExtendedIngredients))
	for _, ing := range detail.ExtendedIngredients {
		ingredients = append(ingredients, strings.ToLower(ing.Name))
	}

	for _, word := range blocked {
		if strings.Contains(title, word) {
			return false
		}
		for _, ing := range ingredients {
			if strings.Contains(ing, word) {
				return false
			}
		}
	}
	return true
}

// caloriesEntry returns the first nutrient entry named "Calories", or nil.
func caloriesEntry(detail *recipesource.Detail) *recipesource.Nutrient {
	for i := range detail.Nutrition.Nutrients {
		if detail.Nutrition.Nutrients[i].Name == "Calories" {
			return &detail.Nutrition.Nutrients[i]
		}
	}
	return nil
}
