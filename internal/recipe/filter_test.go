package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/receptkylen/backend/internal/recipesource"
)

func detailWith(title string, minutes int, ingredients ...string) *recipesource.Detail {
	d := &recipesource.Detail{
		Title:          title,
		ReadyInMinutes: minutes,
	}
	for _, name := range ingredients {
		d.ExtendedIngredients = append(d.ExtendedIngredients, recipesource.Ingredient{Name: name})
	}
	return d
}

func withCalories(d *recipesource.Detail, amount float64) *recipesource.Detail {
	d.Nutrition.Nutrients = append(d.Nutrition.Nutrients, recipesource.Nutrient{
		Name: "Calories", Amount: amount, Unit: "kcal",
	})
	return d
}

func TestIncludeNoCriteriaPassesEverything(t *testing.T) {
	d := detailWith("Beef Wellington", 120, "beef", "butter")
	assert.True(t, Include(d, Criteria{}))
}

func TestCaloriePredicate(t *testing.T) {
	max := 500

	over := withCalories(detailWith("Pasta", 20), 650)
	under := withCalories(detailWith("Salad", 10), 120)

	assert.False(t, Include(over, Criteria{MaxCalories: &max}))
	assert.True(t, Include(under, Criteria{MaxCalories: &max}))
}

func TestCaloriePredicateMissingDataPasses(t *testing.T) {
	// Missing data is not failing data.
	max := 100
	d := detailWith("Mystery Stew", 20)
	assert.True(t, Include(d, Criteria{MaxCalories: &max}))
}

func TestTimePredicate(t *testing.T) {
	max := 30
	assert.True(t, Include(detailWith("Quick Soup", 30), Criteria{MaxTimeMinutes: &max}))
	assert.False(t, Include(detailWith("Slow Roast", 31), Criteria{MaxTimeMinutes: &max}))
}

func TestDifficultyPredicate(t *testing.T) {
	assert.True(t, Include(detailWith("Toast", 10), Criteria{Difficulty: DifficultyEasy}))
	assert.False(t, Include(detailWith("Toast", 10), Criteria{Difficulty: DifficultyHard}))
	assert.True(t, Include(detailWith("Stew", 45), Criteria{Difficulty: DifficultyMid}))
	assert.True(t, Include(detailWith("Brisket", 60), Criteria{Difficulty: DifficultyHard}))
}

func TestVegetarianRejectsMeatKeywords(t *testing.T) {
	c := Criteria{Diet: "vegetarian"}

	assert.False(t, Include(detailWith("Chicken Salad", 10), c))
	assert.False(t, Include(detailWith("Hearty Soup", 10, "chicken broth"), c))
	assert.False(t, Include(detailWith("Roast", 10, "pork shoulder"), c))
	assert.True(t, Include(detailWith("Tomato Soup", 10, "tomato", "basil"), c))
}

func TestVegetarianAllowsDairyAndEgg(t *testing.T) {
	c := Criteria{Diet: "vegetarian"}

	assert.True(t, Include(detailWith("Cheese Omelette", 10, "cheese", "egg"), c))
}

func TestVeganRejectsDairyEggAndMeat(t *testing.T) {
	c := Criteria{Diet: "vegan"}

	assert.False(t, Include(detailWith("Cheese Pizza", 10), c))
	assert.False(t, Include(detailWith("Fried Rice", 10, "egg"), c))
	assert.False(t, Include(detailWith("Pancakes", 10, "buttermilk"), c))
	assert.False(t, Include(detailWith("Chicken Curry", 10), c))
	assert.True(t, Include(detailWith("Tofu Stir Fry", 10, "tofu", "soy sauce"), c))
}

func TestVeganEggExcludedEvenWithoutMeat(t *testing.T) {
	c := Criteria{Diet: "vegan"}
	d := detailWith("Vegetable Fritters", 15, "zucchini", "egg", "flour")
	assert.False(t, Include(d, c))
}

func TestDietMatchingIsCaseInsensitive(t *testing.T) {
	c := Criteria{Diet: "vegetarian"}
	assert.False(t, Include(detailWith("CHICKEN Parmesan", 10), c))
	assert.False(t, Include(detailWith("Dinner", 10, "Smoked BACON"), c))
}

func TestUnrecognizedDietAlwaysPasses(t *testing.T) {
	c := Criteria{Diet: "pescatarian"}
	assert.True(t, Include(detailWith("Beef Stew", 10, "beef"), c))
}

func TestAllPredicatesMustPass(t *testing.T) {
	maxCal := 1000
	maxTime := 60
	c := Criteria{
		Diet:           "vegan",
		MaxCalories:    &maxCal,
		MaxTimeMinutes: &maxTime,
		Difficulty:     DifficultyMid,
	}

	ok := withCalories(detailWith("Lentil Curry", 40, "lentils", "coconut oil"), 400)
	assert.True(t, Include(ok, c))

	tooSlow := withCalories(detailWith("Lentil Curry", 70, "lentils"), 400)
	assert.False(t, Include(tooSlow, c))

	// "coconut milk" trips the substring heuristic under vegan.
	blockedIngredient := withCalories(detailWith("Lentil Curry", 40, "lentils", "coconut milk"), 400)
	assert.False(t, Include(blockedIngredient, c))
}
