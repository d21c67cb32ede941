package recipesource

// Summary is the minimal identity record returned by the search endpoint.
type Summary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type searchResponse struct {
	Results []Summary `json:"results"`
}

// Nutrient is a single entry of the ordered nutrient list.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Ingredient struct {
	Name string `json:"name"`
}

type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

type InstructionGroup struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// Detail is the per-recipe information record, decoded at the boundary into
// explicit fields instead of being passed around as an untyped map.
type Detail struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	Servings             int                `json:"servings"`
	Instructions         string             `json:"instructions"`
	ExtendedIngredients  []Ingredient       `json:"extendedIngredients"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions"`
	Nutrition            struct {
		Nutrients []Nutrient `json:"nutrients"`
	} `json:"nutrition"`
}
