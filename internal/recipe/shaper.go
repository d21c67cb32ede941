package recipe

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/receptkylen/backend/internal/recipesource"
)

const (
	nutritionMissing    = "Information missing"
	instructionsMissing = "No instructions provided."
	servingsUnknown     = "Unknown"
)

// Recipe is the display-ready record handed to the presentation layer. It is
// derived, never persisted except when a user favorites it.
type Recipe struct {
	ID             int           `json:"id"`
	Title          string        `json:"title"`
	Image          string        `json:"image"`
	ReadyInMinutes int           `json:"readyInMinutes"`
	Servings       string        `json:"servings"`
	Nutrition      string        `json:"nutrition"`
	Difficulty     Difficulty    `json:"difficulty"`
	Instructions   template.HTML `json:"instructions"`
}

// Shape builds the output record for a summary and its enriched detail.
func Shape(summary recipesource.Summary, detail *recipesource.Detail) Recipe {
	nutrition := nutritionMissing
	if kcal := caloriesEntry(detail); kcal != nil {
		nutrition = fmt.Sprintf("%s %s", strconv.FormatFloat(kcal.Amount, 'f', -1, 64), kcal.Unit)
	}

	servings := servingsUnknown
	if detail.Servings > 0 {
		servings = strconv.Itoa(detail.Servings)
	}

	return Recipe{
		ID:             summary.ID,
		Title:          summary.Title,
		Image:          summary.Image,
		ReadyInMinutes: detail.ReadyInMinutes,
		Servings:       servings,
		Nutrition:      nutrition,
		Difficulty:     DifficultyFor(detail.ReadyInMinutes),
		Instructions:   shapeInstructions(detail),
	}
}

// shapeInstructions builds an ordered HTML list from the first analyzed step
// group when present, falling back to the free-text instructions field, then
// to a fixed sentinel.
func shapeInstructions(detail *recipesource.Detail) template.HTML {
	if len(detail.AnalyzedInstructions) > 0 && len(detail.AnalyzedInstructions[0].Steps) > 0 {
		var b strings.Builder
		b.WriteString("<ol>")
		for _, step := range detail.AnalyzedInstructions[0].Steps {
			b.WriteString("<li>")
			b.WriteString(template.HTMLEscapeString(step.Step))
			b.WriteString("</li>")
		}
		b.WriteString("</ol>")
		return template.HTML(b.String())
	}

	if detail.Instructions != "" {
		return template.HTML(detail.Instructions)
	}
	return instructionsMissing
}
