package recipe

import (
	"fmt"
	"strings"
)

// NoResultsMessage builds a human-readable message enumerating the
// constraints that were actually supplied.
func NoResultsMessage(c Criteria) string {
	var parts []string
	if c.Ingredients != "" {
		parts = append(parts, fmt.Sprintf("ingredient '%s'", c.Ingredients))
	}
	if c.Diet != "" {
		parts = append(parts, fmt.Sprintf("diet '%s'", c.Diet))
	}
	if c.MaxCalories != nil {
		parts = append(parts, fmt.Sprintf("max %d kcal", *c.MaxCalories))
	}
	if c.MaxTimeMinutes != nil {
		parts = append(parts, fmt.Sprintf("max %d min", *c.MaxTimeMinutes))
	}
	if c.Difficulty != "" {
		parts = append(parts, fmt.Sprintf("difficulty '%s'", c.Difficulty))
	}

	if len(parts) == 0 {
		return "No recipes found."
	}
	return fmt.Sprintf("No recipes found matching %s.", strings.Join(parts, ", "))
}
