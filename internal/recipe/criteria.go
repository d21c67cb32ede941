package recipe

import (
	"strconv"
	"strings"
)

// Difficulty is a derived three-level label computed purely from
// preparation time.
type Difficulty string

const (
	DifficultyEasy Difficulty = "Easy"
	DifficultyMid  Difficulty = "Mid"
	DifficultyHard Difficulty = "Hard"
)

// DifficultyFor derives the difficulty label from readyInMinutes.
func DifficultyFor(readyInMinutes int) Difficulty {
	switch {
	case readyInMinutes < 30:
		return DifficultyEasy
	case readyInMinutes < 60:
		return DifficultyMid
	default:
		return DifficultyHard
	}
}

// Criteria is a parsed recipe search query. All fields are optional; the
// zero value is a valid "browse everything" query.
type Criteria struct {
	Ingredients    string
	Diet           string
	MaxCalories    *int
	MaxTimeMinutes *int
	Difficulty     Difficulty
}

// ParseCriteria builds Criteria from raw form fields. Numeric fields are
// accepted only when the raw input is a non-negative integer literal,
// otherwise they are treated as absent; nothing here ever fails.
func ParseCriteria(ingredients, diet, maxCalories, maxTime, difficulty string) Criteria {
	c := Criteria{
		Ingredients: strings.TrimSpace(ingredients),
		Diet:        strings.ToLower(strings.TrimSpace(diet)),
	}

	c.MaxCalories = parseNonNegativeInt(maxCalories)
	c.MaxTimeMinutes = parseNonNegativeInt(maxTime)

	switch normalizeDifficulty(difficulty) {
	case DifficultyEasy:
		c.Difficulty = DifficultyEasy
	case DifficultyMid:
		c.Difficulty = DifficultyMid
	case DifficultyHard:
		c.Difficulty = DifficultyHard
	}

	return c
}

func parseNonNegativeInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func normalizeDifficulty(raw string) Difficulty {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	return Difficulty(strings.ToUpper(raw[:1]) + raw[1:])
}
