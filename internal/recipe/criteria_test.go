package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCriteriaTrimsAndLowercases(t *testing.T) {
	c := ParseCriteria("  tomato, basil  ", "  VeGaN ", "", "", "")

	assert.Equal(t, "tomato, basil", c.Ingredients)
	assert.Equal(t, "vegan", c.Diet)
	assert.Nil(t, c.MaxCalories)
	assert.Nil(t, c.MaxTimeMinutes)
	assert.Equal(t, Difficulty(""), c.Difficulty)
}

func TestParseCriteriaNumericFields(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  *int
		value int
	}{
		{"valid integer", "500", intPtr(500), 500},
		{"zero is present, not absent", "0", intPtr(0), 0},
		{"letters are absent", "abc", nil, 0},
		{"negative is absent", "-5", nil, 0},
		{"plus sign is absent", "+5", nil, 0},
		{"decimal is absent", "3.5", nil, 0},
		{"empty is absent", "", nil, 0},
		{"whitespace only is absent", "   ", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCriteria("", "", tt.raw, tt.raw, "")
			if tt.want == nil {
				assert.Nil(t, c.MaxCalories)
				assert.Nil(t, c.MaxTimeMinutes)
				return
			}
			if assert.NotNil(t, c.MaxCalories) {
				assert.Equal(t, tt.value, *c.MaxCalories)
			}
			if assert.NotNil(t, c.MaxTimeMinutes) {
				assert.Equal(t, tt.value, *c.MaxTimeMinutes)
			}
		})
	}
}

func TestParseCriteriaDifficulty(t *testing.T) {
	tests := []struct {
		raw  string
		want Difficulty
	}{
		{"Easy", DifficultyEasy},
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{" mid ", DifficultyMid},
		{"hard", DifficultyHard},
		{"extreme", ""},
		{"", ""},
	}

	for _, tt := range tests {
		c := ParseCriteria("", "", "", "", tt.raw)
		assert.Equal(t, tt.want, c.Difficulty, "raw input %q", tt.raw)
	}
}

func TestDifficultyForBoundaries(t *testing.T) {
	tests := []struct {
		minutes int
		want    Difficulty
	}{
		{0, DifficultyEasy},
		{29, DifficultyEasy},
		{30, DifficultyMid},
		{59, DifficultyMid},
		{60, DifficultyHard},
		{120, DifficultyHard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DifficultyFor(tt.minutes), "readyInMinutes=%d", tt.minutes)
	}
}

func intPtr(n int) *int { return &n }
