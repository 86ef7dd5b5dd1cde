package model

import "strings"

// Difficulty names a preset board configuration
type Difficulty struct {
	Name      string
	Size      int
	MineCount int
}

// Difficulty names
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var difficulties = []Difficulty{
	{Name: DifficultyEasy, Size: 10, MineCount: 10},
	{Name: DifficultyMedium, Size: 15, MineCount: 40},
	{Name: DifficultyHard, Size: 20, MineCount: 99},
}

// Difficulties returns the preset table, easiest first
func Difficulties() []Difficulty {
	result := make([]Difficulty, len(difficulties))
	copy(result, difficulties)
	return result
}

// LookupDifficulty finds a preset by name (case-insensitive)
func LookupDifficulty(name string) (Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, ErrUnknownDifficulty
}

// DifficultyNames returns the names of all presets
func DifficultyNames() []string {
	names := make([]string, len(difficulties))
	for i, d := range difficulties {
		names[i] = d.Name
	}
	return names
}
