package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI configuration
type Config struct {
	Difficulty string
	Strategy   string
	Output     string
	Seed       uint64
	SeedSet    bool
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		Difficulty: getEnvOrDefault("MINESWEEPER_DIFFICULTY", model.DifficultyEasy),
		Strategy:   getEnvOrDefault("MINESWEEPER_STRATEGY", model.BotStrategyLogic),
		Output:     getEnvOrDefault("MINESWEEPER_OUTPUT", OutputText),
		Verbose:    false,
	}

	if val := os.Getenv("MINESWEEPER_SEED"); val != "" {
		if seed, err := strconv.ParseUint(val, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.SeedSet = true
		}
	}

	return cfg
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q: must be %s, %s or %s", c.Output, OutputText, OutputJSON, OutputYAML)
	}
	if _, err := model.LookupDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: %q (want one of %s)", err, c.Difficulty, strings.Join(model.DifficultyNames(), ", "))
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
