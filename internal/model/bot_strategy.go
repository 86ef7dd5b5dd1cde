package model

// Bot strategy constants
const (
	BotStrategyRandom = "random"
	BotStrategyLogic  = "logic"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyLogic:
		return "Logic (single-cell deduction)"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyLogic}
}

// IsValidBotStrategy reports whether name is a known strategy
func IsValidBotStrategy(name string) bool {
	for _, s := range ValidBotStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
