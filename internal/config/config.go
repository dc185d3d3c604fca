package config

import (
	"fmt"
)

// MaxDenominator bounds the answer history length.
const MaxDenominator = 20

// Config is the inbound configuration the host sets before each graph
// generation.
type Config struct {
	// MasteryNumerator is how many correct answers mastery requires.
	MasteryNumerator int `json:"numerator"`
	// MasteryDenominator is the answer history length.
	MasteryDenominator int `json:"denominator"`
	// Undirected materializes each kept edge in both directions.
	Undirected bool `json:"undirected"`
	// Weighted gives edges random costs.
	Weighted bool `json:"weighted"`
	// FirstQuestion and LastQuestion bound the question template indices,
	// inclusive.
	FirstQuestion int `json:"firstQuestion"`
	LastQuestion  int `json:"lastQuestion"`
	// SuppressAutoStart keeps the engine idle until the first Regenerate.
	SuppressAutoStart bool `json:"doNotLaunch"`
	// RandomizeModes flips a coin for Undirected and Weighted on every
	// generation, overriding the configured values.
	RandomizeModes bool `json:"randomizeModes"`
}

// Default returns the drill's out-of-the-box configuration: four correct
// out of the last five, both question kinds, modes chosen at random.
func Default() Config {
	return Config{
		MasteryNumerator:   4,
		MasteryDenominator: 5,
		Undirected:         true,
		Weighted:           false,
		FirstQuestion:      0,
		LastQuestion:       1,
		SuppressAutoStart:  false,
		RandomizeModes:     true,
	}
}

// Normalize clamps out-of-range values for a question list of
// templateCount entries and reports each adjustment it made.
//
// Policy:
//   - denominator into [1, MaxDenominator]
//   - numerator into [1, denominator]
//   - question indices into [0, templateCount-1]
//   - last < first becomes last = first
func Normalize(c Config, templateCount int) (Config, []string) {
	var changes []string
	clamp := func(name string, v *int, lo, hi int) {
		orig := *v
		if *v < lo {
			*v = lo
		}
		if *v > hi {
			*v = hi
		}
		if *v != orig {
			changes = append(changes, fmt.Sprintf("%s %d clamped to %d", name, orig, *v))
		}
	}

	clamp("denominator", &c.MasteryDenominator, 1, MaxDenominator)
	clamp("numerator", &c.MasteryNumerator, 1, c.MasteryDenominator)

	maxIdx := templateCount - 1
	if maxIdx < 0 {
		maxIdx = 0
	}
	clamp("firstQuestion", &c.FirstQuestion, 0, maxIdx)
	clamp("lastQuestion", &c.LastQuestion, 0, maxIdx)
	if c.LastQuestion < c.FirstQuestion {
		changes = append(changes, fmt.Sprintf("lastQuestion %d raised to firstQuestion %d", c.LastQuestion, c.FirstQuestion))
		c.LastQuestion = c.FirstQuestion
	}
	return c, changes
}
