package scoring

import (
	"github.com/jonathan/candidate-screener/internal/normalize"
	"github.com/jonathan/candidate-screener/internal/types"
)

// defaultRequiredLevel applies when a requirement omits the level.
const defaultRequiredLevel = normalize.LevelMidLevel

// ExperienceScore compares seniority ordinals. Meeting the required level
// scores 100, otherwise candidate/required scaled to 100. No requirement
// scores 0.
func ExperienceScore(level string, required *types.ExperienceRequirement) float64 {
	if required == nil {
		return 0
	}
	want := required.Level
	if want == "" {
		want = defaultRequiredLevel
	}

	have := normalize.ExperienceLevelValue(level)
	need := normalize.ExperienceLevelValue(want)
	if have >= need {
		return 100
	}
	return float64(have) / float64(need) * 100
}
