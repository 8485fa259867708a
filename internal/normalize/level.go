package normalize

import "strings"

// Standard experience levels.
const (
	LevelJunior   = "Junior"
	LevelMidLevel = "Mid-level"
	LevelSenior   = "Senior"
	LevelLead     = "Lead"
)

var levelValues = map[string]int{
	"junior":    1,
	"mid-level": 2,
	"senior":    3,
	"lead":      4,
}

// ExperienceLevelValue maps an experience level to its ordinal
// (Junior=1, Mid-level=2, Senior=3, Lead=4). Matching ignores case and
// accepts "mid level" / "mid_level" spellings. Unknown levels map to 0.
func ExperienceLevelValue(level string) int {
	key := strings.ToLower(strings.TrimSpace(level))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	return levelValues[key]
}
