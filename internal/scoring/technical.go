package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/normalize"
	"github.com/jonathan/candidate-screener/internal/types"
)

// TechnicalScore awards one credit per required skill the candidate meets and
// partial credit candidate/minimum for those it does not. The score is the
// mean credit scaled to 100, or 0 when nothing is required.
func TechnicalScore(candidate, required types.SkillLevels) float64 {
	categories := make([]string, 0, len(required))
	for category := range required {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var credits float64
	var count int
	for _, category := range categories {
		have := lookupCategory(candidate, category)
		skills := required[category]
		names := make([]string, 0, len(skills))
		for name := range skills {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			count++
			credits += skillCredit(lookupSkill(have, name), skills[name])
		}
	}

	if count == 0 {
		return 0
	}
	return credits / float64(count) * 100
}

func skillCredit(level, minimum float64) float64 {
	if level >= minimum {
		return 1
	}
	// level < minimum <= 0 only for a negative level.
	if minimum <= 0 {
		return 0
	}
	credit := level / minimum
	if credit < 0 {
		return 0
	}
	return credit
}

// lookupCategory finds a candidate category by exact key, then by a
// spelling-insensitive key so "programmingLanguages" finds
// "programming_languages".
func lookupCategory(candidate types.SkillLevels, category string) map[string]float64 {
	if have, ok := candidate[category]; ok {
		return have
	}
	want := categoryKey(category)
	for name, have := range candidate {
		if categoryKey(name) == want {
			return have
		}
	}
	return nil
}

func categoryKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r != '_' && r != '-' && r != ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lookupSkill finds a skill level by exact name, then by canonical skill
// name so "golang" matches "Go". Missing skills have level 0.
func lookupSkill(have map[string]float64, name string) float64 {
	if level, ok := have[name]; ok {
		return level
	}
	for candidateName, level := range have {
		if normalize.SameSkill(candidateName, name) {
			return level
		}
	}
	return 0
}
