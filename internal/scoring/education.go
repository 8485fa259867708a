package scoring

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/normalize"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	defaultMinimumDegree = normalize.DegreeBachelor
	preferredFieldBonus  = 20.0
)

// EducationScore ranks the candidate's highest degree against the required
// minimum and adds a flat bonus when any degree mentions a preferred field.
// The result is capped at 100. No requirement or no education scores 0.
func EducationScore(education []types.EducationEntry, required *types.EducationRequirement) float64 {
	if required == nil || len(education) == 0 {
		return 0
	}

	minimum := required.MinimumDegree
	if minimum == "" {
		minimum = defaultMinimumDegree
	}
	need := normalize.DegreeRank(normalize.NormalizeDegree(minimum))

	have := normalize.DegreeRank(normalize.DegreeHighSchool)
	for _, entry := range education {
		if rank := normalize.DegreeRank(normalize.NormalizeDegree(entry.Degree)); rank > have {
			have = rank
		}
	}

	score := 100.0
	if have < need {
		score = float64(have) / float64(need) * 100
	}
	if hasPreferredField(education, required.PreferredFields) {
		score += preferredFieldBonus
	}
	if score > 100 {
		score = 100
	}
	return score
}

func hasPreferredField(education []types.EducationEntry, fields []string) bool {
	for _, entry := range education {
		degree := strings.ToLower(entry.Degree)
		for _, field := range fields {
			if field != "" && strings.Contains(degree, strings.ToLower(field)) {
				return true
			}
		}
	}
	return false
}
