// Package ranking orders scored analyses and labels how well each candidate
// matches the role.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Match labels.
const (
	LabelExcellent    = "Excellent match"
	LabelStrong       = "Strong match"
	LabelGood         = "Good match"
	LabelUndetermined = "Undetermined"
)

// Tier thresholds on the overall score.
const (
	excellentThreshold = 90
	strongThreshold    = 80
	goodThreshold      = 70
)

// Tier is a coarse verdict on an overall score.
type Tier struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// MatchTier labels a score breakdown. A nil breakdown is undetermined.
func MatchTier(score *types.ScoreBreakdown) Tier {
	if score == nil {
		return Tier{Label: LabelUndetermined, Reason: "No job requirement was scored"}
	}
	switch s := score.OverallScore; {
	case s >= excellentThreshold:
		return Tier{Label: LabelExcellent, Reason: "Outstanding technical skills and experience level"}
	case s >= strongThreshold:
		return Tier{Label: LabelStrong, Reason: "Strong technical background with relevant experience"}
	case s >= goodThreshold:
		return Tier{Label: LabelGood, Reason: "Good technical skills but may need some training"}
	default:
		return Tier{Label: LabelUndetermined, Reason: "Insufficient data or below threshold score"}
	}
}

// RankedCandidate is one row of a ranking.
type RankedCandidate struct {
	Position     int     `json:"position"`
	AnalysisID   string  `json:"analysis_id"`
	Filename     string  `json:"filename"`
	Name         string  `json:"name"`
	OverallScore float64 `json:"overall_score"`
	Tier         Tier    `json:"tier"`
	Notes        string  `json:"notes"`
}

// Rank orders scored analyses by overall score, highest first. Ties keep
// filename order. Unscored analyses are left out.
func Rank(analyses []*analysis.Analysis) []RankedCandidate {
	scored := make([]*analysis.Analysis, 0, len(analyses))
	for _, a := range analyses {
		if a != nil && a.Score != nil {
			scored = append(scored, a)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := scored[i].Score.OverallScore, scored[j].Score.OverallScore
		if si != sj {
			return si > sj
		}
		return scored[i].Filename < scored[j].Filename
	})

	ranked := make([]RankedCandidate, 0, len(scored))
	for i, a := range scored {
		ranked = append(ranked, RankedCandidate{
			Position:     i + 1,
			AnalysisID:   a.ID,
			Filename:     a.Filename,
			Name:         a.Profile.Name,
			OverallScore: a.Score.OverallScore,
			Tier:         MatchTier(a.Score),
			Notes:        generateNotes(a.Score.Components),
		})
	}
	return ranked
}

// RankBatch ranks the successful results of a batch.
func RankBatch(results []analysis.BatchResult) []RankedCandidate {
	analyses := make([]*analysis.Analysis, 0, len(results))
	for _, r := range results {
		analyses = append(analyses, r.Analysis)
	}
	return Rank(analyses)
}

type namedComponent struct {
	name  string
	score float64
}

// generateNotes names the strongest and weakest weighted components.
func generateNotes(c types.ScoreComponents) string {
	components := []namedComponent{
		{"technical skills", c.TechnicalSkills.Score},
		{"experience", c.Experience.Score},
		{"education", c.Education.Score},
		{"cultural fit", c.CulturalFit.Score},
	}
	weights := []float64{c.TechnicalSkills.Weight, c.Experience.Weight, c.Education.Weight, c.CulturalFit.Weight}

	var considered []namedComponent
	for i, comp := range components {
		if weights[i] > 0 {
			considered = append(considered, comp)
		}
	}
	if len(considered) == 0 {
		return "No weighted components"
	}

	sort.SliceStable(considered, func(i, j int) bool { return considered[i].score > considered[j].score })
	best, worst := considered[0], considered[len(considered)-1]

	var parts []string
	parts = append(parts, fmt.Sprintf("Strongest: %s (%.0f)", best.name, best.score))
	if worst.name != best.name && worst.score < best.score {
		parts = append(parts, fmt.Sprintf("Weakest: %s (%.0f)", worst.name, worst.score))
	}
	return strings.Join(parts, ". ")
}
