package types

import "time"

// ScoreBreakdown is the auditable result of scoring one candidate against
// one job requirement. All values are rounded to two decimals.
type ScoreBreakdown struct {
	OverallScore   float64         `json:"overall_score"`
	Components     ScoreComponents `json:"components"`
	JobRequirement JobSummary      `json:"job_requirement"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ScoreComponents holds the four weighted dimensions.
type ScoreComponents struct {
	TechnicalSkills ComponentScore `json:"technical_skills"`
	Experience      ComponentScore `json:"experience"`
	Education       ComponentScore `json:"education"`
	CulturalFit     ComponentScore `json:"cultural_fit"`
}

// ComponentScore is a single 0-100 score with the weight applied to it.
type ComponentScore struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
}

// JobSummary echoes the requirement being scored against.
type JobSummary struct {
	Title      string `json:"title"`
	Department string `json:"department"`
}
