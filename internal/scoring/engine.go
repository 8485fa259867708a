// Package scoring computes a deterministic, explainable weighted fit score
// for a candidate against a job requirement. Scoring is pure: it never
// re-parses text and holds no state between calls.
package scoring

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/candidate-screener/internal/types"
)

// unknownJobField is echoed when the requirement has no title or department.
const unknownJobField = "Unknown"

// Engine scores candidates. The zero value is not usable; call NewEngine.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for breakdown timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine returns an Engine using the wall clock in UTC.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Score runs the default Engine.
func Score(candidate types.Candidate, job types.JobRequirement) (*types.ScoreBreakdown, error) {
	return defaultEngine.Score(candidate, job)
}

// Score validates the requirement and returns the per-component breakdown.
// A requirement with nothing to assess on some dimension scores 0 on it;
// a malformed requirement is an error satisfying IsInvalidScoringInput.
func (e *Engine) Score(candidate types.Candidate, job types.JobRequirement) (*types.ScoreBreakdown, error) {
	if err := validateRequirement(&job); err != nil {
		return nil, err
	}
	weights := job.Weights()

	technical := TechnicalScore(candidate.TechnicalSkills, job.RequiredSkills)
	experience := ExperienceScore(candidate.ExperienceLevel, job.RequiredExperience)
	education := EducationScore(candidate.Profile.Education, job.RequiredEducation)
	cultural := CulturalScore(candidate.CulturalFit, job.CulturalRequirements)

	overall := technical*weights.TechnicalSkills +
		experience*weights.Experience +
		education*weights.Education +
		cultural*weights.CulturalFit

	return &types.ScoreBreakdown{
		OverallScore: round2(overall),
		Components: types.ScoreComponents{
			TechnicalSkills: component(technical, weights.TechnicalSkills),
			Experience:      component(experience, weights.Experience),
			Education:       component(education, weights.Education),
			CulturalFit:     component(cultural, weights.CulturalFit),
		},
		JobRequirement: types.JobSummary{
			Title:      orUnknown(job.Title),
			Department: orUnknown(job.Department),
		},
		Timestamp: e.now(),
	}, nil
}

func validateRequirement(job *types.JobRequirement) error {
	if err := job.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &InvalidRequirementError{
				Field:   fe.Namespace(),
				Message: fieldMessage(fe),
				Cause:   err,
			}
		}
		return &InvalidRequirementError{Message: err.Error(), Cause: err}
	}
	if job.ScoringWeights != nil {
		if sum := job.ScoringWeights.Sum(); sum <= 0 {
			return &MissingWeightsError{Sum: sum}
		}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func component(score, weight float64) types.ComponentScore {
	return types.ComponentScore{
		Score:         round2(score),
		Weight:        round2(weight),
		WeightedScore: round2(score * weight),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func orUnknown(s string) string {
	if s == "" {
		return unknownJobField
	}
	return s
}
