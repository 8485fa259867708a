package types

import (
	"github.com/go-playground/validator/v10"
)

// Default component weights used when a requirement does not declare any.
const (
	DefaultTechnicalWeight  = 0.4
	DefaultExperienceWeight = 0.3
	DefaultEducationWeight  = 0.2
	DefaultCulturalWeight   = 0.1
)

// JobRequirement describes what a role asks of a candidate and how the
// four score components are weighted.
type JobRequirement struct {
	Title                string                 `json:"title,omitempty" yaml:"title,omitempty"`
	Department           string                 `json:"department,omitempty" yaml:"department,omitempty"`
	RequiredSkills       SkillLevels            `json:"requiredSkills,omitempty" yaml:"requiredSkills,omitempty" validate:"dive,dive,gte=0,lte=10"`
	RequiredExperience   *ExperienceRequirement `json:"requiredExperience,omitempty" yaml:"requiredExperience,omitempty"`
	RequiredEducation    *EducationRequirement  `json:"requiredEducation,omitempty" yaml:"requiredEducation,omitempty"`
	CulturalRequirements map[string]float64     `json:"culturalRequirements,omitempty" yaml:"culturalRequirements,omitempty" validate:"dive,gte=0"`
	ScoringWeights       *ScoringWeights        `json:"scoringWeights,omitempty" yaml:"scoringWeights,omitempty"`
}

// ExperienceRequirement is the required seniority. Years is carried for
// display; the experience score compares levels only.
type ExperienceRequirement struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	Years int    `json:"years,omitempty" yaml:"years,omitempty" validate:"gte=0"`
}

// EducationRequirement is the minimum degree plus fields that earn a bonus.
type EducationRequirement struct {
	MinimumDegree   string   `json:"minimumDegree,omitempty" yaml:"minimumDegree,omitempty"`
	PreferredFields []string `json:"preferredFields,omitempty" yaml:"preferredFields,omitempty"`
}

// ScoringWeights holds the weight of each component. The weights are
// expected to sum to 1.0 but this is not enforced.
type ScoringWeights struct {
	TechnicalSkills float64 `json:"technicalSkills" yaml:"technicalSkills" validate:"gte=0"`
	Experience      float64 `json:"experience" yaml:"experience" validate:"gte=0"`
	Education       float64 `json:"education" yaml:"education" validate:"gte=0"`
	CulturalFit     float64 `json:"culturalFit" yaml:"culturalFit" validate:"gte=0"`
}

// DefaultScoringWeights returns the weights applied when none are declared.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		TechnicalSkills: DefaultTechnicalWeight,
		Experience:      DefaultExperienceWeight,
		Education:       DefaultEducationWeight,
		CulturalFit:     DefaultCulturalWeight,
	}
}

// Sum returns the total of the four weights.
func (w ScoringWeights) Sum() float64 {
	return w.TechnicalSkills + w.Experience + w.Education + w.CulturalFit
}

// Weights returns the declared weights, or the defaults when none are declared.
func (r *JobRequirement) Weights() ScoringWeights {
	if r.ScoringWeights == nil {
		return DefaultScoringWeights()
	}
	return *r.ScoringWeights
}

// Validate validates the JobRequirement using the validator.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
