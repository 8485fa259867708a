package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicalScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.SkillLevels
		required  types.SkillLevels
		want      float64
	}{
		{
			name:      "level above minimum earns full credit",
			candidate: types.SkillLevels{"programming_languages": {"Python": 9}},
			required:  types.SkillLevels{"programmingLanguages": {"Python": 8}},
			want:      100,
		},
		{
			name:      "partial credit",
			candidate: types.SkillLevels{"programming_languages": {"Python": 9, "Go": 4}},
			required:  types.SkillLevels{"programming_languages": {"Python": 8, "golang": 8}},
			want:      75,
		},
		{
			name:      "missing skill earns nothing",
			candidate: types.SkillLevels{},
			required:  types.SkillLevels{"frameworks": {"React": 5}},
			want:      0,
		},
		{
			name:      "zero minimum is always met",
			candidate: nil,
			required:  types.SkillLevels{"frameworks": {"React": 0}},
			want:      100,
		},
		{
			name:      "no required skills scores zero",
			candidate: types.SkillLevels{"programming_languages": {"Python": 9}},
			required:  nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TechnicalScore(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestTechnicalScore_Bounded(t *testing.T) {
	required := types.SkillLevels{"languages": {"A": 5, "B": 10, "C": 1}}
	for _, level := range []float64{-3, 0, 0.5, 2, 5, 9.9, 10, 50} {
		candidate := types.SkillLevels{"languages": {"A": level, "B": level, "C": level}}
		score := TechnicalScore(candidate, required)
		assert.GreaterOrEqual(t, score, 0.0, "level %v", level)
		assert.LessOrEqual(t, score, 100.0, "level %v", level)
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		required *types.ExperienceRequirement
		want     float64
	}{
		{"mid against senior", "Mid-level", &types.ExperienceRequirement{Level: "Senior"}, 200.0 / 3},
		{"lead against senior", "Lead", &types.ExperienceRequirement{Level: "Senior"}, 100},
		{"junior against default mid-level", "junior", &types.ExperienceRequirement{}, 50},
		{"unknown candidate level", "Intern", &types.ExperienceRequirement{Level: "Senior"}, 0},
		{"no requirement", "Senior", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExperienceScore(tt.level, tt.required), 1e-9)
		})
	}
}

func TestEducationScore(t *testing.T) {
	tests := []struct {
		name      string
		education []types.EducationEntry
		required  *types.EducationRequirement
		want      float64
	}{
		{
			name:      "preferred field bonus below minimum",
			education: []types.EducationEntry{{Degree: "BS Computer Science"}},
			required:  &types.EducationRequirement{MinimumDegree: "Master", PreferredFields: []string{"Computer Science"}},
			want:      95,
		},
		{
			name:      "bonus capped at 100",
			education: []types.EducationEntry{{Degree: "BS Computer Science"}},
			required:  &types.EducationRequirement{MinimumDegree: "Bachelor", PreferredFields: []string{"computer science"}},
			want:      100,
		},
		{
			name:      "highest degree counts",
			education: []types.EducationEntry{{Degree: "Associate of Arts"}, {Degree: "PhD in Physics"}},
			required:  &types.EducationRequirement{MinimumDegree: "Master"},
			want:      100,
		},
		{
			name:      "unrecognized degree ranks as high school",
			education: []types.EducationEntry{{Degree: "Diploma in Design"}},
			required:  &types.EducationRequirement{},
			want:      100.0 / 3,
		},
		{
			name:      "no education",
			education: nil,
			required:  &types.EducationRequirement{MinimumDegree: "Bachelor"},
			want:      0,
		},
		{
			name:      "no requirement",
			education: []types.EducationEntry{{Degree: "Master of Science"}},
			required:  nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EducationScore(tt.education, tt.required), 1e-9)
		})
	}
}

func TestEducationScore_MonotonicInDegree(t *testing.T) {
	required := &types.EducationRequirement{MinimumDegree: "PhD"}
	degrees := []string{"High School Diploma", "Associate of Science", "Bachelor of Arts", "Master of Science", "PhD"}

	prev := -1.0
	for _, degree := range degrees {
		score := EducationScore([]types.EducationEntry{{Degree: degree}}, required)
		assert.Greater(t, score, prev, degree)
		prev = score
	}
}

func TestCulturalScore(t *testing.T) {
	assert.InDelta(t, 85.0, CulturalScore(85, nil), 1e-9)
	assert.InDelta(t, 92.5, CulturalScore(85, map[string]float64{"teamwork": 80, "communication": 100}), 1e-9)
	assert.InDelta(t, 100.0, CulturalScore(0, map[string]float64{"teamwork": 0}), 1e-9)
	assert.InDelta(t, 0.0, CulturalScore(-5, map[string]float64{"teamwork": 50}), 1e-9)
}

func sampleCandidate() types.Candidate {
	return types.Candidate{
		Profile: types.CandidateProfile{
			Name:      "John Smith",
			Education: []types.EducationEntry{{Degree: "Bachelor of Science in Computer Science"}},
		},
		TechnicalSkills: types.SkillLevels{"programming_languages": {"Python": 9, "Go": 4}},
		ExperienceLevel: "Mid-level",
		CulturalFit:     85,
	}
}

func sampleJob() types.JobRequirement {
	return types.JobRequirement{
		Title:              "Backend Engineer",
		RequiredSkills:     types.SkillLevels{"programmingLanguages": {"Python": 8, "golang": 8}},
		RequiredExperience: &types.ExperienceRequirement{Level: "Senior", Years: 5},
		RequiredEducation: &types.EducationRequirement{
			MinimumDegree:   "Bachelor",
			PreferredFields: []string{"computer science"},
		},
		CulturalRequirements: map[string]float64{"teamwork": 80, "communication": 100},
	}
}

func TestEngine_Score(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := NewEngine(WithClock(func() time.Time { return fixed }))

	got, err := engine.Score(sampleCandidate(), sampleJob())
	require.NoError(t, err)

	assert.Equal(t, types.ComponentScore{Score: 75, Weight: 0.4, WeightedScore: 30}, got.Components.TechnicalSkills)
	assert.Equal(t, types.ComponentScore{Score: 66.67, Weight: 0.3, WeightedScore: 20}, got.Components.Experience)
	assert.Equal(t, types.ComponentScore{Score: 100, Weight: 0.2, WeightedScore: 20}, got.Components.Education)
	assert.Equal(t, types.ComponentScore{Score: 92.5, Weight: 0.1, WeightedScore: 9.25}, got.Components.CulturalFit)
	assert.InDelta(t, 79.25, got.OverallScore, 1e-9)

	assert.Equal(t, types.JobSummary{Title: "Backend Engineer", Department: "Unknown"}, got.JobRequirement)
	assert.Equal(t, fixed, got.Timestamp)
}

func TestEngine_OverallIsWeightedSum(t *testing.T) {
	job := sampleJob()
	job.ScoringWeights = &types.ScoringWeights{TechnicalSkills: 0.1, Experience: 0.2, Education: 0.3, CulturalFit: 0.4}

	got, err := Score(sampleCandidate(), job)
	require.NoError(t, err)

	c := got.Components
	sum := c.TechnicalSkills.WeightedScore + c.Experience.WeightedScore + c.Education.WeightedScore + c.CulturalFit.WeightedScore
	assert.InDelta(t, sum, got.OverallScore, 0.02)
	assert.Equal(t, 0.4, c.CulturalFit.Weight)
}

func TestEngine_NoRequirements(t *testing.T) {
	got, err := Score(types.Candidate{CulturalFit: 70}, types.JobRequirement{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Components.TechnicalSkills.Score)
	assert.Equal(t, 0.0, got.Components.Experience.Score)
	assert.Equal(t, 0.0, got.Components.Education.Score)
	assert.Equal(t, 70.0, got.Components.CulturalFit.Score)
	assert.InDelta(t, 7.0, got.OverallScore, 1e-9)
	assert.Equal(t, "Unknown", got.JobRequirement.Title)
}

func TestEngine_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.JobRequirement)
		check  func(*testing.T, error)
	}{
		{
			name: "skill level above ten",
			mutate: func(j *types.JobRequirement) {
				j.RequiredSkills = types.SkillLevels{"languages": {"Go": 11}}
			},
			check: func(t *testing.T, err error) {
				var reqErr *InvalidRequirementError
				require.ErrorAs(t, err, &reqErr)
				assert.Contains(t, reqErr.Field, "RequiredSkills")
				assert.Equal(t, "must be at most 10", reqErr.Message)
			},
		},
		{
			name: "negative weight",
			mutate: func(j *types.JobRequirement) {
				j.ScoringWeights = &types.ScoringWeights{TechnicalSkills: -1, Experience: 1}
			},
			check: func(t *testing.T, err error) {
				var reqErr *InvalidRequirementError
				require.ErrorAs(t, err, &reqErr)
			},
		},
		{
			name: "weights sum to zero",
			mutate: func(j *types.JobRequirement) {
				j.ScoringWeights = &types.ScoringWeights{}
			},
			check: func(t *testing.T, err error) {
				var weightsErr *MissingWeightsError
				require.ErrorAs(t, err, &weightsErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := sampleJob()
			tt.mutate(&job)

			got, err := Score(sampleCandidate(), job)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, IsInvalidScoringInput(err))
			tt.check(t, err)
		})
	}
}

func TestIsInvalidScoringInput(t *testing.T) {
	assert.False(t, IsInvalidScoringInput(nil))
	assert.False(t, IsInvalidScoringInput(assert.AnError))
}
