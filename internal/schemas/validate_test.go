package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	for _, name := range []string{JobRequirement, Candidate} {
		src, err := Source(name)
		require.NoError(t, err, name)
		assert.Contains(t, src, `"$schema"`)
	}

	_, err := Source("missing")
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateValue_JobRequirement(t *testing.T) {
	tests := []struct {
		name      string
		doc       map[string]any
		wantField string
	}{
		{
			name: "valid requirement",
			doc: map[string]any{
				"title":          "Backend Engineer",
				"requiredSkills": map[string]any{"programmingLanguages": map[string]any{"Python": 8, "Go": "7"}},
				"requiredExperience": map[string]any{
					"level": "Senior",
					"years": 5,
				},
				"requiredEducation": map[string]any{
					"minimumDegree":   "Bachelor",
					"preferredFields": []any{"Computer Science"},
				},
				"culturalRequirements": map[string]any{"teamwork": 80},
				"scoringWeights": map[string]any{
					"technicalSkills": 0.4, "experience": 0.3, "education": 0.2, "culturalFit": 0.1,
				},
			},
		},
		{
			name:      "skill level above ten",
			doc:       map[string]any{"requiredSkills": map[string]any{"languages": map[string]any{"Go": 11}}},
			wantField: "requiredSkills.languages.Go",
		},
		{
			name:      "non-numeric level",
			doc:       map[string]any{"requiredSkills": map[string]any{"languages": map[string]any{"Go": "expert"}}},
			wantField: "requiredSkills.languages.Go",
		},
		{
			name:      "unknown weight",
			doc:       map[string]any{"scoringWeights": map[string]any{"charisma": 1}},
			wantField: "scoringWeights",
		},
		{
			name:      "title must be a string",
			doc:       map[string]any{"title": 42},
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(JobRequirement, tt.doc)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateValue_Candidate(t *testing.T) {
	valid := map[string]any{
		"profile": map[string]any{
			"name":      "John Smith",
			"education": []any{map[string]any{"degree": "BS Computer Science", "year": 2015}},
		},
		"technical_skills": map[string]any{"programming_languages": map[string]any{"Python": 9}},
		"experience_level": "Mid-level",
		"cultural_fit":     85,
	}
	assert.NoError(t, ValidateValue(Candidate, valid))

	invalid := map[string]any{"cultural_fit": []any{1}}
	var validationErr *ValidationError
	require.ErrorAs(t, ValidateValue(Candidate, invalid), &validationErr)
	assert.Equal(t, "cultural_fit", validationErr.Errors[0].Field)
}

func TestValidateJSONString(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"name": "test"}`))

	err := ValidateJSONString(schemaContent, `{"other": 1}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")

	err = ValidateJSONString(`{ not a schema`, `{}`)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
