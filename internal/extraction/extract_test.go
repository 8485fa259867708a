package extraction

import (
	"testing"

	"github.com/jonathan/candidate-screener/internal/normalize"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
Education
Bachelor of Science
State University
2015
Experience
Software Engineer 2018
Acme Corp
Skills
Python, Docker, Public Speaking`

func TestExtract_FullResume(t *testing.T) {
	profile := Extract(sampleResume)

	assert.Equal(t, "John Smith", profile.Name)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, types.EducationEntry{
		Degree: "Bachelor of Science",
		School: "State University",
		Year:   "2015",
	}, profile.Education[0])

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, types.ExperienceEntry{
		Title:    "Software Engineer 2018",
		Company:  "Acme Corp",
		Duration: "2018",
	}, profile.Experience[0])

	assert.Equal(t, []string{"Python"}, profile.ProgrammingLanguages)
	assert.Equal(t, []string{"Docker"}, profile.TechnicalSkills)
	assert.Equal(t, []string{"Public Speaking"}, profile.Skills)
}

func TestExtract_Idempotent(t *testing.T) {
	assert.Equal(t, Extract(sampleResume), Extract(sampleResume))
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n\t\n"} {
		profile := Extract(text)
		assert.Empty(t, profile.Name)
		assert.Empty(t, profile.Email)
		assert.Empty(t, profile.Phone)
		assert.NotNil(t, profile.Education)
		assert.NotNil(t, profile.Experience)
		assert.NotNil(t, profile.Skills)
		assert.Empty(t, profile.Education)
		assert.Empty(t, profile.Skills)
	}
}

func TestExtract_Contact(t *testing.T) {
	profile := Extract("Jane Doe\njane.doe@example.com | (555) 123-4567\nother@example.org 555.987.6543")

	assert.Equal(t, "jane.doe@example.com", profile.Email)
	assert.Equal(t, "(555) 123-4567", profile.Phone)
}

func TestExtract_EmailDoesNotOpenSection(t *testing.T) {
	profile := Extract("Jane Doe\njane@workmail.com\nSkills\nGo")

	assert.Equal(t, "jane@workmail.com", profile.Email)
	assert.Empty(t, profile.Experience)
	assert.Equal(t, []string{"Go"}, profile.ProgrammingLanguages)
}

func TestExtract_Name(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "explicit label wins",
			text: "Resume\nSenior Engineer\nName: Maria Garcia",
			want: "Maria Garcia",
		},
		{
			name: "capitalized words after title",
			text: "CURRICULUM VITAE\nJohn Smith\njohn@example.com",
			want: "John Smith",
		},
		{
			name: "section heading is not a name",
			text: "Work Experience\nAda Lovelace",
			want: "Ada Lovelace",
		},
		{
			name: "first line fallback",
			text: "J. R. R. Tolkien\nOxford",
			want: "J. R. R. Tolkien",
		},
		{
			name: "resume title only",
			text: "Resume",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Name)
		})
	}
}

func TestExtract_Education(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.EducationEntry
	}{
		{
			name: "degree and year on one line finalize immediately",
			text: "Education\nMIT, B.S. Computer Science, 2019\nMS Data Science 2021",
			want: []types.EducationEntry{
				{Degree: "MIT, B.S. Computer Science, 2019", Year: "2019"},
				{Degree: "MS Data Science 2021", Year: "2021"},
			},
		},
		{
			name: "last year on the line is used",
			text: "Education\nBachelor of Arts, Example College, 2012 - 2016",
			want: []types.EducationEntry{
				{
					Degree: "Bachelor of Arts, Example College, 2012 - 2016",
					School: "Bachelor of Arts, Example College, 2012 - 2016",
					Year:   "2016",
				},
			},
		},
		{
			name: "repeated degree starts a new entry",
			text: "Education\nBachelor of Science\nMaster of Science",
			want: []types.EducationEntry{
				{Degree: "Bachelor of Science"},
				{Degree: "Master of Science"},
			},
		},
		{
			name: "partial flushed when section closes",
			text: "Education\nState University\nExperience",
			want: []types.EducationEntry{
				{School: "State University"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Education)
		})
	}
}

func TestExtract_Experience(t *testing.T) {
	text := "Experience\nPhone: 555-123-4567\nSenior Developer 2019 - 2022\nGlobex\nJunior Developer 2016\nInitech"
	profile := Extract(text)

	assert.Equal(t, "555-123-4567", profile.Phone)
	assert.Equal(t, []types.ExperienceEntry{
		{Title: "Senior Developer 2019 - 2022", Company: "Globex", Duration: "2019"},
		{Title: "Junior Developer 2016", Company: "Initech", Duration: "2016"},
	}, profile.Experience)
}

func TestExtract_ExperienceCompanyLookahead(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []types.ExperienceEntry
	}{
		{
			name: "date line between title and company",
			text: "Experience\nSenior Developer 2020\n2018 - 2020\nAcme Corp",
			want: []types.ExperienceEntry{
				{Title: "Senior Developer 2020", Company: "Acme Corp", Duration: "2020"},
				{Title: "2018 - 2020", Company: "Acme Corp", Duration: "2018"},
			},
		},
		{
			name: "section word skipped",
			text: "Experience\nDeveloper 2019\n2017 - 2019\nClient experience\nInitech",
			want: []types.ExperienceEntry{
				{Title: "Developer 2019", Company: "Initech", Duration: "2019"},
				{Title: "2017 - 2019", Company: "Initech", Duration: "2017"},
			},
		},
		{
			name: "contact lines skipped",
			text: "Experience\nDeveloper 2019\nPhone: 555-123-4567\njane@example.com\nGlobex",
			want: []types.ExperienceEntry{
				{Title: "Developer 2019", Company: "Globex", Duration: "2019"},
			},
		},
		{
			name: "scan continues past section end",
			text: "Experience\nDeveloper 2019\nProjects\nInitech",
			want: []types.ExperienceEntry{
				{Title: "Developer 2019", Company: "Initech", Duration: "2019"},
			},
		},
		{
			name: "no company line",
			text: "Experience\nDeveloper 2019\n2017 - 2019 Contractor",
			want: []types.ExperienceEntry{
				{Title: "Developer 2019", Duration: "2019"},
				{Title: "2017 - 2019 Contractor", Duration: "2017"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Experience)
		})
	}
}

func TestExtract_LabelledPhone(t *testing.T) {
	t.Run("does not open experience", func(t *testing.T) {
		profile := Extract("Jane Doe\nWork Phone: (555) 123-4567\nSoftware Engineer 2019\nAcme")

		assert.Equal(t, "(555) 123-4567", profile.Phone)
		assert.Empty(t, profile.Experience)
	})

	t.Run("still read inside education", func(t *testing.T) {
		profile := Extract("Education\nBS Computer Science\nTel: (555) 123-4567 2016")

		assert.Equal(t, []types.EducationEntry{
			{Degree: "BS Computer Science", Year: "2016"},
		}, profile.Education)
	})
}

func TestExtract_Skills(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		languages []string
		technical []string
		other     []string
	}{
		{
			name:      "inline heading",
			text:      "Technical Skills: Go, Docker, Leadership",
			languages: []string{"Go"},
			technical: []string{"Docker"},
			other:     []string{"Leadership"},
		},
		{
			name:      "dedupe and bullets",
			text:      "Skills\nPython, python, PYTHON\n- Docker\n* docker",
			languages: []string{"Python"},
			technical: []string{"Docker"},
			other:     []string{},
		},
		{
			name:      "label prefix dropped",
			text:      "Skills\nFrameworks: Django • Flask",
			languages: []string{},
			technical: []string{"Django", "Flask"},
			other:     []string{},
		},
		{
			name:      "projects closes section",
			text:      "Skills\nGo, Rust\nProjects\nKubernetes operator",
			languages: []string{"Go", "Rust"},
			technical: []string{},
			other:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Extract(tt.text)
			assert.Equal(t, tt.languages, profile.ProgrammingLanguages)
			assert.Equal(t, tt.technical, profile.TechnicalSkills)
			assert.Equal(t, tt.other, profile.Skills)
		})
	}
}

func TestExtractor_Options(t *testing.T) {
	t.Run("max lines", func(t *testing.T) {
		profile := New(WithMaxLines(2)).Extract(sampleResume)
		assert.Equal(t, "John Smith", profile.Name)
		assert.Empty(t, profile.Education)
	})

	t.Run("custom name recognizer", func(t *testing.T) {
		e := New(WithNameRecognizers(NameRecognizerFunc(func([]string) (string, bool) {
			return "Override", true
		})))
		assert.Equal(t, "Override", e.Extract(sampleResume).Name)
	})

	t.Run("custom skill classifier", func(t *testing.T) {
		e := New(WithSkillClassifiers(normalize.NewSkillDictionary(normalize.CategoryTechnical, []string{"excel"})))
		profile := e.Extract("Skills\nExcel, Python")
		assert.Equal(t, []string{"Excel"}, profile.TechnicalSkills)
		assert.Equal(t, []string{"Python"}, profile.Skills)
		assert.Empty(t, profile.ProgrammingLanguages)
	})
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("  a \r\n\r\nb\rc\n\n"))
	assert.Empty(t, SplitLines(""))
}
