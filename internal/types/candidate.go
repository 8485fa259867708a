// Package types provides type definitions for structured data used throughout the candidate-screener system.
package types

// CandidateProfile is the structured view of a single résumé document.
// Missing fields are represented by empty values.
type CandidateProfile struct {
	Name                 string            `json:"name"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	Education            []EducationEntry  `json:"education"`
	Experience           []ExperienceEntry `json:"experience"`
	Skills               []string          `json:"skills"`
	ProgrammingLanguages []string          `json:"programming_languages"`
	TechnicalSkills      []string          `json:"technical_skills"`
}

// EducationEntry represents one degree found in the education section.
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"` // four-digit year token, not validated as a date
}

// IsZero reports whether no field has been collected.
func (e EducationEntry) IsZero() bool {
	return e.Degree == "" && e.School == "" && e.Year == ""
}

// ExperienceEntry represents one position found in the experience section.
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Duration string `json:"duration"` // the matched year token
}

// SkillLevels maps skill category -> skill name -> level (0-10).
type SkillLevels map[string]map[string]float64

// Candidate is the input to scoring: the extracted profile plus the
// externally assessed signals that text extraction cannot produce.
type Candidate struct {
	Profile         CandidateProfile `json:"profile"`
	TechnicalSkills SkillLevels      `json:"technical_skills"`
	ExperienceLevel string           `json:"experience_level"` // Junior, Mid-level, Senior, Lead
	CulturalFit     float64          `json:"cultural_fit"`
}

// Clone returns a deep copy so callers can hand profiles across goroutines
// without sharing slices.
func (p CandidateProfile) Clone() CandidateProfile {
	out := p
	out.Education = append([]EducationEntry(nil), p.Education...)
	out.Experience = append([]ExperienceEntry(nil), p.Experience...)
	out.Skills = append([]string(nil), p.Skills...)
	out.ProgrammingLanguages = append([]string(nil), p.ProgrammingLanguages...)
	out.TechnicalSkills = append([]string(nil), p.TechnicalSkills...)
	return out
}
