// Package extraction turns plain résumé text into a structured CandidateProfile
// using keyword rules and a line-driven state machine. It never fails: fields
// that cannot be recovered are left empty.
package extraction

import (
	"regexp"
	"strings"
)

// Section identifies a résumé section.
type Section int

const (
	SectionNone Section = iota
	SectionEducation
	SectionExperience
	SectionSkills
)

func (s Section) String() string {
	switch s {
	case SectionEducation:
		return "education"
	case SectionExperience:
		return "experience"
	case SectionSkills:
		return "skills"
	default:
		return "none"
	}
}

// Keywords match at the start of a word, so "network" does not read as
// "work" and "coursework" does not close the education section.
var (
	educationHeader  = regexp.MustCompile(`(?i)\b(?:education|university|college|degree|bachelor|master|phd)`)
	experienceHeader = regexp.MustCompile(`(?i)\b(?:experience|work|employment)`)
	skillsHeader     = regexp.MustCompile(`(?i)\b(?:skills|technologies|tools|languages|programming)`)

	// A section closes on another section's keyword, with "projects" as a
	// generic terminator.
	educationEnd  = regexp.MustCompile(`(?i)\b(?:experience|work|employment|skills|projects)`)
	experienceEnd = regexp.MustCompile(`(?i)\b(?:education|skills|projects)`)
	skillsEnd     = regexp.MustCompile(`(?i)\b(?:experience|education|projects)`)

	// Lines that cannot be taken as a company name.
	sectionWord = regexp.MustCompile(`(?i)\b(?:experience|education|skills|projects)`)

	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	emailPattern = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(?:^|\D)(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})(?:\D|$)`)

	// "Phone: (555) 123-4567" style lines, skipped while scanning experience.
	contactLabel = regexp.MustCompile(`\b(?:Mobile|Phone|Tel|Telephone)\b[:.\s]*\+?[\d\-()\s]{7,}`)
)

// LineClass is the result of classifying one trimmed, non-empty line.
type LineClass struct {
	// Header is the section whose header trigger fires, by priority
	// education > experience > skills, or SectionNone.
	Header Section

	closesEducation  bool
	closesExperience bool
	closesSkills     bool

	// SectionWord is set when the line names a section and therefore cannot
	// be a company line.
	SectionWord bool
	// HasYear is set when the line carries a 19xx/20xx token.
	HasYear bool
	// ContactLabel is set for labelled telephone lines.
	ContactLabel bool

	Email string
	Phone string
}

// Closes reports whether the line terminates the given active section.
func (c LineClass) Closes(active Section) bool {
	switch active {
	case SectionEducation:
		return c.closesEducation
	case SectionExperience:
		return c.closesExperience
	case SectionSkills:
		return c.closesSkills
	default:
		return false
	}
}

// Classify labels a single line. It is a pure function of the line.
func Classify(line string) LineClass {
	c := LineClass{
		HasYear:      yearPattern.MatchString(line),
		ContactLabel: contactLabel.MatchString(line),
		Email:        emailPattern.FindString(line),
	}

	// An address like jane@workmail.com must not read as a section keyword.
	probe := line
	if c.Email != "" {
		probe = strings.Replace(line, c.Email, " ", 1)
	}

	c.closesEducation = educationEnd.MatchString(probe)
	c.closesExperience = experienceEnd.MatchString(probe)
	c.closesSkills = skillsEnd.MatchString(probe)
	c.SectionWord = sectionWord.MatchString(probe)

	switch {
	case educationHeader.MatchString(probe):
		c.Header = SectionEducation
	case experienceHeader.MatchString(probe):
		c.Header = SectionExperience
	case skillsHeader.MatchString(probe):
		c.Header = SectionSkills
	}

	if m := phonePattern.FindStringSubmatch(line); m != nil {
		c.Phone = m[1]
	}

	return c
}

// firstYear returns the first year token on the line.
func firstYear(line string) string {
	return yearPattern.FindString(line)
}

// lastYear returns the last year token on the line.
func lastYear(line string) string {
	all := yearPattern.FindAllString(line, -1)
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}
