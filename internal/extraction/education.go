package extraction

import (
	"regexp"

	"github.com/jonathan/candidate-screener/internal/types"
)

var (
	// Degree words match in any case. Abbreviations are case-sensitive so
	// "ms" inside ordinary text or the state code "MA" are not degrees.
	degreeWord   = regexp.MustCompile(`(?i)\b(?:bachelor|master|associate|doctor|doctorate|diploma|ph\.?d)`)
	degreeAbbrev = regexp.MustCompile(`\b(?:BSc|BS|B\.S\.|BA|B\.A\.|BEng|BTech|MSc|MS|M\.S\.|M\.A\.|MBA|MEng|PhD|Ph\.D\.?)(?:\W|$)`)
	schoolWord   = regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy|polytechnic)\b`)
)

func isDegreeLine(line string) bool {
	return degreeWord.MatchString(line) || degreeAbbrev.MatchString(line)
}

// educationParser accumulates one partial entry at a time. An entry is
// finalized once it has both a degree and a year, when a line repeats a field
// the partial already holds, or when the section ends.
type educationParser struct {
	entries []types.EducationEntry
	partial types.EducationEntry
}

func (p *educationParser) feed(doc *document, i int) {
	line := doc.lines[i]
	degree := isDegreeLine(line)
	school := schoolWord.MatchString(line)

	if (degree && p.partial.Degree != "") || (school && p.partial.School != "") {
		p.flush()
	}
	if degree {
		p.partial.Degree = line
	}
	if school {
		p.partial.School = line
	}
	if year := lastYear(line); year != "" {
		p.partial.Year = year
	}

	if p.partial.Degree != "" && p.partial.Year != "" {
		p.flush()
	}
}

func (p *educationParser) flush() {
	if p.partial.IsZero() {
		return
	}
	p.entries = append(p.entries, p.partial)
	p.partial = types.EducationEntry{}
}
