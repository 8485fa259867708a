package extraction

import (
	"regexp"
	"strings"
)

// NameRecognizer tries to find the candidate's name in the document lines.
// Recognizers run in order and the first match wins.
type NameRecognizer interface {
	RecognizeName(lines []string) (string, bool)
}

// NameRecognizerFunc adapts a function to NameRecognizer.
type NameRecognizerFunc func(lines []string) (string, bool)

// RecognizeName calls f(lines).
func (f NameRecognizerFunc) RecognizeName(lines []string) (string, bool) {
	return f(lines)
}

var (
	nameLabel       = regexp.MustCompile(`(?i)^\s*(?:full name|name|candidate|applicant)\s*:\s*(.+)$`)
	capitalizedName = regexp.MustCompile(`^[A-Z][a-z]+(?:[A-Z][a-z]+)?(?: [A-Z][a-z]+(?:[A-Z][a-z]+)?){1,3}$`)
	resumeTitle     = regexp.MustCompile(`(?i)^\W*(?:resume|résumé|curriculum vitae|cv)\W*$`)
)

// LabeledName finds an explicit "Name:" style label.
type LabeledName struct {
	MaxLines int
}

func (r LabeledName) RecognizeName(lines []string) (string, bool) {
	for i, line := range lines {
		if i >= r.MaxLines {
			break
		}
		if m := nameLabel.FindStringSubmatch(line); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// CapitalizedName finds a line made only of two to four capitalized words.
// Section headings such as "Work Experience" are skipped.
type CapitalizedName struct {
	MaxLines int
}

func (r CapitalizedName) RecognizeName(lines []string) (string, bool) {
	for i, line := range lines {
		if i >= r.MaxLines {
			break
		}
		if !capitalizedName.MatchString(line) || resumeTitle.MatchString(line) {
			continue
		}
		if Classify(line).Header != SectionNone {
			continue
		}
		return line, true
	}
	return "", false
}

// FirstLineName falls back to the first line unless it is a generic title
// such as "Resume" or "Curriculum Vitae".
type FirstLineName struct{}

func (FirstLineName) RecognizeName(lines []string) (string, bool) {
	if len(lines) == 0 || resumeTitle.MatchString(lines[0]) {
		return "", false
	}
	return lines[0], true
}

// DefaultNameRecognizers returns the built-in recognizers in priority order.
func DefaultNameRecognizers() []NameRecognizer {
	return []NameRecognizer{
		LabeledName{MaxLines: 10},
		CapitalizedName{MaxLines: 5},
		FirstLineName{},
	}
}

func recognizeName(recognizers []NameRecognizer, lines []string) string {
	for _, r := range recognizers {
		if name, ok := r.RecognizeName(lines); ok {
			return name
		}
	}
	return ""
}
