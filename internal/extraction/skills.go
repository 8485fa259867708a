package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-screener/internal/normalize"
)

// SkillClassifier assigns a skill token to a category. Classifiers are tried
// in order; the first match decides. Tokens no classifier claims are kept as
// generic skills.
type SkillClassifier interface {
	Category() string
	Match(token string) bool
}

// DefaultSkillClassifiers returns the built-in dictionaries, programming
// languages first.
func DefaultSkillClassifiers() []SkillClassifier {
	dicts := normalize.DefaultSkillDictionaries()
	out := make([]SkillClassifier, 0, len(dicts))
	for _, d := range dicts {
		out = append(out, d)
	}
	return out
}

var (
	skillSeparators = regexp.MustCompile(`[,•·▪◦●]`)
	skillLabel      = regexp.MustCompile(`^[A-Za-z][A-Za-z &/]*:\s*`)
)

// orderedSet keeps first-appearance order and dedupes case-insensitively.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func (s *orderedSet) add(v string) {
	key := strings.ToLower(v)
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, v)
}

func (s *orderedSet) list() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

type skillsParser struct {
	classifiers []SkillClassifier

	languages orderedSet
	technical orderedSet
	other     orderedSet
}

func newSkillsParser(classifiers []SkillClassifier) *skillsParser {
	return &skillsParser{classifiers: classifiers}
}

func (p *skillsParser) feed(doc *document, i int) {
	p.addLine(doc.lines[i])
}

// addLine splits a line into tokens and files each under its category.
// A leading "Frameworks:" style label is dropped.
func (p *skillsParser) addLine(line string) {
	line = skillLabel.ReplaceAllString(line, "")
	for _, tok := range skillSeparators.Split(line, -1) {
		tok = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tok), "-*"))
		if tok == "" {
			continue
		}
		switch p.classify(tok) {
		case normalize.CategoryProgrammingLanguage:
			p.languages.add(tok)
		case normalize.CategoryTechnical:
			p.technical.add(tok)
		default:
			p.other.add(tok)
		}
	}
}

func (p *skillsParser) classify(tok string) string {
	for _, c := range p.classifiers {
		if c.Match(tok) {
			return c.Category()
		}
	}
	return ""
}

func (p *skillsParser) flush() {}

// inlineSkills returns the text after the first colon of a heading line.
func inlineSkills(line string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}
