package extraction

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

// DefaultMaxLines bounds the number of lines examined per document.
const DefaultMaxLines = 5000

// sectionParser consumes the lines of one section.
type sectionParser interface {
	feed(doc *document, i int)
	flush()
}

// document is the cleaned line sequence with one classification per line.
// Parsers receive an explicit index so lookahead never depends on hidden
// iteration state.
type document struct {
	lines   []string
	classes []LineClass
}

func newDocument(lines []string) *document {
	classes := make([]LineClass, len(lines))
	for i, line := range lines {
		classes[i] = Classify(line)
	}
	return &document{lines: lines, classes: classes}
}

// Extractor converts résumé text into a CandidateProfile. An Extractor is
// immutable after New and safe for concurrent use.
type Extractor struct {
	nameRecognizers  []NameRecognizer
	skillClassifiers []SkillClassifier
	maxLines         int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNameRecognizers replaces the name recognizers.
func WithNameRecognizers(r ...NameRecognizer) Option {
	return func(e *Extractor) { e.nameRecognizers = r }
}

// WithSkillClassifiers replaces the skill classifiers.
func WithSkillClassifiers(c ...SkillClassifier) Option {
	return func(e *Extractor) { e.skillClassifiers = c }
}

// WithMaxLines caps the number of lines examined. Values below 1 are ignored.
func WithMaxLines(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxLines = n
		}
	}
}

// New returns an Extractor with the built-in rules, modified by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		nameRecognizers:  DefaultNameRecognizers(),
		skillClassifiers: DefaultSkillClassifiers(),
		maxLines:         DefaultMaxLines,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract runs the default Extractor.
func Extract(text string) types.CandidateProfile {
	return defaultExtractor.Extract(text)
}

// Extract builds a profile from text. It never fails; empty or unrecognized
// input yields a profile with empty fields.
func (e *Extractor) Extract(text string) types.CandidateProfile {
	lines := SplitLines(text)
	if len(lines) > e.maxLines {
		lines = lines[:e.maxLines]
	}
	doc := newDocument(lines)

	edu := &educationParser{}
	exp := &experienceParser{}
	sk := newSkillsParser(e.skillClassifiers)
	parsers := map[state]sectionParser{
		stateInEducation:  edu,
		stateInExperience: exp,
		stateInSkills:     sk,
	}

	profile := types.CandidateProfile{
		Name: recognizeName(e.nameRecognizers, lines),
	}

	s := stateIdle
	for i, c := range doc.classes {
		if profile.Email == "" {
			profile.Email = c.Email
		}
		if profile.Phone == "" {
			profile.Phone = c.Phone
		}

		t := step(s, c)
		if t.flush {
			parsers[s].flush()
		}
		if t.feed {
			parsers[s].feed(doc, i)
		}
		if t.inline {
			if rest := inlineSkills(lines[i]); rest != "" {
				sk.addLine(rest)
			}
		}
		s = t.next
	}
	if p, ok := parsers[s]; ok {
		p.flush()
	}

	profile.Education = edu.entries
	profile.Experience = exp.entries
	profile.Skills = sk.other.list()
	profile.ProgrammingLanguages = sk.languages.list()
	profile.TechnicalSkills = sk.technical.list()
	if profile.Education == nil {
		profile.Education = []types.EducationEntry{}
	}
	if profile.Experience == nil {
		profile.Experience = []types.ExperienceEntry{}
	}
	return profile
}

// SplitLines normalizes line endings and returns the trimmed non-empty lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
