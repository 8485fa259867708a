package normalize

import (
	"regexp"
	"sort"
	"strings"
)

// Skill categories produced by the built-in dictionaries.
const (
	CategoryProgrammingLanguage = "programming_language"
	CategoryTechnical           = "technical"
)

// SkillDictionary recognizes skill tokens belonging to one category by
// whole-word keyword matching.
type SkillDictionary struct {
	category string
	pattern  *regexp.Regexp
}

// NewSkillDictionary compiles a dictionary. Keywords are matched
// case-insensitively as whole words, where "+" and "#" count as word
// characters so "c" never fires inside "c++".
func NewSkillDictionary(category string, keywords []string) *SkillDictionary {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(kw)))
	}
	// Longer keywords first so "javascript" is preferred over "java".
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	pattern := regexp.MustCompile(`(?:^|[^a-z0-9+#])(?:` + strings.Join(quoted, "|") + `)(?:[^a-z0-9+#]|$)`)
	return &SkillDictionary{category: category, pattern: pattern}
}

// Category returns the category this dictionary assigns.
func (d *SkillDictionary) Category() string {
	return d.category
}

// Match reports whether the token mentions any keyword of the dictionary.
func (d *SkillDictionary) Match(token string) bool {
	return d.pattern.MatchString(strings.ToLower(token))
}

// ProgrammingLanguages lists the keywords recognized as programming languages.
var ProgrammingLanguages = []string{
	"java", "python", "javascript", "typescript", "ruby", "php", "c++", "c#",
	"swift", "kotlin", "go", "golang", "rust", "scala", "perl", "r", "matlab",
	"sql", "html", "css", "bash", "shell", "dart", "elixir", "haskell",
}

// TechnicalSkills lists cloud, framework and tooling keywords.
var TechnicalSkills = []string{
	"aws", "azure", "gcp", "docker", "kubernetes", "k8s", "react", "angular",
	"vue", "node", "express", "django", "flask", "spring", "git", "jenkins",
	"agile", "scrum", "linux", "unix", "windows", "macos", "terraform",
	"postgresql", "mysql", "mongodb", "redis", "kafka", "graphql",
}

// DefaultSkillDictionaries returns the built-in dictionaries in matching
// order: programming languages before other technical skills.
func DefaultSkillDictionaries() []*SkillDictionary {
	return []*SkillDictionary{
		NewSkillDictionary(CategoryProgrammingLanguage, ProgrammingLanguages),
		NewSkillDictionary(CategoryTechnical, TechnicalSkills),
	}
}

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't known acronyms: capitalize first letter only
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 && !strings.Contains(lower, " ") {
		return strings.ToUpper(normalized[:1]) + lower[1:]
	}

	// If all lowercase and single word, capitalize first letter
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// SameSkill reports whether two skill names refer to the same skill after
// normalization, ignoring case.
func SameSkill(a, b string) bool {
	na, nb := NormalizeSkillName(a), NormalizeSkillName(b)
	return na != "" && strings.EqualFold(na, nb)
}
