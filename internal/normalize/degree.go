// Package normalize maps free-text résumé values (degree names, experience
// levels, skill names) onto fixed vocabularies used for comparison.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Standard degree categories.
const (
	DegreeHighSchool = "High School"
	DegreeAssociate  = "Associate"
	DegreeBachelor   = "Bachelor"
	DegreeMaster     = "Master"
	DegreePhD        = "PhD"
)

// degreeRank maps standard degree categories to numeric ranks for comparison
var degreeRank = map[string]int{
	DegreeHighSchool: 1,
	DegreeAssociate:  2,
	DegreeBachelor:   3,
	DegreeMaster:     4,
	DegreePhD:        5,
}

// degreeRule matches a degree category by long keywords (substring) or
// short abbreviations (whole token only, so "ma" does not fire on "diploma").
type degreeRule struct {
	category string
	keywords []string
	abbrev   *regexp.Regexp
}

// Checked in order; the first rule that matches wins.
var degreeRules = []degreeRule{
	{
		category: DegreeBachelor,
		keywords: []string{"bachelor"},
		abbrev:   tokenPattern(`b\.s\.?`, `b\.a\.?`, `bs`, `ba`, `bsc`, `b\.sc\.?`),
	},
	{
		category: DegreeMaster,
		keywords: []string{"master"},
		abbrev:   tokenPattern(`m\.s\.?`, `m\.a\.?`, `ms`, `ma`, `msc`, `m\.sc\.?`, `mba`),
	},
	{
		category: DegreePhD,
		keywords: []string{"ph.d", "doctor"},
		abbrev:   tokenPattern(`phd`, `md`, `jd`),
	},
	{
		category: DegreeAssociate,
		keywords: []string{"associate"},
	},
	{
		category: DegreeHighSchool,
		keywords: []string{"high school"},
	},
}

func tokenPattern(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z.])(?:` + strings.Join(alternatives, "|") + `)(?:[^a-z.]|$)`)
}

var titleCaser = cases.Title(language.Und)

// NormalizeDegree maps a degree string to one of the standard categories.
// Unrecognized text is returned title-cased.
func NormalizeDegree(degree string) string {
	lower := strings.ToLower(strings.TrimSpace(degree))
	if lower == "" {
		return ""
	}

	for _, rule := range degreeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
		if rule.abbrev != nil && rule.abbrev.MatchString(lower) {
			return rule.category
		}
	}

	return titleCaser.String(lower)
}

// DegreeRank returns the rank of a standard degree category, or 0 when the
// value is not a standard category.
func DegreeRank(category string) int {
	return degreeRank[category]
}
