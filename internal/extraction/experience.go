package extraction

import "github.com/jonathan/candidate-screener/internal/types"

// experienceParser starts an entry on every line carrying a year. The line
// becomes the title and its first year the duration. The company is the first
// later line that carries no year, names no section and is not contact data.
// The scan runs to the end of the document, not just the section.
type experienceParser struct {
	entries []types.ExperienceEntry
}

func (p *experienceParser) feed(doc *document, i int) {
	c := doc.classes[i]
	if c.ContactLabel || c.Email != "" {
		return
	}
	if !c.HasYear {
		return
	}

	line := doc.lines[i]
	entry := types.ExperienceEntry{
		Title:    line,
		Duration: firstYear(line),
	}
	entry.Company = companyAfter(doc, i)
	p.entries = append(p.entries, entry)
}

func companyAfter(doc *document, i int) string {
	for j := i + 1; j < len(doc.lines); j++ {
		c := doc.classes[j]
		if c.HasYear || c.SectionWord || c.ContactLabel || c.Email != "" {
			continue
		}
		return doc.lines[j]
	}
	return ""
}

// Entries are complete when created.
func (p *experienceParser) flush() {}
