// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to at most n runes, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(profile.Phone)))

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(profile.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(e.Degree)))
			if e.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", e.Year))
			}
			sb.WriteString("\n")
		}
		writeMore(&sb, len(profile.Education))
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", e.Title))
			if e.Company != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", e.Company))
			}
		}
		writeMore(&sb, len(profile.Experience))
	}

	if len(profile.ProgrammingLanguages) > 0 {
		sb.WriteString(fmt.Sprintf("\nLanguages: %s\n", strings.Join(profile.ProgrammingLanguages, ", ")))
	}
	if len(profile.TechnicalSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Technical: %s\n", strings.Join(profile.TechnicalSkills, ", ")))
	}
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Other:     %s\n", strings.Join(profile.Skills, ", ")))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the component table and overall score of a breakdown.
func (p *Printer) PrintScore(score *types.ScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	if score.JobRequirement.Title != "" {
		sb.WriteString(fmt.Sprintf("Role: %s", score.JobRequirement.Title))
		if score.JobRequirement.Department != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", score.JobRequirement.Department))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("%-18s %8s %8s %9s\n", "Component", "Score", "Weight", "Weighted"))
	rows := []struct {
		name string
		c    types.ComponentScore
	}{
		{"Technical skills", score.Components.TechnicalSkills},
		{"Experience", score.Components.Experience},
		{"Education", score.Components.Education},
		{"Cultural fit", score.Components.CulturalFit},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-18s %8.2f %8.2f %9.2f\n", r.name, r.c.Score, r.c.Weight, r.c.WeightedScore))
	}
	sb.WriteString(fmt.Sprintf("\nOverall: %.2f", score.OverallScore))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintBatchSummary outputs one line per analyzed document.
func (p *Printer) PrintBatchSummary(rows []BatchRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range rows {
		switch {
		case r.Error != "":
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", r.Filename, r.Error))
		case r.Score != nil:
			sb.WriteString(fmt.Sprintf("✓ %s  %s  %.2f\n", r.Filename, orDash(r.Name), *r.Score))
		default:
			sb.WriteString(fmt.Sprintf("✓ %s  %s\n", r.Filename, orDash(r.Name)))
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d documents, %d failed", len(rows), failed))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintRanking outputs the top ranked candidates with their match tier.
func (p *Printer) PrintRanking(ranked []ranking.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", r.Position, orDash(r.Name), r.Filename))
		sb.WriteString(fmt.Sprintf("    %.2f  %s\n", r.OverallScore, r.Tier.Label))
		if r.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Notes))
		}
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more candidates\n", len(ranked)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// BatchRow is the printable outcome of one batch document.
type BatchRow struct {
	Filename string
	Name     string
	Score    *float64
	Error    string
}

func writeMore(sb *strings.Builder, n int) {
	if n > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", n-maxItemsToShow))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
