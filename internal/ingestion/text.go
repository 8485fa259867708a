package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun      = regexp.MustCompile(`[ \t\f\v\p{Zs}]+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
	ligatureFixes = strings.NewReplacer(
		"ﬀ", "ff",
		"ﬁ", "fi",
		"ﬂ", "fl",
		"ﬃ", "ffi",
		"ﬄ", "ffl",
		"\u00ad", "",
		"\u200b", "",
		"\ufeff", "",
		"\x00", "",
	)
)

// CleanText cleans and normalizes text content while preserving structure.
// Extracted PDF text often carries ligatures, soft hyphens and runs of
// spaces used for layout; those are normalized so keyword rules see plain
// words.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = ligatureFixes.Replace(content)

	// 2. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 3. Remove excessive blank lines (max 1 consecutive)
	result := blankLineRun.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses internal whitespace. Bullet glyphs
// are kept since skills lists are split on them.
func cleanLine(line string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
}
