// Package suggest turns AI completions into structured talk proposals.
package suggest

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stpnv0/TalkWave/internal/domain"
)

const (
	fallbackTitle  = "AI Generated Talk"
	maxDescription = 200
)

var (
	titleRe       = regexp.MustCompile(`(?m)^(?:[Tt]itle:\s*|#{1,6}\s+)(.+)$`)
	descriptionRe = regexp.MustCompile(`(?m)^[Dd]escription:\s*(.+)$`)
)

// Parse extracts a talk proposal from a free-text completion. The model is
// primed for a "Title: ...\nDescription: ..." format but routinely ignores
// it, so extraction falls back through progressively cruder heuristics. The
// result always has a non-empty title and a description of at most 200
// characters for any non-empty input.
func Parse(text string) domain.Suggestion {
	title := firstMatch(titleRe, text)
	description := firstMatch(descriptionRe, text)

	if title != "" && description == "" {
		description = linesAfterTitle(text, title)
	}
	if title != "" && description == "" {
		if idx := strings.Index(text, title); idx >= 0 {
			description = strings.TrimSpace(text[idx+len(title):])
		}
	}

	if title == "" {
		title = firstNonEmptyLine(text)
	}
	if title == "" {
		title = fallbackTitle
	}

	if description == "" {
		description = strings.TrimSpace(strings.Replace(text, title, "", 1))
	}

	return domain.Suggestion{
		Title:       title,
		Description: truncate(description, maxDescription),
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// linesAfterTitle joins every non-empty line following the one that carries
// the title.
func linesAfterTitle(text, title string) string {
	lines := nonEmptyLines(text)
	for i, line := range lines {
		if strings.Contains(line, title) {
			return strings.TrimSpace(strings.Join(lines[i+1:], " "))
		}
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstNonEmptyLine(text string) string {
	if lines := nonEmptyLines(text); len(lines) > 0 {
		return lines[0]
	}
	return ""
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
