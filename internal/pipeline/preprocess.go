package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Structural line comment: optional leading whitespace then "-- "
	commentLine = regexp.MustCompile(`^[ \t]*-- `)
)

// parBreakMarker is the three-line structural marker inserted between
// adjacent paragraphs: an empty comment, a forced paragraph break, and a
// second empty comment. It guarantees the downstream parser never silently
// merges intended paragraph breaks.
const parBreakMarker = "<!-- -->\n\\par\n<!-- -->"

// SourcePreprocessor defines the contract for source preprocessing.
type SourcePreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// NotesPreprocessor normalizes annotated note sources before parsing.
type NotesPreprocessor struct{}

// Preprocess applies all normalization steps in order: line endings first,
// then comment stripping, then paragraph-break injection.
func (p *NotesPreprocessor) Preprocess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = stripComments(content)
	content = addPars(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// stripComments removes structural comment lines ("-- " after optional
// leading whitespace) entirely and blanks whitespace-only lines. Lines with
// "--" anywhere else are left untouched.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if commentLine.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			result = append(result, "")
			continue
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// addPars splits the line sequence on blank lines and rejoins adjacent
// paragraphs with the three-line structural marker, surrounded by blank
// lines so the parser keeps the blocks separate.
func addPars(content string) string {
	lines := strings.Split(content, "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n"+parBreakMarker+"\n\n")
}
