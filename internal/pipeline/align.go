package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-md2latex/internal/macro"
)

// cellDelimiter separates cells within a tabular-block line: a run of two
// or more spaces.
var cellDelimiter = regexp.MustCompile(` {2,}`)

// AlignFormatter renders a tabular plain-text block as an alignat*
// environment. Cells are delimited by runs of >=2 spaces; the declared
// column count is the maximum cell count over all lines.
type AlignFormatter struct {
	macros macro.List
}

// NewAlignFormatter creates an AlignFormatter using the given macro list.
func NewAlignFormatter(macros macro.List) *AlignFormatter {
	return &AlignFormatter{macros: macros}
}

// Format converts the block text into LaTeX. Each cell has macro
// substitution applied. Within a line a single & separates the first two
// cells and && separates every subsequent pair, matching alignat's tight
// first column pair and loose later pairs.
func (f *AlignFormatter) Format(block string) string {
	var rows []string
	maxCols := 0

	for _, line := range strings.Split(block, "\n") {
		cells := splitCells(strings.TrimSpace(line))
		if len(cells) == 0 {
			continue
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}

		var b strings.Builder
		for i, cell := range cells {
			switch {
			case i == 1:
				b.WriteString(" & ")
			case i > 1:
				b.WriteString(" && ")
			}
			b.WriteString(f.macros.Apply(cell))
		}
		rows = append(rows, b.String())
	}

	return wrapAlignEnv("alignat*", "{"+strconv.Itoa(maxCols)+"}", rows)
}

// splitCells splits a trimmed line on runs of >=2 spaces, discarding empty
// cells.
func splitCells(line string) []string {
	parts := cellDelimiter.Split(line, -1)
	cells := parts[:0]
	for _, p := range parts {
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// IndentFormatter renders an indented plain-text block as an align*
// environment, preserving each line's leading-space depth as a horizontal
// skip.
type IndentFormatter struct {
	macros macro.List
}

// NewIndentFormatter creates an IndentFormatter using the given macro list.
func NewIndentFormatter(macros macro.List) *IndentFormatter {
	return &IndentFormatter{macros: macros}
}

// Format converts the block text into LaTeX. For a line with n leading
// spaces the output row is &\hspace{<n>em} followed by the substituted
// remainder.
func (f *IndentFormatter) Format(block string) string {
	lines := strings.Split(block, "\n")
	rows := make([]string, 0, len(lines))

	for _, line := range lines {
		n := len(line) - len(strings.TrimLeft(line, " "))
		rows = append(rows, fmt.Sprintf(`&\hspace{%dem}`, n)+f.macros.Apply(line[n:]))
	}

	return wrapAlignEnv("align*", "", rows)
}

// wrapAlignEnv joins rows with line-break terminators on all but the last
// and wraps them in the named environment inside a reduced type-size pair.
func wrapAlignEnv(env, arg string, rows []string) string {
	var b strings.Builder
	b.WriteString("\\begin{small}\n\\begin{" + env + "}" + arg + "\n")
	for i, row := range rows {
		b.WriteString(row)
		if i < len(rows)-1 {
			b.WriteString(` \\`)
		}
		b.WriteString("\n")
	}
	b.WriteString("\\end{" + env + "}\n\\end{small}")
	return b.String()
}
