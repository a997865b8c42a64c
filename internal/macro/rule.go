package macro

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for rule construction.
var (
	ErrUnknownMatchMode = errors.New("unknown match mode")
	ErrEmptySearch      = errors.New("search text cannot be empty")
)

// MatchMode selects how a rule's search text is matched.
type MatchMode int

const (
	// ModeWord restricts matches to whole words not adjacent to a hyphen.
	ModeWord MatchMode = iota
	// ModeAnywhere matches any textual occurrence, word boundaries ignored.
	ModeAnywhere
)

// String returns the table representation of the mode.
func (m MatchMode) String() string {
	switch m {
	case ModeWord:
		return "Word"
	case ModeAnywhere:
		return "Anywhere"
	}
	return fmt.Sprintf("MatchMode(%d)", int(m))
}

// ParseMatchMode decodes a match-mode column value.
// Returns ErrUnknownMatchMode for anything other than "Word" or "Anywhere".
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "Word":
		return ModeWord, nil
	case "Anywhere":
		return ModeAnywhere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMatchMode, s)
}

// Rule is one substitution pass: a literal search string, its LaTeX
// replacement text, and the match mode. Rules are immutable once compiled.
type Rule struct {
	Search  string
	Replace string
	Mode    MatchMode

	re        *regexp.Regexp
	expansion string
}

// NewRule compiles a rule. The search text is escaped with EscapeLiteral
// before compiling so no metacharacter behavior leaks from macro tables.
func NewRule(search, replace string, mode MatchMode) (Rule, error) {
	if search == "" {
		return Rule{}, ErrEmptySearch
	}

	escaped := EscapeLiteral(search)
	// Literal $ in the replacement must not be read as a regexp group
	// reference by ReplaceAllString.
	repl := strings.ReplaceAll(replace, "$", "$$")

	r := Rule{Search: search, Replace: replace, Mode: mode}
	switch mode {
	case ModeAnywhere:
		re, err := regexp.Compile(escaped)
		if err != nil {
			return Rule{}, fmt.Errorf("compiling rule %q: %w", search, err)
		}
		r.re = re
		r.expansion = " " + repl + " "
	case ModeWord:
		// The match must be bounded on each side by a non-hyphen character
		// or by start/end of text, in addition to a word boundary. The
		// captured boundary characters are re-emitted so surrounding
		// punctuation is not lost.
		re, err := regexp.Compile(`(^|[^-])\b` + escaped + `\b([^-]|$)`)
		if err != nil {
			return Rule{}, fmt.Errorf("compiling rule %q: %w", search, err)
		}
		r.re = re
		r.expansion = " ${1}" + repl + "${2} "
	default:
		return Rule{}, fmt.Errorf("%w: %d", ErrUnknownMatchMode, int(mode))
	}

	return r, nil
}

// apply runs this rule's single left-to-right substitution pass.
// Matches are non-overlapping: a boundary character consumed by one match
// is not available to the next match of the same rule.
func (r Rule) apply(text string) string {
	return r.re.ReplaceAllString(text, r.expansion)
}
