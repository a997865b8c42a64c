package macro

import "strings"

// metachars lists the regexp metacharacters escaped by EscapeLiteral.
// Backslash must come first: escaping any later character inserts new
// backslashes, and those must not themselves be re-escaped.
var metachars = []string{`\`, `|`, `(`, `)`, `[`, `]`, `{`, `}`, `^`, `$`, `*`, `+`, `?`, `.`}

// EscapeLiteral returns a pattern that matches s as literal text.
// Beyond backslash-first, the escape order does not matter because none of
// the remaining metacharacters introduce each other.
func EscapeLiteral(s string) string {
	for _, m := range metachars {
		s = strings.ReplaceAll(s, m, `\`+m)
	}
	return s
}
