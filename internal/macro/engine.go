package macro

// List is an ordered macro list. Substitution is strictly left-to-right
// over the list with no backtracking across rules: each rule operates on
// the cumulative output of all previous rules, not on the original input.
type List []Rule

// Apply runs every rule in order and returns the rewritten text.
// Apply is pure; the list is never mutated.
func (l List) Apply(text string) string {
	for _, r := range l {
		text = r.apply(text)
	}
	return text
}
