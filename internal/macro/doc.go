// Package macro implements the ordered macro-substitution engine.
//
// A macro list is an ordered sequence of rules loaded from tabular sources.
// Each rule rewrites occurrences of a literal search string into LaTeX
// replacement text, either anywhere in the text or only at whole-word,
// non-hyphen-adjacent positions. Rules form a pipeline: each rule operates
// on the cumulative output of all previous rules, so list order is the sole
// conflict-resolution mechanism.
//
// Rules are compiled once at load time and the resulting List is immutable;
// Apply holds no state across calls.
package macro
