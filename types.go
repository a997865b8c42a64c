package md2latex

// Input contains the parameters for a single conversion.
type Input struct {
	Markdown string // Markdown content to convert (required)

	// Fragment emits the LaTeX body only, without the standalone
	// document preamble.
	Fragment bool

	// PreprocessOnly stops the pipeline after preprocessing and
	// returns the intermediate text. Useful for debugging macro
	// tables against the exact text the parser will see.
	PreprocessOnly bool
}

// ConvertResult contains the conversion output. Preprocessed is always
// populated; LaTeX is empty when Input.PreprocessOnly is set.
type ConvertResult struct {
	Preprocessed []byte
	LaTeX        []byte
}

// TableLoader loads the raw bytes of a named macro table.
type TableLoader interface {
	LoadTable(name string) ([]byte, error)
}

// DefaultWrapCommand is the LaTeX command wrapped around operator and
// function names so they render upright in math mode.
const DefaultWrapCommand = "operatorname"

// Option configures a Converter.
type Option func(*Converter)

// WithMacroPath loads macro tables from dir instead of the embedded
// defaults. The directory must contain macros.csv, operators.csv,
// functions.csv, and overrides.csv.
func WithMacroPath(dir string) Option {
	return func(c *Converter) { c.cfg.macroPath = dir }
}

// WithWrapCommand overrides the LaTeX command wrapped around operator
// and function table entries.
func WithWrapCommand(name string) Option {
	return func(c *Converter) { c.cfg.wrap = name }
}

// WithTableLoader supplies a custom macro table source. Takes
// precedence over WithMacroPath.
func WithTableLoader(l TableLoader) Option {
	return func(c *Converter) { c.tableLoader = l }
}

type converterConfig struct {
	macroPath string
	wrap      string
}
