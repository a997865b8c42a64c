package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// macroFlags holds macro table flags.
type macroFlags struct {
	basePath string
	wrap     string
}

// modeFlags holds output mode flags for debugging and embedding.
type modeFlags struct {
	fragment       bool // LaTeX body only, no document preamble
	preprocessOnly bool // Stop after preprocessing, write intermediate only
	noIntermediate bool // Skip the .pre.md intermediate artifact
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	macros  macroFlags
	modes   modeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addMacroFlags adds macro table flags to a FlagSet.
func addMacroFlags(fs *flag.FlagSet, f *macroFlags) {
	fs.StringVar(&f.basePath, "macro-path", "", "directory with custom macro tables")
	fs.StringVar(&f.wrap, "wrap", "", "LaTeX command wrapped around operators (default: operatorname)")
}

// addModeFlags adds output mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.fragment, "fragment", false, "emit LaTeX body only, without document preamble")
	fs.BoolVar(&f.preprocessOnly, "preprocess-only", false, "stop after preprocessing, write intermediate only")
	fs.BoolVar(&f.noIntermediate, "no-intermediate", false, "skip writing the .pre.md intermediate file")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addMacroFlags(fs, &f.macros)
	addModeFlags(fs, &f.modes)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
