// Package md2latex converts annotated Markdown notes to LaTeX suitable
// for academic typesetting.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2latex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2latex.Input{
//	    Markdown: "# Notes\n\nThe map `f : X -> Y` is continuous.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.tex", result.LaTeX, 0644)
//
// The result contains both the LaTeX bytes (result.LaTeX) and the
// intermediate preprocessed Markdown (result.Preprocessed) for
// debugging. Use Input.PreprocessOnly to stop after preprocessing, and
// Input.Fragment to omit the standalone document preamble.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source preprocessing (line-ending normalization, comment
//     stripping, explicit paragraph-break markers)
//  2. Markdown parsing via Goldmark (GFM tables, strikethrough)
//  3. AST transformation: macro substitution on inline code spans and
//     tagged fenced blocks (verb, raw, rawmacro, align, indent)
//  4. LaTeX serialization via a custom Goldmark renderer
//
// # Macro Tables
//
// Substitutions are driven by four CSV tables loaded in a fixed order:
// macros, operators, functions, overrides. Each row maps a search term
// to a replacement with a match mode of Word or Anywhere. Operator and
// function entries are wrapped in \operatorname{...} (configurable via
// WithWrapCommand). Built-in tables are embedded in the binary.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2latex.NewConverter(
//	    md2latex.WithMacroPath("/path/to/tables"),
//	    md2latex.WithWrapCommand("mathrm"),
//	)
//
// Table loading is eager: NewConverter fails if any table is missing,
// malformed, or contains an invalid rule, so a converter that
// constructs successfully will never fail on table defects later.
package md2latex
