// Package pipeline implements the Markdown-to-LaTeX conversion pipeline.
//
// This package handles the preprocessing, document transformation, and
// serialization stages:
//   - Source preprocessing (line normalization, comment stripping,
//     explicit paragraph-break injection)
//   - Document tree transformation via a Goldmark AST transformer that
//     rewrites annotated blocks (verbatim, raw passthrough, math,
//     alignment, indentation) and delegates text to the macro engine
//   - LaTeX serialization via a Goldmark node renderer
//
// Macro table loading is handled separately by internal/macro and
// internal/assets. This separation keeps the pipeline focused on document
// structure, while the macro engine owns the substitution semantics.
package pipeline
