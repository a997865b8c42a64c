package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2latex/internal/macro"
)

// ErrLatexConversion indicates LaTeX conversion failed.
var ErrLatexConversion = errors.New("LaTeX conversion failed")

// latexTemplate wraps the rendered fragment in a standalone LaTeX document.
const latexTemplate = `\documentclass{article}
\usepackage{amsmath}
\usepackage{graphicx}
\usepackage[normalem]{ulem}
\usepackage{hyperref}

\begin{document}
%s\end{document}
`

// LatexConverter abstracts Markdown to LaTeX conversion.
type LatexConverter interface {
	ToLaTeX(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to LaTeX using goldmark (pure Go):
// goldmark parses the document tree, LatexTransformer rewrites annotated
// nodes, and LatexRenderer serializes the result.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter bound to the given macro
// list. Tables and strikethrough are enabled; the transformer runs after
// the extension transformers. The LaTeX renderer registers at priority 100,
// below the extension HTML renderers at 500, so it wins for every node kind
// (lower priority value takes precedence in goldmark).
func NewGoldmarkConverter(macros macro.List) *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(NewLatexTransformer(macros), 900),
			),
		),
		goldmark.WithRenderer(
			renderer.NewRenderer(
				renderer.WithNodeRenderers(
					util.Prioritized(NewLatexRenderer(), 100),
				),
			),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToLaTeX converts Markdown content to a LaTeX fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToLaTeX(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		latex string
		err   error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrLatexConversion, err)}
			return
		}
		done <- result{latex: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.latex, r.err
	}
}

// Document wraps a rendered LaTeX fragment in a standalone article document.
func Document(fragment string) string {
	return fmt.Sprintf(latexTemplate, fragment)
}
