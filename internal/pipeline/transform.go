package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2latex/internal/macro"
)

// Annotation tag prefixes recognized on fenced code blocks. Dispatch order
// matters: "rawmacro" must be checked before "raw" since the latter is a
// prefix of the former.
const (
	tagVerb     = "verb"
	tagRawMacro = "rawmacro"
	tagRaw      = "raw"
	tagAlign    = "align"
	tagIndent   = "indent"
)

// rawInlinePrefix tags an inline code span as raw LaTeX passthrough.
const rawInlinePrefix = "raw "

// LatexTransformer rewrites annotated document nodes into raw LaTeX nodes,
// delegating text content to the macro engine. It implements
// parser.ASTTransformer.
//
// The rewrite runs as four ordered sub-passes: raw blocks, macro blocks
// (verbatim/math/align/indent), raw inlines, then inline math. Raw-tagged
// content is converted first so it is never subsequently macro-substituted
// or math-wrapped.
type LatexTransformer struct {
	macros macro.List
	align  *AlignFormatter
	indent *IndentFormatter
}

// NewLatexTransformer creates a LatexTransformer with the given macro list.
func NewLatexTransformer(macros macro.List) *LatexTransformer {
	return &LatexTransformer{
		macros: macros,
		align:  NewAlignFormatter(macros),
		indent: NewIndentFormatter(macros),
	}
}

// Transform implements parser.ASTTransformer.
func (t *LatexTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	t.rawBlocks(doc, source)
	t.macroBlocks(doc, source)
	t.rawInlines(doc, source)
	t.inlineMath(doc, source)
}

// rawBlocks converts "raw"-tagged fenced code blocks into raw LaTeX blocks
// with no substitution.
func (t *LatexTransformer) rawBlocks(doc ast.Node, source []byte) {
	for _, n := range collectKind(doc, ast.KindFencedCodeBlock) {
		fcb := n.(*ast.FencedCodeBlock)
		tag := string(fcb.Language(source))
		if strings.HasPrefix(tag, tagRawMacro) || !strings.HasPrefix(tag, tagRaw) {
			continue
		}
		replaceNode(n, NewRawLatexBlock(blockText(fcb, source)))
	}
}

// macroBlocks converts the substituting block tags: verbatim environments,
// unwrapped macro passthrough, and the two alignment formatters.
func (t *LatexTransformer) macroBlocks(doc ast.Node, source []byte) {
	for _, n := range collectKind(doc, ast.KindFencedCodeBlock) {
		fcb := n.(*ast.FencedCodeBlock)
		tag := string(fcb.Language(source))
		content := blockText(fcb, source)

		var latex string
		switch {
		case strings.HasPrefix(tag, tagVerb):
			latex = "\\begin{verbatim}\n" + t.macros.Apply(content) + "\n\\end{verbatim}"
		case strings.HasPrefix(tag, tagRawMacro):
			latex = t.macros.Apply(content)
		case strings.HasPrefix(tag, tagAlign):
			latex = t.align.Format(content)
		case strings.HasPrefix(tag, tagIndent):
			latex = t.indent.Format(content)
		default:
			// Unrecognized tag: the block passes through unchanged.
			continue
		}
		replaceNode(n, NewRawLatexBlock(latex))
	}
}

// rawInlines converts "raw "-prefixed code spans into raw LaTeX inlines
// with no substitution.
func (t *LatexTransformer) rawInlines(doc ast.Node, source []byte) {
	for _, n := range collectKind(doc, ast.KindCodeSpan) {
		content := codeSpanText(n, source)
		if !strings.HasPrefix(content, rawInlinePrefix) {
			continue
		}
		replaceNode(n, NewRawLatexInline(strings.TrimPrefix(content, rawInlinePrefix)))
	}
}

// inlineMath wraps every remaining code span as inline math with macro
// substitution applied to the content.
func (t *LatexTransformer) inlineMath(doc ast.Node, source []byte) {
	for _, n := range collectKind(doc, ast.KindCodeSpan) {
		content := codeSpanText(n, source)
		replaceNode(n, NewRawLatexInline("$"+t.macros.Apply(content)+"$"))
	}
}

// collectKind gathers all nodes of the given kind. Collection runs before
// replacement so tree mutation never races the walk.
func collectKind(doc ast.Node, kind ast.NodeKind) []ast.Node {
	var nodes []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			nodes = append(nodes, n)
		}
		return ast.WalkContinue, nil
	})
	return nodes
}

// replaceNode swaps old for new under old's parent.
func replaceNode(old, repl ast.Node) {
	parent := old.Parent()
	if parent != nil {
		parent.ReplaceChild(parent, old, repl)
	}
}

// blockText concatenates a block node's line segments, without the final
// newline.
func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// codeSpanText concatenates a code span's child text segments.
func codeSpanText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
