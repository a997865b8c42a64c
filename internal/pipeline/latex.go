package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// sectionCommands maps heading levels 1..6 to LaTeX sectioning commands.
var sectionCommands = []string{
	"section",
	"subsection",
	"subsubsection",
	"paragraph",
	"subparagraph",
	"subparagraph",
}

// LatexRenderer serializes the transformed document tree to LaTeX source.
// It implements renderer.NodeRenderer for every node kind produced by the
// parser configuration, including the raw LaTeX kinds introduced by
// LatexTransformer.
//
// Prose text is emitted verbatim: the macro layer inserts LaTeX commands
// into text content, so escaping here would corrupt its output. Source
// documents are authored as LaTeX-ready prose.
type LatexRenderer struct{}

// NewLatexRenderer creates a LatexRenderer.
func NewLatexRenderer() *LatexRenderer {
	return &LatexRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *LatexRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	// blocks
	reg.Register(ast.KindDocument, r.renderNoop)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderSkip)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindTextBlock, r.renderTextBlock)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)

	// inlines
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindRawHTML, r.renderSkip)
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)

	// GFM extensions
	reg.Register(extast.KindTable, r.renderTable)
	reg.Register(extast.KindTableHeader, r.renderTableHeader)
	reg.Register(extast.KindTableRow, r.renderTableRow)
	reg.Register(extast.KindTableCell, r.renderTableCell)
	reg.Register(extast.KindStrikethrough, r.renderStrikethrough)

	// raw LaTeX nodes
	reg.Register(KindRawLatexBlock, r.renderRawLatexBlock)
	reg.Register(KindRawLatexInline, r.renderRawLatexInline)
}

func (r *LatexRenderer) renderNoop(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}

// renderSkip drops a node and its children entirely. HTML blocks and raw
// HTML (including the preprocessor's structural marker comments) have no
// LaTeX counterpart.
func (r *LatexRenderer) renderSkip(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		_, _ = w.WriteString("\\" + sectionCommands[n.Level-1] + "{")
	} else {
		_, _ = w.WriteString("}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderBlockquote(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\begin{quote}\n")
	} else {
		_, _ = w.WriteString("\\end{quote}\n\n")
	}
	return ast.WalkContinue, nil
}

// renderCodeBlock handles untagged code blocks (indented, or fenced with an
// unrecognized annotation): a plain verbatim environment, no substitution.
func (r *LatexRenderer) renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("\\begin{verbatim}\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		_, _ = w.Write(seg.Value(source))
	}
	_, _ = w.WriteString("\\end{verbatim}\n\n")
	return ast.WalkSkipChildren, nil
}

func (r *LatexRenderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	env := "itemize"
	if n.IsOrdered() {
		env = "enumerate"
	}
	if entering {
		_, _ = w.WriteString("\\begin{" + env + "}\n")
	} else {
		_, _ = w.WriteString("\\end{" + env + "}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderListItem(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\item ")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderParagraph(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("\n\n")
	}
	return ast.WalkContinue, nil
}

// renderTextBlock closes the tight list item content line.
func (r *LatexRenderer) renderTextBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderThematicBreak(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\noindent\\hrulefill\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	_, _ = w.WriteString("\\url{")
	_, _ = w.Write(n.URL(source))
	_, _ = w.WriteString("}")
	return ast.WalkSkipChildren, nil
}

// renderCodeSpan is a fallback for code spans that reach the renderer
// untransformed (the transformer normally rewrites every span).
func (r *LatexRenderer) renderCodeSpan(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\texttt{")
	} else {
		_, _ = w.WriteString("}")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	cmd := "\\emph{"
	if n.Level == 2 {
		cmd = "\\textbf{"
	}
	if entering {
		_, _ = w.WriteString(cmd)
	} else {
		_, _ = w.WriteString("}")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	_, _ = w.WriteString("\\includegraphics{")
	_, _ = w.Write(n.Destination)
	_, _ = w.WriteString("}")
	return ast.WalkSkipChildren, nil
}

func (r *LatexRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.Link)
		_, _ = w.WriteString("\\href{")
		_, _ = w.Write(n.Destination)
		_, _ = w.WriteString("}{")
	} else {
		_, _ = w.WriteString("}")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	_, _ = w.Write(n.Segment.Value(source))
	switch {
	case n.HardLineBreak():
		_, _ = w.WriteString(" \\\\\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderString(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.String)
		_, _ = w.Write(n.Value)
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*extast.Table)
		_, _ = w.WriteString("\\begin{tabular}{" + strings.Repeat("l", len(n.Alignments)) + "}\n")
	} else {
		_, _ = w.WriteString("\\end{tabular}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderTableHeader(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString(" \\\\\n\\hline\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderTableRow(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString(" \\\\\n")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderTableCell(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering && n.PreviousSibling() != nil {
		_, _ = w.WriteString(" & ")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderStrikethrough(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\sout{")
	} else {
		_, _ = w.WriteString("}")
	}
	return ast.WalkContinue, nil
}

func (r *LatexRenderer) renderRawLatexBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*RawLatexBlock)
		_, _ = w.WriteString(n.Content)
		_, _ = w.WriteString("\n\n")
	}
	return ast.WalkSkipChildren, nil
}

func (r *LatexRenderer) renderRawLatexInline(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*RawLatexInline)
		_, _ = w.WriteString(n.Content)
	}
	return ast.WalkSkipChildren, nil
}
