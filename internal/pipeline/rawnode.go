package pipeline

import "github.com/yuin/goldmark/ast"

// RawLatexBlock is a block node whose content is emitted as LaTeX source
// verbatim. The transformer produces these; later passes and the renderer
// never substitute or rewrap their content.
type RawLatexBlock struct {
	ast.BaseBlock
	Content string
}

// KindRawLatexBlock is the node kind of RawLatexBlock.
var KindRawLatexBlock = ast.NewNodeKind("RawLatexBlock")

// NewRawLatexBlock creates a RawLatexBlock with the given LaTeX content.
func NewRawLatexBlock(content string) *RawLatexBlock {
	return &RawLatexBlock{Content: content}
}

// Kind implements ast.Node.Kind.
func (n *RawLatexBlock) Kind() ast.NodeKind { return KindRawLatexBlock }

// Dump implements ast.Node.Dump.
func (n *RawLatexBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Content": n.Content}, nil)
}

// RawLatexInline is the inline counterpart of RawLatexBlock.
type RawLatexInline struct {
	ast.BaseInline
	Content string
}

// KindRawLatexInline is the node kind of RawLatexInline.
var KindRawLatexInline = ast.NewNodeKind("RawLatexInline")

// NewRawLatexInline creates a RawLatexInline with the given LaTeX content.
func NewRawLatexInline(content string) *RawLatexInline {
	return &RawLatexInline{Content: content}
}

// Kind implements ast.Node.Kind.
func (n *RawLatexInline) Kind() ast.NodeKind { return KindRawLatexInline }

// Dump implements ast.Node.Dump.
func (n *RawLatexInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Content": n.Content}, nil)
}
