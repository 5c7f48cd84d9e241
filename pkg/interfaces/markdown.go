package interfaces

import "github.com/yuin/goldmark/ast"

// MarkdownParser produces a document tree from raw markdown source. The
// returned node is the document root whose top-level children are the
// block-level nodes the converter dispatches on.
type MarkdownParser interface {
	Parse(source []byte) (ast.Node, error)
}
