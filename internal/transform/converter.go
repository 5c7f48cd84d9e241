package transform

import (
	"github.com/yuin/goldmark/ast"

	"github.com/instantish/mack/blockkit"
	"github.com/instantish/mack/internal/logging"
	"github.com/instantish/mack/pkg/interfaces"
)

// Converter renders document trees into Block Kit blocks. A single Converter
// is safe for concurrent use; it carries only a logger.
type Converter struct {
	logger interfaces.Logger
}

// NewConverter constructs a converter. A nil logger disables logging.
func NewConverter(logger interfaces.Logger) *Converter {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Converter{logger: logger}
}

// Convert applies the per-node handlers to the document's top-level nodes in
// order and flattens their outputs into the final block sequence. The result
// is never nil so an empty document marshals as an empty JSON array.
func (c *Converter) Convert(doc ast.Node, source []byte) []blockkit.Block {
	blocks := []blockkit.Block{}
	if doc == nil {
		return blocks
	}
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		blocks = append(blocks, c.convertNode(node, source)...)
	}
	return blocks
}
