package transform

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/instantish/mack/blockkit"
)

// accumulator folds the inline children of one paragraph-like container into
// as few section blocks as possible. Images are emitted as standalone image
// blocks and break the fold: text accumulation resumes independently after
// each one. The prefix seeds every newly started section (the first one, or
// the one following an image) and is never re-applied on a merge.
type accumulator struct {
	source []byte
	prefix string
	blocks []blockkit.Block
	text   strings.Builder
	open   bool
}

func newAccumulator(source []byte, prefix string) *accumulator {
	return &accumulator{source: source, prefix: prefix}
}

// add consumes the next inline node in document order.
func (a *accumulator) add(node ast.Node) {
	if img, ok := node.(*ast.Image); ok {
		a.flush()
		a.blocks = append(a.blocks, imageBlock(img, a.source))
		return
	}

	if !a.open {
		a.text.WriteString(a.prefix)
		a.open = true
	}
	a.text.WriteString(mrkdwn(node, a.source))
}

// flush closes the pending section, if any.
func (a *accumulator) flush() {
	if !a.open {
		return
	}
	a.blocks = append(a.blocks, blockkit.Section(a.text.String()))
	a.text.Reset()
	a.open = false
}

// result closes the pending section and returns the accumulated entries.
func (a *accumulator) result() []blockkit.Block {
	a.flush()
	return a.blocks
}

// accumulateInline runs the fold over a container's inline children.
func accumulateInline(parent ast.Node, source []byte, prefix string) []blockkit.Block {
	acc := newAccumulator(source, prefix)
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		acc.add(child)
	}
	return acc.result()
}

// imageBlock builds the standalone image entry for an inline image. Alt text
// falls back from the image's literal alt content to its title to its URL, so
// the block always carries a non-empty alt_text for any non-empty URL.
func imageBlock(img *ast.Image, source []byte) blockkit.ImageBlock {
	url := string(img.Destination)
	title := string(img.Title)

	alt := plainChildren(img, source)
	if alt == "" {
		alt = title
	}
	if alt == "" {
		alt = url
	}

	return blockkit.Image(url, title, alt)
}
