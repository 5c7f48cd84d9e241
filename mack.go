// Package mack converts markdown documents into Slack Block Kit messages.
// Markdown source is parsed into a goldmark document tree and transformed,
// block-level node by block-level node, into an ordered sequence of header,
// section, image, and divider blocks ready to post through Slack's message
// APIs.
package mack

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/yuin/goldmark/ast"

	"github.com/instantish/mack/blockkit"
	"github.com/instantish/mack/internal/logging"
	"github.com/instantish/mack/internal/transform"
)

// Block kinds re-exported for consumers of the root package.
type (
	Block        = blockkit.Block
	HeaderBlock  = blockkit.HeaderBlock
	SectionBlock = blockkit.SectionBlock
	ImageBlock   = blockkit.ImageBlock
	DividerBlock = blockkit.DividerBlock
	TextObject   = blockkit.TextObject
	Message      = blockkit.Message
)

const parseFailedCode = "MARKDOWN_PARSE_FAILED"

// Convert parses markdown source and renders it into an ordered Block Kit
// sequence. At most one Config may be supplied; omitting it uses the GFM
// parser defaults with logging disabled.
func Convert(source []byte, cfg ...Config) ([]blockkit.Block, error) {
	config := resolveConfig(cfg)

	doc, err := config.parser().Parse(source)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "parse markdown source").
			WithTextCode(parseFailedCode)
	}

	return ConvertDocument(doc, source, config), nil
}

// ConvertDocument renders an already parsed document tree against its source
// bytes. The transformation is a pure function over the tree: it never
// fails, concurrent calls need no coordination, and node kinds outside the
// supported set contribute no output.
func ConvertDocument(doc ast.Node, source []byte, cfg ...Config) []blockkit.Block {
	config := resolveConfig(cfg)
	converter := transform.NewConverter(logging.TransformLogger(config.Logger))
	return converter.Convert(doc, source)
}

// NewMessage wraps a converted block sequence in the envelope accepted by
// Slack's message APIs.
func NewMessage(blocks []blockkit.Block) Message {
	return blockkit.NewMessage(blocks)
}
