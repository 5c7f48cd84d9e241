package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/instantish/mack/pkg/interfaces"
)

// Options controls which goldmark extensions participate in parsing.
// Extension names are matched case-insensitively against the registry below;
// unknown names are ignored.
type Options struct {
	Extensions []string
}

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. The parser is stateless so callers can reuse a single instance
// across requests without additional locking.
type GoldmarkParser struct {
	defaultOptions Options
}

// NewGoldmarkParser constructs a parser with sensible defaults (GFM plus
// linkify and task lists). Callers can override behaviour per invocation
// through ParseWithOptions.
func NewGoldmarkParser(defaults Options) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// Parse satisfies interfaces.MarkdownParser by producing the document tree
// for the supplied source using the parser's default configuration.
func (p *GoldmarkParser) Parse(source []byte) (ast.Node, error) {
	return p.ParseWithOptions(source, p.defaultOptions)
}

// ParseWithOptions produces the document tree using the provided options.
// goldmark's parser is total over byte input, so the error return exists for
// the interface contract and future front-ends rather than this engine.
func (p *GoldmarkParser) ParseWithOptions(source []byte, opts Options) (ast.Node, error) {
	engine := newGoldmarkEngine(opts)
	doc := engine.Parser().Parse(text.NewReader(source))
	return doc, nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured from the supplied
// options. Only the parser half of the engine is used.
func newGoldmarkEngine(opts Options) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	engineOptions := []goldmark.Option{}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
		}
	}

	return extenders
}
