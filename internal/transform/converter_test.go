package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"

	"github.com/instantish/mack/blockkit"
	"github.com/instantish/mack/internal/markdown"
)

func parseDoc(t *testing.T, source string) (ast.Node, []byte) {
	t.Helper()
	doc, err := markdown.NewGoldmarkParser(markdown.Options{}).Parse([]byte(source))
	require.NoError(t, err)
	return doc, []byte(source)
}

func TestConvertEmptyDocument(t *testing.T) {
	doc, source := parseDoc(t, "")

	blocks := NewConverter(nil).Convert(doc, source)

	require.NotNil(t, blocks)
	require.Empty(t, blocks)
}

func TestConvertNilDocument(t *testing.T) {
	blocks := NewConverter(nil).Convert(nil, nil)

	require.NotNil(t, blocks)
	require.Empty(t, blocks)
}

func TestConvertFlattensInDocumentOrder(t *testing.T) {
	doc, source := parseDoc(t, "# Title\n\nHello **world**\n\n---\n")

	blocks := NewConverter(nil).Convert(doc, source)

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(blockkit.HeaderBlock)
	require.True(t, ok)
	require.Equal(t, "Title", header.Text.Text)

	require.Equal(t, "Hello *world*", sectionText(t, blocks[1]))

	_, ok = blocks[2].(blockkit.DividerBlock)
	require.True(t, ok)
}

func TestConvertFencedCodeBlock(t *testing.T) {
	doc, source := parseDoc(t, "```go\nfmt.Println(1)\n```\n")

	blocks := NewConverter(nil).Convert(doc, source)

	require.Len(t, blocks, 1)
	require.Equal(t, "```go\nfmt.Println(1)\n```", sectionText(t, blocks[0]))
}

func TestConvertInlineRawHTMLIsLiteral(t *testing.T) {
	doc, source := parseDoc(t, "hello <b>world</b>\n")

	blocks := NewConverter(nil).Convert(doc, source)

	require.Len(t, blocks, 1)
	require.Equal(t, "hello <b>world</b>", sectionText(t, blocks[0]))
}

func TestConvertDropsUnsupportedBlocks(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"html block", "<div>hi</div>\n"},
		{"table", "| a | b |\n| - | - |\n| 1 | 2 |\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, source := parseDoc(t, tc.source)
			require.Empty(t, NewConverter(nil).Convert(doc, source))
		})
	}
}

func TestConvertBareURLBecomesLink(t *testing.T) {
	doc, source := parseDoc(t, "visit https://example.com now\n")

	blocks := NewConverter(nil).Convert(doc, source)

	require.Len(t, blocks, 1)
	require.Equal(t, "visit <https://example.com|https://example.com>  now", sectionText(t, blocks[0]))
}

func TestConvertSoftLineBreakContributesNothing(t *testing.T) {
	doc, source := parseDoc(t, "line one\nline two\n")

	blocks := NewConverter(nil).Convert(doc, source)

	require.Len(t, blocks, 1)
	require.Equal(t, "line oneline two", sectionText(t, blocks[0]))
}
