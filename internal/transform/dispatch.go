package transform

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/instantish/mack/blockkit"
)

// Line prefixes applied by the list and blockquote handlers.
const (
	quotePrefix     = "> "
	bulletPrefix    = "• "
	checkedPrefix   = ":ballot_box_with_check: "
	uncheckedPrefix = ":negative_squared_cross_mark: "
)

// convertNode maps one block-level node to its output blocks. Kinds outside
// the supported set contribute nothing.
func (c *Converter) convertNode(node ast.Node, source []byte) []blockkit.Block {
	switch n := node.(type) {
	case *ast.Heading:
		return []blockkit.Block{blockkit.Header(plainChildren(n, source))}
	case *ast.Paragraph:
		return accumulateInline(n, source, "")
	case *ast.FencedCodeBlock:
		return []blockkit.Block{blockkit.Section(fencedText(string(n.Language(source)), rawLines(n, source)))}
	case *ast.CodeBlock:
		return []blockkit.Block{blockkit.Section(fencedText("", rawLines(n, source)))}
	case *ast.Blockquote:
		return c.convertBlockquote(n, source)
	case *ast.List:
		return c.convertList(n, source)
	case *ast.ThematicBreak:
		return []blockkit.Block{blockkit.Divider()}
	default:
		c.logger.Debug("dropping unsupported block node", "node_kind", node.Kind().String())
		return nil
	}
}

// convertBlockquote accumulates each paragraph child of the quote with the
// quote prefix. Non-paragraph content nested inside a quote is dropped; each
// paragraph starts its own accumulation so every quoted paragraph becomes at
// least one prefixed section.
func (c *Converter) convertBlockquote(quote *ast.Blockquote, source []byte) []blockkit.Block {
	var blocks []blockkit.Block
	for child := quote.FirstChild(); child != nil; child = child.NextSibling() {
		para, ok := child.(*ast.Paragraph)
		if !ok {
			c.logger.Debug("dropping non-paragraph blockquote content", "node_kind", child.Kind().String())
			continue
		}
		blocks = append(blocks, accumulateInline(para, source, quotePrefix)...)
	}
	return blocks
}

// convertList reduces a list to a single section whose text holds one line
// per item. An item whose first child is not paragraph content contributes an
// empty line. The ordered index increments once per item regardless of
// skipped items and always starts at 1; only the presence of an ordered
// marker is consulted, never the source's declared start value.
func (c *Converter) convertList(list *ast.List, source []byte) []blockkit.Block {
	var (
		lines []string
		index int
	)

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if list.IsOrdered() {
			index++
		}

		line, checked, ok := listItemLine(item, source)
		if !ok {
			lines = append(lines, "")
			continue
		}

		switch {
		case checked != nil && *checked:
			line = checkedPrefix + line
		case checked != nil:
			line = uncheckedPrefix + line
		case list.IsOrdered():
			line = strconv.Itoa(index) + ". " + line
		default:
			line = bulletPrefix + line
		}
		lines = append(lines, line)
	}

	return []blockkit.Block{blockkit.Section(strings.Join(lines, "\n"))}
}

// listItemLine renders an item's first paragraph into a single mrkdwn line.
// A task-list checkbox is consumed for its checked state rather than
// rendered, and inline images inside list items are skipped. ok is false
// when the item's first child is not paragraph content.
func listItemLine(item ast.Node, source []byte) (line string, checked *bool, ok bool) {
	first := item.FirstChild()
	if !isParagraphContent(first) {
		return "", nil, false
	}

	var sb strings.Builder
	for child := first.FirstChild(); child != nil; child = child.NextSibling() {
		if box, isBox := child.(*east.TaskCheckBox); isBox {
			state := box.IsChecked
			checked = &state
			continue
		}
		if _, isImage := child.(*ast.Image); isImage {
			continue
		}
		sb.WriteString(mrkdwn(child, source))
	}
	return sb.String(), checked, true
}

// isParagraphContent reports whether a node carries the inline content of a
// list item. goldmark emits TextBlock for tight items and Paragraph for
// loose ones.
func isParagraphContent(node ast.Node) bool {
	switch node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return true
	default:
		return false
	}
}

// fencedText wraps literal code in a triple-backtick fence, embedding the
// language tag (possibly empty) on the opening line.
func fencedText(language, code string) string {
	return "```" + language + "\n" + code + "```"
}

// rawLines concatenates a block node's raw source lines verbatim.
func rawLines(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
