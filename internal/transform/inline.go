package transform

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mrkdwn renders an inline node and its descendants into Slack's mrkdwn
// dialect. Unrecognized inline kinds render as the empty string.
func mrkdwn(node ast.Node, source []byte) string {
	switch n := node.(type) {
	case *ast.Text:
		return string(n.Segment.Value(source))
	case *ast.String:
		return string(n.Value)
	case *ast.CodeSpan:
		return "`" + literalChildren(n, source) + "`"
	case *ast.Emphasis:
		if n.Level == 2 {
			return "*" + mrkdwnChildren(n, source) + "*"
		}
		return "_" + mrkdwnChildren(n, source) + "_"
	case *east.Strikethrough:
		return "~" + mrkdwnChildren(n, source) + "~"
	case *ast.Link:
		// The trailing space after the closing bracket is required by
		// Slack's renderer; keep it.
		return "<" + string(n.Destination) + "|" + mrkdwnChildren(n, source) + "> "
	case *ast.AutoLink:
		url := string(n.URL(source))
		return "<" + url + "|" + url + "> "
	case *ast.RawHTML:
		return segmentsValue(n.Segments, source)
	default:
		return ""
	}
}

// mrkdwnChildren concatenates the mrkdwn rendering of a node's children in
// document order.
func mrkdwnChildren(parent ast.Node, source []byte) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(mrkdwn(child, source))
	}
	return sb.String()
}

// plainText concatenates only the literal text of a node and its
// descendants. Markup wrappers contribute their children's text without
// markers, line breaks contribute nothing, and an image contributes its
// title when present, its URL otherwise. Used for header blocks, which
// cannot carry mrkdwn.
func plainText(node ast.Node, source []byte) string {
	switch n := node.(type) {
	case *ast.Text:
		return string(n.Segment.Value(source))
	case *ast.String:
		return string(n.Value)
	case *ast.CodeSpan:
		return literalChildren(n, source)
	case *ast.RawHTML:
		return segmentsValue(n.Segments, source)
	case *ast.AutoLink:
		return string(n.URL(source))
	case *ast.Image:
		if len(n.Title) > 0 {
			return string(n.Title)
		}
		return string(n.Destination)
	default:
		return plainChildren(node, source)
	}
}

// plainChildren concatenates the plain text of a node's children in document
// order.
func plainChildren(parent ast.Node, source []byte) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(plainText(child, source))
	}
	return sb.String()
}

// literalChildren collects the raw text segments under a node, used for code
// spans where the value must pass through verbatim.
func literalChildren(parent ast.Node, source []byte) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
	}
	return sb.String()
}

func segmentsValue(segments *text.Segments, source []byte) string {
	if segments == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
