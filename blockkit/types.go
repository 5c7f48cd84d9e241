// Package blockkit defines the subset of Slack's Block Kit layout schema
// produced by the markdown conversion: header, section, image, and divider
// blocks. The types marshal to the exact wire shape Slack expects, so a
// converted message can be posted without further translation.
package blockkit

// Block type discriminators.
const (
	TypeHeader  = "header"
	TypeSection = "section"
	TypeImage   = "image"
	TypeDivider = "divider"
)

// Text object type discriminators.
const (
	TextPlain  = "plain_text"
	TextMrkdwn = "mrkdwn"
)

// Block is implemented by every layout block emitted by the converter.
type Block interface {
	BlockType() string
}

// TextObject is a Block Kit composition text object, either plain_text or
// mrkdwn depending on the enclosing block.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HeaderBlock renders a single line of large plain text. Header text never
// carries mrkdwn formatting.
type HeaderBlock struct {
	Type string     `json:"type"`
	Text TextObject `json:"text"`
}

// BlockType satisfies Block.
func (HeaderBlock) BlockType() string { return TypeHeader }

// Header constructs a header block around the supplied plain text.
func Header(text string) HeaderBlock {
	return HeaderBlock{
		Type: TypeHeader,
		Text: TextObject{Type: TextPlain, Text: text},
	}
}

// SectionBlock carries a single mrkdwn-formatted text run.
type SectionBlock struct {
	Type string     `json:"type"`
	Text TextObject `json:"text"`
}

// BlockType satisfies Block.
func (SectionBlock) BlockType() string { return TypeSection }

// Section constructs a section block around the supplied mrkdwn text.
func Section(text string) SectionBlock {
	return SectionBlock{
		Type: TypeSection,
		Text: TextObject{Type: TextMrkdwn, Text: text},
	}
}

// ImageBlock embeds an image by URL. Title is omitted from the wire format
// when the source provided none; alt text is always present.
type ImageBlock struct {
	Type     string      `json:"type"`
	ImageURL string      `json:"image_url"`
	Title    *TextObject `json:"title,omitempty"`
	AltText  string      `json:"alt_text"`
}

// BlockType satisfies Block.
func (ImageBlock) BlockType() string { return TypeImage }

// Image constructs an image block. An empty title leaves the optional title
// object unset.
func Image(url, title, alt string) ImageBlock {
	block := ImageBlock{
		Type:     TypeImage,
		ImageURL: url,
		AltText:  alt,
	}
	if title != "" {
		block.Title = &TextObject{Type: TextPlain, Text: title}
	}
	return block
}

// DividerBlock is a content divider with no payload.
type DividerBlock struct {
	Type string `json:"type"`
}

// BlockType satisfies Block.
func (DividerBlock) BlockType() string { return TypeDivider }

// Divider constructs a divider block.
func Divider() DividerBlock {
	return DividerBlock{Type: TypeDivider}
}

// Message wraps an ordered block sequence in the envelope accepted by
// Slack's message APIs.
type Message struct {
	Blocks []Block `json:"blocks"`
}

// NewMessage builds a message envelope around the supplied blocks.
func NewMessage(blocks []Block) Message {
	return Message{Blocks: blocks}
}
