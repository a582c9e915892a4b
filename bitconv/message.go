package bitconv

import "strings"

// Kind tags how Message content is decoded into bytes.
type Kind int

const (
	// KindBytes passes raw bytes through unchanged.
	KindBytes Kind = iota + 1

	// KindHexText decodes hex text, with an optional 0x prefix.
	KindHexText

	// KindPlainText takes the UTF-8 bytes of the text.
	KindPlainText
)

// Message is input material tagged with an explicit decode rule. The caller
// picks the rule when constructing the value; nothing is guessed from the
// content, so hex-looking plain text and real hex digests never collide.
type Message struct {
	kind Kind
	data []byte
	text string
}

// Bytes tags raw bytes.
func Bytes(data []byte) Message { return Message{kind: KindBytes, data: data} }

// HexText tags hex-encoded text. An optional "0x" prefix is stripped.
func HexText(s string) Message { return Message{kind: KindHexText, text: s} }

// PlainText tags literal text; Decode returns its UTF-8 bytes.
func PlainText(s string) Message { return Message{kind: KindPlainText, text: s} }

// Kind returns the decode rule the message was constructed with.
func (m Message) Kind() Kind { return m.kind }

// Decode resolves the message to bytes according to its kind.
func (m Message) Decode() ([]byte, error) {
	switch m.kind {
	case KindBytes:
		return m.data, nil
	case KindHexText:
		return HexToBytes(strings.TrimPrefix(m.text, "0x"))
	case KindPlainText:
		return []byte(m.text), nil
	}
	return nil, ErrUnknownKind
}
