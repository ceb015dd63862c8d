package term

import (
	"strings"
	"unicode/utf8"
)

type Style int

const (
	StyleNormal Style = iota
	StyleError
)

type Span struct {
	Style Style
	Text  string
}

// Scrollback is an in-memory Sink that keeps text as styled spans. Consecutive
// appends with the same style share a span.
type Scrollback struct {
	spans  []Span
	length int
}

func NewScrollback() *Scrollback {
	return &Scrollback{}
}

func (b *Scrollback) AppendNormal(text string) {
	b.append(StyleNormal, text)
}

func (b *Scrollback) AppendError(text string) {
	b.append(StyleError, text)
}

func (b *Scrollback) append(style Style, text string) {
	if text == "" {
		return
	}

	b.length += utf8.RuneCountInString(text)

	if n := len(b.spans); n > 0 && b.spans[n-1].Style == style {
		b.spans[n-1].Text += text
		return
	}

	b.spans = append(b.spans, Span{Style: style, Text: text})
}

// RemoveLastNormal drops the last character of normal-styled text.
func (b *Scrollback) RemoveLastNormal() bool {
	for i := len(b.spans) - 1; i >= 0; i-- {
		if b.spans[i].Style != StyleNormal {
			continue
		}

		_, size := utf8.DecodeLastRuneInString(b.spans[i].Text)
		b.spans[i].Text = b.spans[i].Text[:len(b.spans[i].Text)-size]
		b.length--

		if b.spans[i].Text == "" {
			b.spans = append(b.spans[:i], b.spans[i+1:]...)
		}
		return true
	}

	return false
}

// Len is the number of characters held, across both styles.
func (b *Scrollback) Len() int {
	return b.length
}

// Spans returns a copy of the styled spans in arrival order.
func (b *Scrollback) Spans() []Span {
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return out
}

func (b *Scrollback) String() string {
	var sb strings.Builder
	for _, span := range b.spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}
