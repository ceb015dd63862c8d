package shell

import (
	"io"
	"strings"
	"unicode"
)

// DefaultParser splits a line into argv on runs of whitespace. Quotes and
// backslashes have no special meaning and stay part of the token.
type DefaultParser struct {
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultParser() *DefaultParser {
	d := &DefaultParser{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	return &tokenBuffer{builder: builder}
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flushIfNotEmpty(args []string) []string {
	if tokenBuffer.builder.Len() == 0 {
		return args
	}

	args = append(args, tokenBuffer.builder.String())
	tokenBuffer.builder.Reset()

	return args
}

func (p *DefaultParser) Parse(line string) ([]string, error) {
	runeReader := p.newReader(line)
	tokenBuffer := newTokenBuffer(p.newBuilder())

	args := []string{}

	for {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if unicode.IsSpace(ch) {
			args = tokenBuffer.flushIfNotEmpty(args)
			continue
		}

		tokenBuffer.appendRune(ch)
	}

	return tokenBuffer.flushIfNotEmpty(args), nil

}
