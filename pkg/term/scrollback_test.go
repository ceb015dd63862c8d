package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollback(t *testing.T) {
	b := NewScrollback()
	assert.False(t, b.RemoveLastNormal())

	b.AppendNormal("/tmp/ $ ")
	b.AppendNormal("ls")
	b.AppendError("oops\n")
	b.AppendNormal("")
	b.AppendNormal("é")

	assert.Equal(t, []Span{
		{Style: StyleNormal, Text: "/tmp/ $ ls"},
		{Style: StyleError, Text: "oops\n"},
		{Style: StyleNormal, Text: "é"},
	}, b.Spans())
	assert.Equal(t, 16, b.Len())

	assert.True(t, b.RemoveLastNormal())
	assert.Equal(t, "/tmp/ $ lsoops\n", b.String())
	assert.Equal(t, 15, b.Len())

	// error text is never trimmed; the last normal span is
	assert.True(t, b.RemoveLastNormal())
	assert.Equal(t, "/tmp/ $ loops\n", b.String())
	assert.Equal(t, []Span{
		{Style: StyleNormal, Text: "/tmp/ $ l"},
		{Style: StyleError, Text: "oops\n"},
	}, b.Spans())
}

func TestScrollback_SpansIsCopy(t *testing.T) {
	b := NewScrollback()
	b.AppendNormal("a")
	spans := b.Spans()
	spans[0].Text = "changed"
	assert.Equal(t, "a", b.String())
}
