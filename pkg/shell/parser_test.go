package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "command with multiple arguments",
			input:    "ls -la /home/user",
			expected: []string{"ls", "-la", "/home/user"},
		},
		{
			name:     "quotes are literal",
			input:    "echo 'hello world'",
			expected: []string{"echo", "'hello", "world'"},
		},
		{
			name:     "backslash is literal",
			input:    `echo hello\ world`,
			expected: []string{"echo", `hello\`, "world"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only whitespace",
			input:    "   \t  \n  ",
			expected: []string{},
		},
		{
			name:     "multiple spaces and tabs between arguments",
			input:    "  echo    hello \t world  ",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "pipe and redirection characters are plain tokens",
			input:    "cat a.txt | grep x > out",
			expected: []string{"cat", "a.txt", "|", "grep", "x", ">", "out"},
		},
		{
			name:     "unicode arguments",
			input:    "echo héllo 世界",
			expected: []string{"echo", "héllo", "世界"},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			parser := NewDefaultParser()
			res, err := parser.Parse(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res, "input: %q", tt.input)

		})

	}

}
