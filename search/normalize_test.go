package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Dark Souls",
			expected: "dark souls",
		},
		{
			name:     "strips punctuation",
			input:    `"hello, world!"`,
			expected: "hello world",
		},
		{
			name:     "strips full-width punctuation",
			input:    "生化危机：村庄",
			expected: "生化危机村庄",
		},
		{
			name:     "collapses whitespace",
			input:    "  dark \t souls   3 ",
			expected: "dark souls 3",
		},
		{
			name:     "punctuation only",
			input:    "?!.,",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed chinese and latin",
			input:    "赛博朋克2077 (豪华版)",
			expected: "赛博朋克2077 豪华版",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Dark Souls III", "生化危机：村庄", "  mixed 文本, here  "}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"dark", "souls", "3"}, Tokenize("dark souls 3"))
	assert.Empty(t, Tokenize("   "))
	assert.Empty(t, Tokenize(""))
}
