package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableTransliteratorToPinyin(t *testing.T) {
	transliter := NewTableTransliterator(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single runes",
			input:    "王者荣耀",
			expected: "wang zhe rong yao",
		},
		{
			name:     "bigram preferred over single runes",
			input:    "游戏",
			expected: "youxi",
		},
		{
			name:     "latin passthrough",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "mixed chinese and digits",
			input:    "生化危机4",
			expected: "sheng hua wei ji 4",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transliter.ToPinyin(tt.input))
		})
	}
}

func TestTableTransliteratorFirstLetters(t *testing.T) {
	transliter := NewTableTransliterator(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "initialism of a four-syllable title",
			input:    "王者荣耀",
			expected: "wzry",
		},
		{
			name:     "bigram contributes one initial",
			input:    "游戏",
			expected: "y",
		},
		{
			name:     "latin runes kept and lowercased",
			input:    "DOOM",
			expected: "doom",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, transliter.FirstLetters(tt.input))
		})
	}
}

func TestTableTransliteratorCustomTable(t *testing.T) {
	transliter := NewTableTransliterator(map[string]string{
		"猫": "mao",
		"狗": "gou",
	})

	assert.Equal(t, "mao gou", transliter.ToPinyin("猫狗"))
	assert.Equal(t, "mg", transliter.FirstLetters("猫狗"))
	// Runes outside the custom table pass through verbatim.
	assert.Equal(t, "mao 鱼", transliter.ToPinyin("猫鱼"))
}

func TestPinyinLibTransliterator(t *testing.T) {
	transliter := NewPinyinLibTransliterator()

	assert.Equal(t, "ni hao", transliter.ToPinyin("你好"))
	assert.Equal(t, "nh", transliter.FirstLetters("你好"))
	assert.Equal(t, "hello", transliter.ToPinyin("hello"))

	// Second lookup comes from the cache and must agree with the first.
	assert.Equal(t, "ni hao", transliter.ToPinyin("你好"))
	assert.Equal(t, "nh", transliter.FirstLetters("你好"))
}
