package search

import (
	"strings"
	"sync"

	"github.com/mozillazg/go-pinyin"
)

// PinyinLibTransliterator romanizes text through the go-pinyin dictionary,
// trading the table transliterator's curated readings for full character
// coverage. Non-Chinese runes pass through unchanged, matching the table
// implementation's contract.
//
// Conversions are cached per input string since the same catalog names are
// transliterated on every search pass.
type PinyinLibTransliterator struct {
	args pinyin.Args

	mu       sync.RWMutex
	full     map[string]string
	initials map[string]string
}

// NewPinyinLibTransliterator builds a dictionary-backed transliterator.
func NewPinyinLibTransliterator() *PinyinLibTransliterator {
	return &PinyinLibTransliterator{
		args:     pinyin.NewArgs(),
		full:     make(map[string]string),
		initials: make(map[string]string),
	}
}

func isChineseRune(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// ToPinyin implements Transliterator.
func (t *PinyinLibTransliterator) ToPinyin(text string) string {
	if text == "" {
		return ""
	}

	t.mu.RLock()
	cached, ok := t.full[text]
	t.mu.RUnlock()
	if ok {
		return cached
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if isChineseRune(r) {
			if syllables := pinyin.LazyPinyin(string(r), t.args); len(syllables) > 0 {
				builder.WriteString(syllables[0])
				builder.WriteByte(' ')
				continue
			}
		}
		builder.WriteRune(r)
	}

	result := strings.TrimSpace(builder.String())

	t.mu.Lock()
	t.full[text] = result
	t.mu.Unlock()
	return result
}

// FirstLetters implements Transliterator.
func (t *PinyinLibTransliterator) FirstLetters(text string) string {
	if text == "" {
		return ""
	}

	t.mu.RLock()
	cached, ok := t.initials[text]
	t.mu.RUnlock()
	if ok {
		return cached
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if isChineseRune(r) {
			if syllables := pinyin.LazyPinyin(string(r), t.args); len(syllables) > 0 {
				builder.WriteByte(syllables[0][0])
				continue
			}
		}
		builder.WriteRune(r)
	}

	result := strings.ToLower(builder.String())

	t.mu.Lock()
	t.initials[text] = result
	t.mu.Unlock()
	return result
}
