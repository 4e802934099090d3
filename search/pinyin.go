package search

import "strings"

// Transliterator converts Chinese text into romanized (pinyin) form for
// Latin-alphabet matching against Chinese titles.
type Transliterator interface {
	// ToPinyin returns the romanization of text with a space after each
	// recognized syllable. Unrecognized runes pass through unchanged.
	ToPinyin(text string) string

	// FirstLetters returns the lowercase initial of each recognized syllable,
	// supporting abbreviation queries such as "wzry".
	FirstLetters(text string) string
}

// TableTransliterator romanizes text with a static lookup table. Two-rune
// sequences are preferred over single runes so that compound words keep the
// reading they have in context. Runes missing from the table pass through
// verbatim; the table is deliberately finite and tuned to game-title
// vocabulary rather than full-language coverage.
type TableTransliterator struct {
	table map[string]string
}

// NewTableTransliterator builds a transliterator over the given table.
// A nil table selects DefaultPinyinTable.
func NewTableTransliterator(table map[string]string) *TableTransliterator {
	if table == nil {
		table = DefaultPinyinTable()
	}
	return &TableTransliterator{table: table}
}

// ToPinyin implements Transliterator.
func (t *TableTransliterator) ToPinyin(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	var builder strings.Builder
	builder.Grow(len(text))

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if syllables, ok := t.table[string(runes[i:i+2])]; ok {
				builder.WriteString(syllables)
				builder.WriteByte(' ')
				i += 2
				continue
			}
		}

		if syllable, ok := t.table[string(runes[i])]; ok {
			builder.WriteString(syllable)
			builder.WriteByte(' ')
		} else {
			builder.WriteRune(runes[i])
		}
		i++
	}

	return strings.TrimSpace(builder.String())
}

// FirstLetters implements Transliterator.
func (t *TableTransliterator) FirstLetters(text string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	var builder strings.Builder
	builder.Grow(len(runes))

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if syllables, ok := t.table[string(runes[i:i+2])]; ok {
				builder.WriteByte(syllables[0])
				i += 2
				continue
			}
		}

		if syllable, ok := t.table[string(runes[i])]; ok {
			builder.WriteByte(syllable[0])
		} else {
			builder.WriteRune(runes[i])
		}
		i++
	}

	return strings.ToLower(builder.String())
}
