package search

import "strings"

// punctuation stripped from queries and candidate names before matching.
// Full-width marks are included since most catalog titles are Chinese.
const punctuation = `.,;:!?"'()[]{}` + "，。；：！？“”‘’（）【】《》、·…"

// Normalize lowercases text, removes common punctuation and collapses
// whitespace runs into single spaces. It is idempotent, so candidate names
// that were normalized at load time can safely pass through again.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var builder strings.Builder
	builder.Grow(len(lowered))
	for _, r := range lowered {
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		builder.WriteRune(r)
	}

	return strings.Join(strings.Fields(builder.String()), " ")
}

// Tokenize splits normalized text into its non-empty whitespace-delimited words.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
