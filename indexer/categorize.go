package indexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fenlinghub/trainerdex/models"
	"github.com/fenlinghub/trainerdex/search"
)

// TitleOverride pins a franchise keyword to a category. Overrides run before
// keyword scoring because some franchises would be misfiled by it: nothing in
// "黑暗之魂" reads as an action keyword.
type TitleOverride struct {
	Keyword  string
	Category string
}

// CategoryRule holds one category label and the keywords that vote for it.
type CategoryRule struct {
	Label    string
	Keywords []string
}

// CategorizerConfig is the full rule set a Categorizer runs on. Immutable
// after construction; tests inject reduced tables.
type CategorizerConfig struct {
	Overrides []TitleOverride
	Rules     []CategoryRule
	// Fallbacks are tried in order when keyword scoring stays below
	// ScoreThreshold and the name contains a digit.
	Fallbacks      []TitleOverride
	ScoreThreshold float64

	// Similarity scores keyword/name pairs on the hot path; defaults to the
	// memoized containment heuristic.
	Similarity search.Similarity

	// SimilarityThreshold gates the fuzzy keyword contribution,
	// MaxLengthDelta pre-filters pairs too different in length to bother.
	SimilarityThreshold float64
	MaxLengthDelta      int
}

// Categorizer assigns one of a fixed set of genre labels to a game name.
type Categorizer struct {
	cfg CategorizerConfig
}

// NewCategorizer builds a categorizer; zero-value config fields fall back to
// defaults.
func NewCategorizer(cfg CategorizerConfig) *Categorizer {
	if cfg.Similarity == nil {
		cfg.Similarity = search.NewContainmentHeuristicSimilarity()
	}
	if cfg.ScoreThreshold == 0 {
		cfg.ScoreThreshold = 0.5
	}
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = 0.7
	}
	if cfg.MaxLengthDelta == 0 {
		cfg.MaxLengthDelta = 5
	}
	return &Categorizer{cfg: cfg}
}

// Categorize maps a cleaned game name to a category label. Pure: the same
// name always yields the same label.
func (c *Categorizer) Categorize(name string) string {
	normalized := search.Normalize(name)
	if normalized == "" {
		return models.CategoryOther
	}

	for _, override := range c.cfg.Overrides {
		if strings.Contains(normalized, strings.ToLower(override.Keyword)) {
			return override.Category
		}
	}

	if label, ok := c.bestKeywordCategory(normalized); ok {
		return label
	}

	if containsDigit(normalized) {
		for _, fallback := range c.cfg.Fallbacks {
			if strings.Contains(normalized, strings.ToLower(fallback.Keyword)) {
				return fallback.Category
			}
		}
	}

	return models.CategoryOther
}

// bestKeywordCategory accumulates a score per category across its keywords
// and returns the winner if it clears the threshold.
func (c *Categorizer) bestKeywordCategory(name string) (string, bool) {
	nameLen := utf8.RuneCountInString(name)

	bestLabel := ""
	bestScore := 0.0

	for _, rule := range c.cfg.Rules {
		score := 0.0
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(keyword)

			if name == keyword {
				score += 3
				continue
			}

			keywordLen := utf8.RuneCountInString(keyword)
			if strings.Contains(name, keyword) {
				// Longer keywords are stronger evidence; short common
				// substrings would otherwise flood the score.
				score += 1 + min(1, float64(keywordLen)/10)
			}

			delta := nameLen - keywordLen
			if delta < 0 {
				delta = -delta
			}
			if delta < c.cfg.MaxLengthDelta {
				if sim := c.cfg.Similarity.Compare(name, keyword); sim > c.cfg.SimilarityThreshold {
					score += sim * 0.5
				}
			}
		}

		if score > bestScore {
			bestScore = score
			bestLabel = rule.Label
		}
	}

	if bestScore > c.cfg.ScoreThreshold {
		return bestLabel, true
	}
	return "", false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
