package search

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// EditDistance returns the Levenshtein distance between a and b, counted in
// runes. It is symmetric and deterministic.
func EditDistance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// LCSLength returns the length of the longest common subsequence of a and b.
func LCSLength(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return edlib.LCS(a, b)
}

// TokenOverlapRatio reports the fraction of query tokens that appear as a
// substring of at least one candidate token. Both inputs are split on
// whitespace. An empty query yields 0.
func TokenOverlapRatio(query, candidate string) float64 {
	queryTokens := strings.Fields(query)
	if len(queryTokens) == 0 {
		return 0
	}
	candidateTokens := strings.Fields(candidate)

	matched := 0
	for _, token := range queryTokens {
		for _, candidateToken := range candidateTokens {
			if strings.Contains(candidateToken, token) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(queryTokens))
}

// Similarity scores how alike two strings are on a [0,1] scale. The two
// implementations make different accuracy/cost trade-offs and are selected
// per call site: the search engine wants edit-distance accuracy, the
// categorizer runs over every keyword of every category and wants the cheap
// heuristic.
type Similarity interface {
	Compare(a, b string) float64
}

// EditDistanceSimilarity normalizes Levenshtein distance by the longer
// string's length, then applies two adjustments: a bonus for short strings
// (edit distance over-penalizes them) and a flat containment bonus when the
// strings differ a lot in length but one contains the other.
type EditDistanceSimilarity struct{}

// Compare implements Similarity.
func (EditDistanceSimilarity) Compare(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	maxLen := lenA
	minLen := lenB
	if lenB > lenA {
		maxLen, minLen = lenB, lenA
	}

	similarity := 1 - float64(EditDistance(a, b))/float64(maxLen)

	if maxLen <= 5 {
		similarity += 0.2 * float64(5-maxLen) / 5
		if similarity > 1 {
			similarity = 1
		}
	}

	if float64(minLen)/float64(maxLen) < 0.5 {
		longer, shorter := a, b
		if lenB > lenA {
			longer, shorter = b, a
		}
		if strings.Contains(longer, shorter) {
			similarity += 0.1
			if similarity > 1 {
				similarity = 1
			}
		}
	}

	return similarity
}

// ContainmentHeuristicSimilarity is the lightweight variant used on the
// catalog-categorization hot path. Containment scores by length ratio,
// everything else by character-set intersection. Results are memoized since
// the same keyword/name pairs recur across entries and reloads.
type ContainmentHeuristicSimilarity struct {
	mu    sync.Mutex
	cache map[[2]string]float64
}

// NewContainmentHeuristicSimilarity builds the heuristic with an empty cache.
func NewContainmentHeuristicSimilarity() *ContainmentHeuristicSimilarity {
	return &ContainmentHeuristicSimilarity{cache: make(map[[2]string]float64)}
}

// Compare implements Similarity.
func (s *ContainmentHeuristicSimilarity) Compare(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	key := [2]string{a, b}
	if a > b {
		key = [2]string{b, a}
	}

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached
	}

	score := containmentScore(a, b)

	s.mu.Lock()
	s.cache[key] = score
	s.mu.Unlock()
	return score
}

// CacheSize reports how many string pairs have been memoized.
func (s *ContainmentHeuristicSimilarity) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

func containmentScore(a, b string) float64 {
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	maxLen := lenA
	minLen := lenB
	if lenB > lenA {
		maxLen, minLen = lenB, lenA
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return float64(minLen) / float64(maxLen)
	}

	setA := make(map[rune]struct{}, lenA)
	for _, r := range a {
		setA[r] = struct{}{}
	}
	common := 0
	seen := make(map[rune]struct{}, lenB)
	for _, r := range b {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := setA[r]; ok {
			common++
		}
	}

	return float64(common) / float64(maxLen)
}
