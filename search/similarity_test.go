package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "identical",
			a:        "souls",
			b:        "souls",
			expected: 0,
		},
		{
			name:     "single substitution",
			a:        "dark",
			b:        "dork",
			expected: 1,
		},
		{
			name:     "insertion",
			a:        "soul",
			b:        "souls",
			expected: 1,
		},
		{
			name:     "empty against non-empty",
			a:        "",
			b:        "abc",
			expected: 3,
		},
		{
			name:     "counted in runes not bytes",
			a:        "生化危机",
			b:        "生化危急",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EditDistance(tt.a, tt.b))
			// Symmetry holds for every pair.
			assert.Equal(t, EditDistance(tt.a, tt.b), EditDistance(tt.b, tt.a))
		})
	}
}

func TestLCSLength(t *testing.T) {
	assert.Equal(t, 4, LCSLength("赛博朋克", "赛博朋克2077"))
	assert.Equal(t, 3, LCSLength("abcdef", "ace"))
	assert.Equal(t, 0, LCSLength("", "abc"))
	assert.Equal(t, 0, LCSLength("abc", ""))
}

func TestTokenOverlapRatio(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		expected  float64
	}{
		{
			name:      "all tokens found",
			query:     "dark souls",
			candidate: "dark souls 3",
			expected:  1,
		},
		{
			name:      "partial token as substring",
			query:     "soul",
			candidate: "dark souls",
			expected:  1,
		},
		{
			name:      "half the tokens",
			query:     "dark ring",
			candidate: "dark souls",
			expected:  0.5,
		},
		{
			name:      "no overlap",
			query:     "portal",
			candidate: "dark souls",
			expected:  0,
		},
		{
			name:      "empty query",
			query:     "",
			candidate: "dark souls",
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TokenOverlapRatio(tt.query, tt.candidate), 1e-9)
		})
	}
}

func TestEditDistanceSimilarity(t *testing.T) {
	sim := EditDistanceSimilarity{}

	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, sim.Compare("souls", "souls"))
		assert.Equal(t, 1.0, sim.Compare("生化危机", "生化危机"))
	})

	t.Run("empty operand scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, sim.Compare("", "x"))
		assert.Equal(t, 0.0, sim.Compare("x", ""))
	})

	t.Run("short strings get a length bonus", func(t *testing.T) {
		// "cat"/"cut": distance 1 over length 3 plus the 0.2*(5-3)/5 bonus.
		assert.InDelta(t, 1-1.0/3+0.08, sim.Compare("cat", "cut"), 1e-9)
	})

	t.Run("containment bonus when lengths diverge", func(t *testing.T) {
		// "ab" inside "abcdefghij": ratio 2/10 < 0.5 triggers the bonus.
		base := 1 - 8.0/10
		assert.InDelta(t, base+0.1, sim.Compare("abcdefghij", "ab"), 1e-9)
	})

	t.Run("never exceeds 1", func(t *testing.T) {
		for _, pair := range [][2]string{{"ab", "ab"}, {"a", "ab"}, {"ab", "abc"}} {
			assert.LessOrEqual(t, sim.Compare(pair[0], pair[1]), 1.0)
		}
	})
}

func TestContainmentHeuristicSimilarity(t *testing.T) {
	sim := NewContainmentHeuristicSimilarity()

	t.Run("containment scores by length ratio", func(t *testing.T) {
		assert.InDelta(t, 4.0/8, sim.Compare("生化危机", "生化危机4豪华版2"), 1e-9)
	})

	t.Run("disjoint strings score by shared characters", func(t *testing.T) {
		// "abc" vs "axc": runes a and c shared, longer length 3.
		assert.InDelta(t, 2.0/3, sim.Compare("abc", "axc"), 1e-9)
	})

	t.Run("identical strings score 1 without caching", func(t *testing.T) {
		before := sim.CacheSize()
		assert.Equal(t, 1.0, sim.Compare("same", "same"))
		assert.Equal(t, before, sim.CacheSize())
	})

	t.Run("results are memoized per ordered pair", func(t *testing.T) {
		fresh := NewContainmentHeuristicSimilarity()
		first := fresh.Compare("dark", "dork")
		assert.Equal(t, 1, fresh.CacheSize())
		// Reversed operands hit the same cache entry.
		assert.Equal(t, first, fresh.Compare("dork", "dark"))
		assert.Equal(t, 1, fresh.CacheSize())
	})
}
