package search

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fenlinghub/trainerdex/utils"
)

// Config holds every tunable of the relevance cascade. The defaults preserve
// the scoring policy the catalog shipped with; none of the constants were
// derived from labeled relevance data, so they are configuration rather than
// contract.
type Config struct {
	// Strict-priority strategy scores.
	ExactScore          float64
	AllWordsScore       float64
	PinyinPhraseScore   float64
	PinyinWordsScore    float64
	InitialsExactScore  float64
	InitialsPrefixScore float64

	// Initials matching applies only to single-token queries within this
	// rune-length range.
	InitialsMinQueryLen int
	InitialsMaxQueryLen int

	// Fallback composite bands. Each band scores base + (value-threshold)*slope.
	TokenOverlapThreshold float64
	TokenOverlapBase      float64
	TokenOverlapSlope     float64
	SimilarityThreshold   float64
	SimilarityBase        float64
	SimilaritySlope       float64
	LCSThreshold          float64
	LCSBase               float64
	LCSSlope              float64
	// LCS is only meaningful for queries longer than this many runes.
	LCSMinQueryLen int

	// Entries scoring below this are dropped rather than ranked low.
	AcceptThreshold float64
}

// DefaultConfig returns the cascade constants the catalog has always used.
func DefaultConfig() Config {
	return Config{
		ExactScore:            100,
		AllWordsScore:         90,
		PinyinPhraseScore:     85,
		PinyinWordsScore:      80,
		InitialsExactScore:    75,
		InitialsPrefixScore:   70,
		InitialsMinQueryLen:   2,
		InitialsMaxQueryLen:   5,
		TokenOverlapThreshold: 0.8,
		TokenOverlapBase:      60,
		TokenOverlapSlope:     40,
		SimilarityThreshold:   0.75,
		SimilarityBase:        50,
		SimilaritySlope:       50,
		LCSThreshold:          0.75,
		LCSBase:               40,
		LCSSlope:              40,
		LCSMinQueryLen:        2,
		AcceptThreshold:       40,
	}
}

// Match pairs a candidate's position in the input slice with its relevance
// score.
type Match struct {
	Index int
	Score float64
}

// Engine filters and orders catalog names for a free-text query. It holds no
// mutable state besides what its injected collaborators own, so a single
// engine serves every search pass over a catalog snapshot.
type Engine struct {
	cfg        Config
	transliter Transliterator
	similarity Similarity
}

// NewEngine builds a search engine. A nil transliterator selects the table
// implementation with the built-in table; a nil similarity selects
// EditDistanceSimilarity.
func NewEngine(cfg Config, transliter Transliterator, similarity Similarity) *Engine {
	if transliter == nil {
		transliter = NewTableTransliterator(nil)
	}
	if similarity == nil {
		similarity = EditDistanceSimilarity{}
	}
	return &Engine{
		cfg:        cfg,
		transliter: transliter,
		similarity: similarity,
	}
}

// Rank scores every candidate name against query and returns the accepted
// matches ordered by score descending, ties broken by collated name order.
// An empty (or punctuation-only) query is "show all": every index is
// returned in input order.
//
// Rank is safe for concurrent calls on one engine; the collator mutates
// internal state while comparing, so each pass builds its own.
func (e *Engine) Rank(query string, names []string) []Match {
	start := time.Now()
	defer utils.LogDuration("Rank", start, query)

	processed := Normalize(query)
	if processed == "" {
		matches := make([]Match, len(names))
		for i := range names {
			matches[i] = Match{Index: i}
		}
		return matches
	}

	queryWords := Tokenize(processed)
	pinyinQuery := e.transliter.ToPinyin(processed)
	pinyinWords := Tokenize(pinyinQuery)

	type scored struct {
		Match
		name string
	}

	var kept []scored
	for i, name := range names {
		candidate := Normalize(name)
		score := e.score(processed, queryWords, pinyinQuery, pinyinWords, candidate)
		if score >= e.cfg.AcceptThreshold {
			kept = append(kept, scored{Match{Index: i, Score: score}, candidate})
		}
	}

	collator := collate.New(language.Chinese)
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return collator.CompareString(kept[i].name, kept[j].name) < 0
	})

	matches := make([]Match, len(kept))
	for i, s := range kept {
		matches[i] = s.Match
	}
	return matches
}

// score runs the strict-priority strategy cascade: the first strategy whose
// guard holds decides the score, it is never cumulative.
func (e *Engine) score(processed string, queryWords []string, pinyinQuery string, pinyinWords []string, candidate string) float64 {
	candidatePinyin := e.transliter.ToPinyin(candidate)

	switch {
	case candidate == processed:
		return e.cfg.ExactScore

	case allContained(queryWords, candidate):
		return e.cfg.AllWordsScore

	case utf8.RuneCountInString(pinyinQuery) > 1 && contains(candidatePinyin, pinyinQuery):
		return e.cfg.PinyinPhraseScore

	case allContained(pinyinWords, candidatePinyin):
		return e.cfg.PinyinWordsScore

	case len(queryWords) == 1 && withinRuneLen(processed, e.cfg.InitialsMinQueryLen, e.cfg.InitialsMaxQueryLen):
		// The guard consumes this case: a short single-token query that the
		// candidate's initials neither equal nor extend scores nothing.
		initials := e.transliter.FirstLetters(candidate)
		if initials == processed {
			return e.cfg.InitialsExactScore
		}
		if strings.HasPrefix(initials, processed) {
			return e.cfg.InitialsPrefixScore
		}
		return 0

	default:
		return e.compositeScore(processed, pinyinQuery, candidate, candidatePinyin)
	}
}

// compositeScore blends token overlap, fuzzy similarity and LCS into the
// 40-60 band. The highest triggered band wins; anything below every
// threshold scores zero.
func (e *Engine) compositeScore(processed, pinyinQuery, candidate, candidatePinyin string) float64 {
	tokenMatch := max(
		TokenOverlapRatio(processed, candidate),
		TokenOverlapRatio(pinyinQuery, candidatePinyin),
	)
	similarity := max(
		e.similarity.Compare(processed, candidate),
		e.similarity.Compare(pinyinQuery, candidatePinyin),
	)

	queryLen := utf8.RuneCountInString(processed)
	candidateLen := utf8.RuneCountInString(candidate)
	var lcsRatio float64
	if shorter := min(queryLen, candidateLen); shorter > 0 {
		lcsRatio = float64(LCSLength(processed, candidate)) / float64(shorter)
	}

	switch {
	case tokenMatch >= e.cfg.TokenOverlapThreshold:
		return e.cfg.TokenOverlapBase + (tokenMatch-e.cfg.TokenOverlapThreshold)*e.cfg.TokenOverlapSlope
	case similarity >= e.cfg.SimilarityThreshold:
		return e.cfg.SimilarityBase + (similarity-e.cfg.SimilarityThreshold)*e.cfg.SimilaritySlope
	case queryLen > e.cfg.LCSMinQueryLen && lcsRatio > e.cfg.LCSThreshold:
		return e.cfg.LCSBase + (lcsRatio-e.cfg.LCSThreshold)*e.cfg.LCSSlope
	default:
		return 0
	}
}

func allContained(words []string, text string) bool {
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		if !contains(text, word) {
			return false
		}
	}
	return true
}

func contains(text, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(text, sub)
}

func withinRuneLen(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
