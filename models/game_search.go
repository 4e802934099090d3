package models

import (
	"strings"

	"github.com/fenlinghub/trainerdex/search"
)

// SearchOptions defines parameters for catalog searches.
type SearchOptions struct {
	Filter   string
	Category string
	Page     int
	PageSize int
}

// SearchGames filters and orders the catalog for a free-text query. An empty
// query returns the catalog unchanged; otherwise entries are ranked by the
// engine's relevance cascade.
func SearchGames(engine *search.Engine, query string, games []Game) []Game {
	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}

	matches := engine.Rank(query, names)

	results := make([]Game, len(matches))
	for i, m := range matches {
		results[i] = games[m.Index]
	}
	return results
}

// SearchGamesWithOptions runs the full listing pipeline: category filter,
// relevance search, pagination. It returns the page slice and the total
// number of matching games before pagination.
func SearchGamesWithOptions(engine *search.Engine, games []Game, opts SearchOptions) ([]Game, int64) {
	if opts.Category != "" {
		games = filterByCategory(games, opts.Category)
	}

	if strings.TrimSpace(opts.Filter) != "" {
		games = SearchGames(engine, opts.Filter, games)
	}

	total := int64(len(games))
	return paginateGames(games, opts.Page, opts.PageSize), total
}

// filterByCategory keeps only games carrying the given category label.
func filterByCategory(games []Game, category string) []Game {
	filtered := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Category == category {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// paginateGames applies pagination to the result slice.
func paginateGames(games []Game, page, pageSize int) []Game {
	if pageSize <= 0 {
		return games
	}

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start >= len(games) {
		return []Game{}
	}

	end := start + pageSize
	if end > len(games) {
		end = len(games)
	}

	return games[start:end]
}
