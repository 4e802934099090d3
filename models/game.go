package models

import (
	"sync"
	"time"
)

// UnknownGameName is the placeholder for records with a missing or empty name.
const UnknownGameName = "未知游戏"

// CategoryOther is the default genre label for games no rule claims.
const CategoryOther = "其他"

// Game is one trainer download entry of the catalog. Entries are immutable
// after construction: a reload builds a fresh slice and swaps the whole
// snapshot.
type Game struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	DownloadURL  string `json:"downloadUrl"`
	AntiCheatURL string `json:"antiCheatUrl"`
	Category     string `json:"category"`
	IconIndex    int    `json:"iconIndex"`
}

// HasAntiCheatFile reports whether the entry ships a separate anti-cheat
// download.
func (g Game) HasAntiCheatFile() bool {
	return g.AntiCheatURL != ""
}

// CatalogStore holds the current catalog snapshot. Reads see a consistent
// slice; Swap replaces the whole catalog atomically on reload.
type CatalogStore struct {
	mu       sync.RWMutex
	games    []Game
	loadedAt time.Time
}

// NewCatalogStore returns an empty store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Swap replaces the stored snapshot.
func (s *CatalogStore) Swap(games []Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = games
	s.loadedAt = time.Now()
}

// Games returns the current snapshot. Callers must not mutate the returned
// slice's entries.
func (s *CatalogStore) Games() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games
}

// Len reports the snapshot size.
func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// LoadedAt reports when the snapshot was last swapped in.
func (s *CatalogStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// CategoryCounts returns how many games each category label holds.
func (s *CatalogStore) CategoryCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, g := range s.games {
		counts[g.Category]++
	}
	return counts
}
