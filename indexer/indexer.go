package indexer

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/fenlinghub/trainerdex/models"
	"github.com/fenlinghub/trainerdex/utils"
)

// Indexer turns the raw catalog document into the in-memory snapshot the
// search surface serves: it cleans names, assigns ids and categories, and
// swaps the whole catalog atomically into the store.
type Indexer struct {
	catalogPath string
	categorizer *Categorizer
	store       *models.CatalogStore
	useCache    bool
}

// New creates an indexer reading the catalog JSON at catalogPath. When
// useCache is set, a successful load is persisted and a failed one falls
// back to the last persisted document.
func New(catalogPath string, categorizer *Categorizer, store *models.CatalogStore, useCache bool) *Indexer {
	if categorizer == nil {
		categorizer = NewCategorizer(DefaultCategorizerConfig())
	}
	return &Indexer{
		catalogPath: catalogPath,
		categorizer: categorizer,
		store:       store,
		useCache:    useCache,
	}
}

// Reload reads the catalog source, rebuilds every entry and replaces the
// store's snapshot. A read failure falls back to the cached document; only
// when both are unavailable does Reload return an error and leave the
// current snapshot in place.
func (ix *Indexer) Reload() error {
	start := time.Now()
	defer utils.LogDuration("Reload", start, ix.catalogPath)

	payload, err := os.ReadFile(ix.catalogPath)
	fromSource := err == nil
	if err != nil {
		if !ix.useCache {
			return fmt.Errorf("read catalog: %w", err)
		}
		log.Warnf("Failed to read catalog '%s', trying cache: %v", ix.catalogPath, err)

		cached, fetchedAt, cacheErr := models.LoadCatalogCache()
		if cacheErr != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		log.Infof("Serving cached catalog fetched at %s", fetchedAt.Format(time.RFC3339))
		payload = cached
	}

	records, err := models.ParseRawRecords(payload)
	if err != nil {
		return err
	}

	// Cache only a document that parsed; a corrupt source must not
	// overwrite the last good snapshot the fallback depends on.
	if fromSource && ix.useCache {
		if cacheErr := models.SaveCatalogCache(payload); cacheErr != nil {
			log.Warnf("Failed to cache catalog: %v", cacheErr)
		}
	}

	games := ix.BuildGames(records)
	ix.store.Swap(games)

	log.Infof("Indexed %d games from '%s'", len(games), ix.catalogPath)
	return nil
}

// BuildGames constructs immutable catalog entries from raw records. Ids are
// 1-based load order; every field is coerced to a safe string so one
// malformed record cannot poison the catalog.
func (ix *Indexer) BuildGames(records []models.RawRecord) []models.Game {
	games := make([]models.Game, 0, len(records))
	for index, record := range records {
		name := utils.CleanGameName(record.Name())
		if name == "" {
			name = models.UnknownGameName
		}

		games = append(games, models.Game{
			ID:           index + 1,
			Name:         name,
			ImageURL:     record.ImageURL(),
			DownloadURL:  record.DownloadURL(),
			AntiCheatURL: record.AntiCheatURL(),
			Category:     ix.categorizer.Categorize(name),
			IconIndex:    index % 10,
		})
	}
	return games
}
