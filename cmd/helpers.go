package cmd

import (
	"fmt"
	"os"

	"github.com/fenlinghub/trainerdex/indexer"
	"github.com/fenlinghub/trainerdex/models"
)

// loadCatalog reads a catalog JSON file and builds the enriched game list
// the same way the server does at startup.
func loadCatalog(path string) ([]models.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	records, err := models.ParseRawRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	ix := indexer.New(path, nil, models.NewCatalogStore(), false)
	return ix.BuildGames(records), nil
}

func gameNames(games []models.Game) []string {
	names := make([]string, len(games))
	for i, game := range games {
		names[i] = game.Name
	}
	return names
}
