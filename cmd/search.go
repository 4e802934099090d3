package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fenlinghub/trainerdex/search"
)

// NewSearchCmd creates the search command
func NewSearchCmd(catalogPath *string) *cobra.Command {
	var limit int
	var category string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Run a one-shot search against the catalog file",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results to print")
	cmd.Flags().StringVar(&category, "category", "", "Restrict results to a category label")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		games, err := loadCatalog(*catalogPath)
		if err != nil {
			cmd.PrintErrf("Failed to load catalog: %v\n", err)
			os.Exit(1)
		}

		engine := search.NewEngine(search.DefaultConfig(), nil, nil)
		query := strings.Join(args, " ")

		if category != "" {
			filtered := games[:0:0]
			for _, game := range games {
				if game.Category == category {
					filtered = append(filtered, game)
				}
			}
			games = filtered
		}

		results := engine.Rank(query, gameNames(games))
		if len(results) == 0 {
			cmd.Println("No results.")
			return
		}
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		for _, match := range results {
			game := games[match.Index]
			cmd.Printf("%6.1f  %-6s  %s\n", match.Score, game.Category, game.Name)
		}
	}

	return cmd
}
