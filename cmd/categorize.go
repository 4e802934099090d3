package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fenlinghub/trainerdex/indexer"
	"github.com/fenlinghub/trainerdex/utils"
)

// NewCategorizeCmd creates the categorize command
func NewCategorizeCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "categorize [name...]",
		Short: "Print the category assigned to each game name",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Skip version/marker cleanup before categorizing")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		categorizer := indexer.NewCategorizer(indexer.DefaultCategorizerConfig())
		for _, name := range args {
			if !raw {
				name = utils.CleanGameName(name)
			}
			cmd.Printf("%s\t%s\n", name, categorizer.Categorize(name))
		}
	}

	return cmd
}
