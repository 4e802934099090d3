package cmd

import (
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/fenlinghub/trainerdex/models"
)

// csvGame mirrors the spreadsheet export layout the catalog is maintained in.
type csvGame struct {
	Name         string `csv:"游戏名字"`
	ImageURL     string `csv:"图片地址"`
	DownloadURL  string `csv:"下载地址"`
	AntiCheatURL string `csv:"反作弊文件下载"`
}

// NewConvertCmd creates the convert command
func NewConvertCmd() *cobra.Command {
	var inputPath string
	var outputPath string
	var compact bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a CSV catalog export to the JSON catalog format",
		Long:  `Convert a spreadsheet CSV export (游戏名字/图片地址/下载地址/反作弊文件下载 columns) into the compact JSON catalog the server loads.`,
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the CSV export")
	cmd.Flags().StringVar(&outputPath, "output", "catalog.json", "Path to write the JSON catalog to")
	cmd.Flags().BoolVar(&compact, "compact", true, "Emit short record keys (n/i/d/a) instead of the full column names")
	cmd.MarkFlagRequired("input")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		file, err := os.Open(inputPath)
		if err != nil {
			cmd.PrintErrf("Failed to open CSV: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		var rows []csvGame
		if err := gocsv.UnmarshalFile(file, &rows); err != nil {
			cmd.PrintErrf("Failed to parse CSV: %v\n", err)
			os.Exit(1)
		}

		records := make([]models.RawRecord, 0, len(rows))
		for _, row := range rows {
			records = append(records, rawRecordFromCSV(row, compact))
		}

		payload, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			cmd.PrintErrf("Failed to encode catalog: %v\n", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
			cmd.PrintErrf("Failed to write catalog: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Converted %d records to %s\n", len(records), outputPath)
	}

	return cmd
}

func rawRecordFromCSV(row csvGame, compact bool) models.RawRecord {
	if compact {
		return models.RawRecord{
			"n": row.Name,
			"i": row.ImageURL,
			"d": row.DownloadURL,
			"a": row.AntiCheatURL,
		}
	}
	return models.RawRecord{
		"游戏名字":    row.Name,
		"图片地址":    row.ImageURL,
		"下载地址":    row.DownloadURL,
		"反作弊文件下载": row.AntiCheatURL,
	}
}
