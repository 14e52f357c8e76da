package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/gameshelf/internal/db"
	"github.com/ziadkadry99/gameshelf/internal/export"
	"github.com/ziadkadry99/gameshelf/internal/history"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv|file.xlsx>",
	Short: "Export the manifest as a spreadsheet",
	Long: `Writes every game in the manifest to a CSV or XLSX file, chosen by the
file extension. When play history is enabled, a plays column carries the
number of recorded launches per game.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if _, err := export.FormatFor(args[0]); err != nil {
			return err
		}
		m, err := loadManifest(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		var plays map[string]int
		if cfg.History.Enabled {
			database, err := db.Open(cfg.History.DBPath)
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer database.Close()
			counts, err := history.NewStore(database).Top(cmd.Context(), 0)
			if err != nil {
				return err
			}
			plays = make(map[string]int, len(counts))
			for _, c := range counts {
				plays[c.GameID] = c.Plays
			}
			logger.Debug("loaded play counts", "games", len(counts))
		}

		if err := export.WriteFile(args[0], export.Rows(m, plays)); err != nil {
			return err
		}
		fmt.Printf("Exported %d games to %s\n", len(m), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
