package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
	"github.com/ziadkadry99/gameshelf/internal/progress"
)

var checkSiteDir string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the manifest against the games directory",
	Long: `Loads the manifest and reports duplicate or missing ids, games without
an index.html, missing local thumbnails, and game directories that are
not listed in the manifest. Exits non-zero when problems are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		m, err := loadManifest(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		reporter := progress.NewReporter("Checking games")
		checker := catalog.NewChecker(checkSiteDir, cfg.GamesDir)
		checker.Exclude = cfg.Server.Exclude
		checker.OnGame = func(i int, g catalog.Game) {
			reporter.Update(i+1, g.ID)
		}

		reporter.Start(len(m))
		problems, err := checker.Check(m)
		reporter.Finish()
		if err != nil {
			return err
		}

		for _, p := range problems {
			logger.Debug("problem", "game", p.GameID, "kind", p.Kind)
			fmt.Println(p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d problem(s) found in %d games", len(problems), len(m))
		}
		fmt.Printf("%d games OK\n", len(m))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkSiteDir, "site", ".", "directory relative thumbnail paths resolve against")
	rootCmd.AddCommand(checkCmd)
}
