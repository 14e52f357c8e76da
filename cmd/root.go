package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/gameshelf/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gameshelf",
	Short: "Serve a catalog of embeddable web games",
	Long: `Gameshelf serves a searchable catalog of self-contained web games listed
in a games.json manifest, and a player page that embeds each game in a
frame with a fullscreen toggle.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
