package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List games in the manifest, optionally filtered",
	Long: `Prints every game in the manifest, or those whose id, title, description
or tags contain the query (case-insensitive).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		m, err := loadManifest(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		games := catalog.Filter(m, query)

		if listJSON {
			if games == nil {
				games = catalog.Manifest{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(games)
		}

		if len(games) == 0 {
			fmt.Println("No games found.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tTAGS\tPLAY")
		for _, g := range games {
			title := g.DisplayTitle()
			if g.New {
				title += " (new)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, title, strings.Join(g.Tags, ","), g.PlayURL())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d of %d games\n", len(games), len(m))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print matching games as JSON")
	rootCmd.AddCommand(listCmd)
}
