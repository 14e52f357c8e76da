package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
	"github.com/ziadkadry99/gameshelf/internal/db"
	"github.com/ziadkadry99/gameshelf/internal/history"
	"github.com/ziadkadry99/gameshelf/internal/server"
	"github.com/ziadkadry99/gameshelf/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and player pages",
	Long: `Starts an HTTP server with the game catalog at / and the player at
/play.html. The manifest is read fresh on every page view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		renderer, err := site.NewRenderer(site.Options{
			SiteTitle:       cfg.SiteTitle,
			FallbackThumb:   cfg.FallbackThumb,
			MaxStagger:      cfg.MaxStagger,
			ChromeHide:      cfg.Chrome.Hide,
			ChromeContainer: cfg.Chrome.Container,
		})
		if err != nil {
			return err
		}

		deps := server.Deps{
			Loader:   catalog.NewLoader(cfg.Manifest),
			Renderer: renderer,
			Logger:   logger,
		}
		if info, err := os.Stat(cfg.GamesDir); err == nil && info.IsDir() {
			deps.Games = os.DirFS(cfg.GamesDir)
		} else {
			logger.Warn("games dir not found; /games/ will not be served", "dir", cfg.GamesDir)
		}
		var overrides fs.FS
		if cfg.AssetsDir != "" {
			overrides = os.DirFS(cfg.AssetsDir)
		}
		deps.Assets = server.Overlay(overrides, site.Assets())

		if cfg.History.Enabled {
			database, err := db.Open(cfg.History.DBPath)
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer database.Close()
			deps.History = history.NewStore(database)
			logger.Info("recording play history", "db", database.Path())
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
			Exclude:  cfg.Server.Exclude,
		}, deps)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.Info("gameshelf starting",
			"version", Version,
			"port", cfg.Server.Port,
			"manifest", cfg.Manifest,
			"games", cfg.GamesDir,
			"history", cfg.History.Enabled,
		)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
