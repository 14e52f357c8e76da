package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
	"github.com/ziadkadry99/gameshelf/internal/history"
	"github.com/ziadkadry99/gameshelf/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool     // allow all CORS origins
	Exclude  []string // globs under the games dir that are never served
}

// Deps are the collaborators the server needs. Games, Assets and History
// are optional.
type Deps struct {
	Loader   catalog.Loader
	Renderer *site.Renderer
	// Games is served under /games/. nil disables the route.
	Games fs.FS
	// Assets is served under /assets/. Defaults to the embedded assets.
	Assets fs.FS
	// History records player launches when set.
	History *history.Store
	Logger  *slog.Logger
}

// Server serves the catalog, the player and the games themselves.
type Server struct {
	cfg        Config
	loader     catalog.Loader
	renderer   *site.Renderer
	notes      *site.Notes
	games      fs.FS
	assets     fs.FS
	history    *history.Store
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all routes registered.
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		cfg:      cfg,
		loader:   deps.Loader,
		renderer: deps.Renderer,
		games:    deps.Games,
		assets:   deps.Assets,
		history:  deps.History,
		logger:   deps.Logger,
	}
	if s.assets == nil {
		s.assets = site.Assets()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.games != nil {
		s.notes = site.NewNotes(s.games)
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{headerResultLabel},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleCatalog)
	r.Get("/index.html", s.handleCatalog)
	r.Get("/play.html", s.handlePlay)
	r.Get("/fragments/grid", s.handleGridFragment)
	r.Get("/games.json", s.handleManifest)
	r.Get("/api/games", s.handleGames)

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))
	if s.games != nil {
		r.Handle("/games/*", s.gamesHandler())
	}

	if s.history != nil {
		history.RegisterRoutes(r, s.history)
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("gameshelf listening", "addr", addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
