package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

// gamesHandler serves files from the games directory. Excluded paths and
// directories without an index.html are reported as missing.
func (s *Server) gamesHandler() http.Handler {
	files := http.StripPrefix("/games/", http.FileServer(http.FS(s.games)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := path.Clean(strings.TrimPrefix(r.URL.Path, "/games/"))
		if rel == "." || catalog.MatchAny(s.cfg.Exclude, rel) {
			http.NotFound(w, r)
			return
		}
		if info, err := fs.Stat(s.games, rel); err == nil && info.IsDir() {
			if _, err := fs.Stat(s.games, path.Join(rel, "index.html")); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

// Overlay returns a filesystem that serves files from primary when they
// exist there and from fallback otherwise.
func Overlay(primary, fallback fs.FS) fs.FS {
	if primary == nil {
		return fallback
	}
	return overlayFS{primary, fallback}
}

type overlayFS struct {
	primary, fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.fallback.Open(name)
}
