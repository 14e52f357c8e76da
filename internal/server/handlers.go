package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
	"github.com/ziadkadry99/gameshelf/internal/history"
)

// headerResultLabel carries the result count text for grid fragments.
const headerResultLabel = "X-Result-Label"

// loadManifest reads the manifest fresh for every request.
func (s *Server) loadManifest(ctx context.Context) (catalog.Manifest, error) {
	m, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error("loading manifest", "err", err)
		return nil, err
	}
	if dups := m.Duplicates(); len(dups) > 0 {
		s.logger.Warn("duplicate game ids in manifest; first entry wins", "ids", dups)
	}
	return m, nil
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := http.StatusOK
	grid := s.renderer.GridFailed(q)
	if m, err := s.loadManifest(r.Context()); err != nil {
		status = http.StatusBadGateway
	} else {
		grid = s.renderer.Grid(m, q)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderCatalog(&buf, s.renderer.Catalog(grid)); err != nil {
		s.renderError(w, err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (s *Server) handleGridFragment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := http.StatusOK
	grid := s.renderer.GridFailed(q)
	if m, err := s.loadManifest(r.Context()); err != nil {
		status = http.StatusBadGateway
	} else {
		grid = s.renderer.Grid(m, q)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderGrid(&buf, grid); err != nil {
		s.renderError(w, err)
		return
	}
	w.Header().Set(headerResultLabel, grid.CountLabel())
	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, status, buf.Bytes())
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("game")

	m, err := s.loadManifest(r.Context())
	if err != nil {
		var buf bytes.Buffer
		if err := s.renderer.RenderPlayer(&buf, s.renderer.PlayerFailed()); err != nil {
			s.renderError(w, err)
			return
		}
		writeHTML(w, http.StatusBadGateway, buf.Bytes())
		return
	}

	v := s.renderer.Player(m, id)
	if v.Ready {
		if notes, err := s.notes.Render(v.GameID); err != nil {
			s.logger.Warn("rendering notes", "game", v.GameID, "err", err)
		} else {
			v.Notes = notes
		}
		s.recordPlay(r, id, v.GameID, v.Resolution)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPlayer(&buf, v); err != nil {
		s.renderError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) recordPlay(r *http.Request, requested, gameID string, how catalog.Resolution) {
	if s.history == nil {
		return
	}
	_, err := s.history.Record(r.Context(), history.Play{
		GameID:      gameID,
		RequestedID: requested,
		Resolution:  how,
		Referrer:    r.Referer(),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		s.logger.Warn("recording play", "game", gameID, "err", err)
	}
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	m, err := s.loadManifest(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, m)
}

// gamesResponse is the JSON body of /api/games.
type gamesResponse struct {
	Query string           `json:"query"`
	Count int              `json:"count"`
	Total int              `json:"total"`
	Games catalog.Manifest `json:"games"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	m, err := s.loadManifest(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	q := r.URL.Query().Get("q")
	matched := catalog.Filter(m, q)
	if matched == nil {
		matched = catalog.Manifest{}
	}
	writeJSON(w, http.StatusOK, gamesResponse{
		Query: q,
		Count: len(matched),
		Total: len(m),
		Games: matched,
	})
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	s.logger.Error("rendering page", "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
