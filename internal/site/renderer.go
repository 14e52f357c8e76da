package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

// Page titles shown by the player when no game can be displayed.
const (
	TitleLoadFailed = "Failed to load game list"
	TitleNoGames    = "No games found"
)

// Options controls how pages are rendered.
type Options struct {
	SiteTitle     string
	FallbackThumb string
	// MaxStagger caps the per-card animation index so long grids don't
	// take forever to appear.
	MaxStagger int
	// ChromeHide lists selectors hidden on same-origin game pages.
	ChromeHide []string
	// ChromeContainer is stretched to fill the frame after cleanup.
	ChromeContainer string
}

// Card is one game in the grid.
type Card struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Thumb       string
	PlayURL     string
	DirectURL   string
	New         bool
	Index       int
}

// GridView is the data behind the game grid and its result count.
type GridView struct {
	Query  string
	Cards  []Card
	Total  int
	Failed bool
}

// CountLabel describes how many games are shown, e.g. "3 of 12 games".
func (v GridView) CountLabel() string {
	if v.Failed {
		return ""
	}
	n := len(v.Cards)
	if catalog.Normalize(v.Query) == "" {
		return plural(n)
	}
	return strconv.Itoa(n) + " of " + plural(v.Total)
}

func plural(n int) string {
	if n == 1 {
		return "1 game"
	}
	return strconv.Itoa(n) + " games"
}

// CatalogView is the data behind the catalog page.
type CatalogView struct {
	SiteTitle string
	Grid      GridView
}

// PlayerView is the data behind the player page.
type PlayerView struct {
	SiteTitle   string
	Ready       bool
	Failed      bool
	GameID      string
	Title       string
	Description string
	FrameSrc    string
	Resolution  catalog.Resolution
	LabelEnter  string
	LabelExit   string
	ChromeJSON  string
	Notes       template.HTML
}

// PageTitle is the document title for the player page.
func (v PlayerView) PageTitle() string {
	if v.SiteTitle == "" {
		return v.Title
	}
	return v.Title + " · " + v.SiteTitle
}

// Renderer turns manifests into catalog and player pages.
type Renderer struct {
	opts Options
	tmpl *template.Template
}

// NewRenderer parses the page templates.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.FallbackThumb == "" {
		opts.FallbackThumb = catalog.DefaultThumb
	}
	tmpl, err := template.New("site").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{opts: opts, tmpl: tmpl}, nil
}

// Grid builds the grid view for games matching query, in manifest order.
func (r *Renderer) Grid(m catalog.Manifest, query string) GridView {
	matched := catalog.Filter(m, query)
	cards := make([]Card, 0, len(matched))
	for i, g := range matched {
		cards = append(cards, r.card(i, g))
	}
	return GridView{Query: query, Cards: cards, Total: len(m)}
}

// GridFailed is the grid shown when the manifest could not be loaded.
func (r *Renderer) GridFailed(query string) GridView {
	return GridView{Query: query, Failed: true}
}

func (r *Renderer) card(i int, g catalog.Game) Card {
	return Card{
		ID:          g.ID,
		Title:       g.DisplayTitle(),
		Description: g.Description,
		Tags:        g.Tags,
		Thumb:       g.ThumbOr(r.opts.FallbackThumb),
		PlayURL:     g.PlayURL(),
		DirectURL:   g.DirectURL(),
		New:         g.New,
		Index:       min(i, r.opts.MaxStagger),
	}
}

// Catalog builds the catalog page view.
func (r *Renderer) Catalog(grid GridView) CatalogView {
	return CatalogView{SiteTitle: r.opts.SiteTitle, Grid: grid}
}

// Player builds the player view for the requested id.
func (r *Renderer) Player(m catalog.Manifest, id string) PlayerView {
	g, how, ok := catalog.Resolve(m, id)
	if !ok {
		return PlayerView{SiteTitle: r.opts.SiteTitle, Title: TitleNoGames}
	}
	return PlayerView{
		SiteTitle:   r.opts.SiteTitle,
		Ready:       true,
		GameID:      g.ID,
		Title:       g.DisplayTitle(),
		Description: g.Description,
		FrameSrc:    g.DirectURL(),
		Resolution:  how,
		LabelEnter:  catalog.FullscreenLabel(false),
		LabelExit:   catalog.FullscreenLabel(true),
		ChromeJSON:  r.chromeJSON(),
	}
}

// PlayerFailed is the player shown when the manifest could not be loaded.
func (r *Renderer) PlayerFailed() PlayerView {
	return PlayerView{SiteTitle: r.opts.SiteTitle, Failed: true, Title: TitleLoadFailed}
}

func (r *Renderer) chromeJSON() string {
	hide := r.opts.ChromeHide
	if hide == nil {
		hide = []string{}
	}
	b, _ := json.Marshal(struct {
		Hide      []string `json:"hide"`
		Container string   `json:"container,omitempty"`
	}{hide, r.opts.ChromeContainer})
	return string(b)
}

// RenderCatalog writes the full catalog page.
func (r *Renderer) RenderCatalog(w io.Writer, v CatalogView) error {
	return r.tmpl.ExecuteTemplate(w, "catalog", v)
}

// RenderGrid writes only the grid contents, for in-place updates.
func (r *Renderer) RenderGrid(w io.Writer, v GridView) error {
	return r.tmpl.ExecuteTemplate(w, "grid", v)
}

// RenderPlayer writes the player page.
func (r *Renderer) RenderPlayer(w io.Writer, v PlayerView) error {
	return r.tmpl.ExecuteTemplate(w, "player", v)
}
