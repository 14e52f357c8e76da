package catalog

import (
	"net/url"
	"strings"
)

// DefaultThumb is the image shown for games that don't declare one.
const DefaultThumb = "assets/default-thumb.png"

// Game describes a single embeddable game, as listed in games.json.
type Game struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Thumb       string   `json:"thumb,omitempty"`
	New         bool     `json:"new,omitempty"`
}

// DisplayTitle returns the title, falling back to the id.
func (g Game) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}

// ThumbOr returns the declared thumbnail or fallback when none is set.
func (g Game) ThumbOr(fallback string) string {
	if g.Thumb != "" {
		return g.Thumb
	}
	return fallback
}

// DirectURL is the relative path of the game's own page.
func (g Game) DirectURL() string { return DirectURL(g.ID) }

// PlayURL is the relative path of the player page for the game.
func (g Game) PlayURL() string { return PlayURL(g.ID) }

// DirectURL returns games/<id>/index.html. The id is used verbatim.
func DirectURL(id string) string {
	return "games/" + id + "/index.html"
}

// PlayURL returns play.html?game=<id> with the id percent-encoded the way
// browsers' encodeURIComponent does it.
func PlayURL(id string) string {
	return "play.html?game=" + EncodeComponent(id)
}

// componentUnescaper undoes the url.QueryEscape escapes that
// encodeURIComponent leaves alone, and writes spaces as %20 instead of '+'.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single query value,
// escaping the same characters as encodeURIComponent.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Manifest is the ordered list of games loaded from games.json.
type Manifest []Game

// Find returns the first game with the given id. Later entries sharing the
// id are never returned.
func (m Manifest) Find(id string) (Game, bool) {
	for _, g := range m {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Duplicates returns every id that appears more than once, in order of
// first repetition.
func (m Manifest) Duplicates() []string {
	seen := make(map[string]int, len(m))
	var dups []string
	for _, g := range m {
		seen[g.ID]++
		if seen[g.ID] == 2 {
			dups = append(dups, g.ID)
		}
	}
	return dups
}

// IDs returns the ids of all games in manifest order.
func (m Manifest) IDs() []string {
	ids := make([]string, len(m))
	for i, g := range m {
		ids[i] = g.ID
	}
	return ids
}
