package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// NotesFile is the optional per-game markdown shown under the player.
const NotesFile = "NOTES.md"

// Notes renders games/<id>/NOTES.md. Raw HTML in the markdown is dropped.
type Notes struct {
	games fs.FS
	md    goldmark.Markdown
}

// NewNotes returns a Notes reader over the games directory.
func NewNotes(games fs.FS) *Notes {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Notes{games: games, md: md}
}

// Render returns the notes for a game, or "" if it has none.
func (n *Notes) Render(id string) (template.HTML, error) {
	if n == nil || n.games == nil || id == "" || !fs.ValidPath(id) {
		return "", nil
	}
	src, err := fs.ReadFile(n.games, path.Join(id, NotesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading notes for %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := n.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering notes for %s: %w", id, err)
	}
	// goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String()), nil
}
