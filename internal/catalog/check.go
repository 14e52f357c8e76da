package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ProblemKind classifies a manifest problem found by Check.
type ProblemKind string

const (
	ProblemMissingID    ProblemKind = "missing_id"
	ProblemDuplicateID  ProblemKind = "duplicate_id"
	ProblemMissingPage  ProblemKind = "missing_page"
	ProblemMissingThumb ProblemKind = "missing_thumb"
	ProblemUnlisted     ProblemKind = "unlisted_game"
)

// Problem is one finding reported by Check.
type Problem struct {
	GameID string      `json:"game_id"`
	Kind   ProblemKind `json:"kind"`
	Detail string      `json:"detail"`
}

func (p Problem) String() string {
	if p.GameID == "" {
		return fmt.Sprintf("%s: %s", p.Kind, p.Detail)
	}
	return fmt.Sprintf("%s [%s]: %s", p.Kind, p.GameID, p.Detail)
}

// Checker validates a manifest against the site tree it is served from.
type Checker struct {
	// Site is the directory relative paths (thumbs) resolve against.
	Site fs.FS
	// Games is the directory holding one sub-directory per game.
	Games fs.FS
	// Exclude lists globs of game directories to ignore when looking for
	// unlisted games.
	Exclude []string
	// OnGame, if set, is called before each game is checked.
	OnGame func(i int, g Game)
}

// NewChecker returns a Checker rooted at siteDir with games under gamesDir.
func NewChecker(siteDir, gamesDir string) *Checker {
	return &Checker{
		Site:  os.DirFS(siteDir),
		Games: os.DirFS(gamesDir),
	}
}

// Check returns every problem found, duplicates first, then per-game
// problems in manifest order, then unlisted game directories.
func (c *Checker) Check(m Manifest) ([]Problem, error) {
	var problems []Problem

	for _, id := range m.Duplicates() {
		problems = append(problems, Problem{
			GameID: id,
			Kind:   ProblemDuplicateID,
			Detail: "id appears more than once; the player uses the first entry",
		})
	}

	listed := make(map[string]bool, len(m))
	for i, g := range m {
		if c.OnGame != nil {
			c.OnGame(i, g)
		}
		if strings.TrimSpace(g.ID) == "" {
			problems = append(problems, Problem{
				Kind:   ProblemMissingID,
				Detail: fmt.Sprintf("entry %d has no id", i),
			})
			continue
		}
		listed[g.ID] = true

		if c.Games != nil {
			page := path.Join(g.ID, "index.html")
			if _, err := fs.Stat(c.Games, page); err != nil {
				problems = append(problems, Problem{
					GameID: g.ID,
					Kind:   ProblemMissingPage,
					Detail: DirectURL(g.ID) + " not found",
				})
			}
		}

		if c.Site != nil && g.Thumb != "" && isLocalPath(g.Thumb) {
			thumb := strings.TrimPrefix(path.Clean("/"+g.Thumb), "/")
			if _, err := fs.Stat(c.Site, thumb); err != nil {
				problems = append(problems, Problem{
					GameID: g.ID,
					Kind:   ProblemMissingThumb,
					Detail: g.Thumb + " not found",
				})
			}
		}
	}

	if c.Games != nil {
		pages, err := doublestar.Glob(c.Games, "*/index.html")
		if err != nil {
			return nil, fmt.Errorf("scanning games dir: %w", err)
		}
		sort.Strings(pages)
		for _, p := range pages {
			dir := path.Dir(p)
			if listed[dir] || MatchAny(c.Exclude, dir) {
				continue
			}
			problems = append(problems, Problem{
				GameID: dir,
				Kind:   ProblemUnlisted,
				Detail: "games/" + p + " exists but is not in the manifest",
			})
		}
	}

	return problems, nil
}

// MatchAny reports whether p matches any of the doublestar patterns.
// Malformed patterns never match.
func MatchAny(patterns []string, p string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// isLocalPath reports whether ref is a relative or root-relative path
// rather than an absolute URL.
func isLocalPath(ref string) bool {
	if strings.HasPrefix(ref, "//") {
		return false
	}
	if i := strings.Index(ref, ":"); i > 0 && !strings.ContainsAny(ref[:i], "/?#") {
		return false
	}
	return true
}
