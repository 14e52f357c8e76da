package catalog

// Resolution says how the player picked its game.
type Resolution string

const (
	// ResolvedExact means the requested id was found.
	ResolvedExact Resolution = "exact"
	// ResolvedFallback means the id was missing or unknown and the first
	// game was used instead.
	ResolvedFallback Resolution = "fallback"
)

// Resolve picks the game to show on the player page. The first game with
// a matching id wins; otherwise the first game in the manifest is used.
// ok is false only when the manifest is empty.
func Resolve(m Manifest, id string) (g Game, how Resolution, ok bool) {
	if id != "" {
		if g, found := m.Find(id); found {
			return g, ResolvedExact, true
		}
	}
	if len(m) == 0 {
		return Game{}, "", false
	}
	return m[0], ResolvedFallback, true
}

// Fullscreen toggle labels.
const (
	LabelEnterFullscreen = "Fullscreen"
	LabelExitFullscreen  = "Exit Fullscreen"
)

// FullscreenLabel returns the toggle label for the current state.
func FullscreenLabel(active bool) string {
	if active {
		return LabelExitFullscreen
	}
	return LabelEnterFullscreen
}
