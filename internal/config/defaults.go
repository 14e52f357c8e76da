package config

import "slices"

// DefaultChromeHide are the selectors of template chrome hidden inside
// the game frame: the footer, the logo and the template's own fullscreen
// button.
var DefaultChromeHide = []string{
	"#footer",
	".footer",
	"#unity-footer",
	"#unity-logo",
	".webgl-logo",
	"#unity-fullscreen-button",
	".fullscreen-button",
}

// DefaultChromeContainer is the container whose bottom spacing is zeroed.
const DefaultChromeContainer = "#unity-container"

// DefaultExcludes are glob patterns never served from the games dir.
var DefaultExcludes = []string{
	"**/.*",
	"**/.*/**",
	"**/*.map",
	"**/.git/**",
	"**/node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Manifest:      "games.json",
		GamesDir:      "games",
		SiteTitle:     "Game Shelf",
		FallbackThumb: "assets/default-thumb.png",
		MaxStagger:    12,
		Chrome: ChromeConfig{
			Hide:      slices.Clone(DefaultChromeHide),
			Container: DefaultChromeContainer,
		},
		Server: ServerConfig{
			Port:    8080,
			Exclude: slices.Clone(DefaultExcludes),
		},
		History: HistoryConfig{
			Enabled: false,
			DBPath:  ".gameshelf/history.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
	}
}
