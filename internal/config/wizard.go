package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where init writes the configuration.
const DefaultPath = ".gameshelf.yml"

// detectManifest looks for a games.json in the usual places.
func detectManifest() string {
	for _, candidate := range []string{"games.json", "public/games.json", "site/games.json", "docs/games.json"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "games.json"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to gameshelf! Let's configure your catalog.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Manifest location.
	manifestPrompt := promptui.Prompt{
		Label:   "Manifest (file path or http(s) URL)",
		Default: detectManifest(),
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("manifest is required")
			}
			return nil
		},
	}
	manifest, err := manifestPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	cfg.Manifest = strings.TrimSpace(manifest)

	// 2. Games directory, next to the manifest by default.
	defaultGames := "games"
	if !strings.Contains(cfg.Manifest, "://") {
		defaultGames = filepath.Join(filepath.Dir(cfg.Manifest), "games")
	}
	gamesPrompt := promptui.Prompt{
		Label:   "Games directory",
		Default: defaultGames,
	}
	gamesDir, err := gamesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("games dir: %w", err)
	}
	cfg.GamesDir = strings.TrimSpace(gamesDir)

	// 3. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = title

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Play history.
	historyPrompt := promptui.Select{
		Label: "Record play history",
		Items: []string{"no", "yes — store launches in a local SQLite file"},
	}
	historyIdx, _, err := historyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("history selection: %w", err)
	}
	cfg.History.Enabled = historyIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
