package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Manifest != "games.json" {
		t.Errorf("expected default manifest %q, got %q", "games.json", cfg.Manifest)
	}
	if cfg.GamesDir != "games" {
		t.Errorf("expected default games_dir %q, got %q", "games", cfg.GamesDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.MaxStagger != 12 {
		t.Errorf("expected default max_stagger 12, got %d", cfg.MaxStagger)
	}
	if cfg.FallbackThumb != "assets/default-thumb.png" {
		t.Errorf("expected default fallback thumb, got %q", cfg.FallbackThumb)
	}
	if len(cfg.Chrome.Hide) == 0 || cfg.Chrome.Container == "" {
		t.Error("expected default chrome selectors")
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gameshelf.yml")

	original := DefaultConfig()
	original.Manifest = "https://cdn.example.com/games.json"
	original.GamesDir = "public/games"
	original.SiteTitle = "Arcade"
	original.MaxStagger = 6
	original.Chrome.Hide = []string{"#footer", ".logo"}
	original.Server.Port = 9090
	original.History.Enabled = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Manifest != original.Manifest {
		t.Errorf("manifest: got %q, want %q", loaded.Manifest, original.Manifest)
	}
	if loaded.GamesDir != original.GamesDir {
		t.Errorf("games_dir: got %q, want %q", loaded.GamesDir, original.GamesDir)
	}
	if loaded.SiteTitle != original.SiteTitle {
		t.Errorf("site_title: got %q, want %q", loaded.SiteTitle, original.SiteTitle)
	}
	if loaded.MaxStagger != original.MaxStagger {
		t.Errorf("max_stagger: got %d, want %d", loaded.MaxStagger, original.MaxStagger)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if !loaded.History.Enabled {
		t.Error("history.enabled: got false, want true")
	}
	if len(loaded.Chrome.Hide) != len(original.Chrome.Hide) {
		t.Fatalf("chrome.hide length: got %d, want %d", len(loaded.Chrome.Hide), len(original.Chrome.Hide))
	}
	for i, v := range loaded.Chrome.Hide {
		if v != original.Chrome.Hide[i] {
			t.Errorf("chrome.hide[%d]: got %q, want %q", i, v, original.Chrome.Hide[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Manifest != "games.json" {
		t.Errorf("expected default manifest, got %q", cfg.Manifest)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("site_title: Retro Corner\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteTitle != "Retro Corner" {
		t.Errorf("site_title: got %q", cfg.SiteTitle)
	}
	if cfg.Server.Port != 8080 || cfg.GamesDir != "games" {
		t.Errorf("defaults lost: port=%d games_dir=%q", cfg.Server.Port, cfg.GamesDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("GAMESHELF_MANIFEST", "http://localhost:9000/games.json")
	t.Setenv("GAMESHELF_SERVER__PORT", "9999")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Manifest != "http://localhost:9000/games.json" {
		t.Errorf("env override failed: got %q", loaded.Manifest)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("nested env override failed: got %d, want 9999", loaded.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"GAMESHELF_MANIFEST", "manifest"},
		{"GAMESHELF_GAMES_DIR", "games_dir"},
		{"GAMESHELF_SERVER__PORT", "server.port"},
		{"GAMESHELF_HISTORY__DB_PATH", "history.db_path"},
	}
	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty manifest", func(c *Config) { c.Manifest = " " }},
		{"empty games dir", func(c *Config) { c.GamesDir = "" }},
		{"negative stagger", func(c *Config) { c.MaxStagger = -1 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"history without db", func(c *Config) { c.History.Enabled = true; c.History.DBPath = "" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
