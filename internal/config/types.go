package config

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level gameshelf configuration, corresponding to .gameshelf.yml.
type Config struct {
	Manifest      string        `yaml:"manifest" koanf:"manifest"`
	GamesDir      string        `yaml:"games_dir" koanf:"games_dir"`
	AssetsDir     string        `yaml:"assets_dir" koanf:"assets_dir"`
	SiteTitle     string        `yaml:"site_title" koanf:"site_title"`
	FallbackThumb string        `yaml:"fallback_thumb" koanf:"fallback_thumb"`
	MaxStagger    int           `yaml:"max_stagger" koanf:"max_stagger"`
	Chrome        ChromeConfig  `yaml:"chrome" koanf:"chrome"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
	History       HistoryConfig `yaml:"history" koanf:"history"`
	Log           LogConfig     `yaml:"log" koanf:"log"`
}

// ChromeConfig lists the template elements the player hides inside a
// same-origin game frame.
type ChromeConfig struct {
	Hide      []string `yaml:"hide" koanf:"hide"`
	Container string   `yaml:"container" koanf:"container"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
}

// HistoryConfig controls the optional play history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	DBPath  string `yaml:"db_path" koanf:"db_path"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
