package config

import "time"

// Config holds runtime settings for the SkyBrief CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the briefing service API.
//   - RequestTimeout: transport-level timeout for every API call.
//   - DatabasePath: sqlite file holding the persisted session credential.
//   - LogLevel: slog level (0 = Info, -4 = Debug).
type Config struct {
	ServerBaseURL  string        `env:"SERVER_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"DATABASE_PATH"`
	LogLevel       int           `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:4000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "skybrief.db"
	c.LogLevel = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
