package config

import "time"

// Config holds runtime settings for the userdesk console.
//
// Fields:
//   - ServerBaseURL: base URL of the REST backend (no trailing slash needed).
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - RequestTimeout: transport timeout for backend calls; an expired
//     timeout surfaces as a degraded (offline) operation, not a crash.
type Config struct {
	ServerBaseURL  string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabaseDSN = "userdesk.db"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
