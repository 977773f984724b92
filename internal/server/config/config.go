// Package config handles configuration for the server component,
// layering defaults, environment variables, an optional JSON file,
// and command-line flags.
package config

// Config holds runtime settings for the studyboard server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDriver: storage backend, one of "sqlite", "mysql", "postgres".
//   - DatabaseDSN: driver-specific DSN.
//   - BootstrapAdmin: username promoted to the admin role at startup,
//     if it exists. Empty means no promotion.
type Config struct {
	EndpointAddr   string
	DatabaseDriver string
	DatabaseDSN    string
	BootstrapAdmin string
}

// LoadDefaults populates Config with development defaults: a local
// SQLite file needing no external server.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:studyboard.db"
	c.BootstrapAdmin = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying
// environment variables, an optional JSON file, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
