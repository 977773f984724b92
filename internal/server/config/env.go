package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables,
// loading a local .env file first when one exists.
//
// Variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DRIVER  sqlite | mysql | postgres
//	DATABASE_DSN     driver-specific DSN
//	BOOTSTRAP_ADMIN  username promoted to admin at startup
func parseEnv(config *Config) {
	// missing .env is fine; real env still applies
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("ADDRESS", config.EndpointAddr)
	config.DatabaseDriver = getEnv("DATABASE_DRIVER", config.DatabaseDriver)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.BootstrapAdmin = getEnv("BOOTSTRAP_ADMIN", config.BootstrapAdmin)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
