package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studyboard/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. It is an
// intermediate DTO; values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	BootstrapAdmin string `json:"bootstrap_admin"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, when given. A missing flag means no JSON overlay;
// an unreadable or invalid file panics, since starting with half-read
// config is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BootstrapAdmin != "" {
		config.BootstrapAdmin = c.BootstrapAdmin
	}
}
