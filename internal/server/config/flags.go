package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/studyboard/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-r string   database driver: sqlite | mysql | postgres
//	-d string   database DSN
//	-m string   bootstrap admin username
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with the JSON config
// flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BootstrapAdmin, "m", config.BootstrapAdmin, "bootstrap admin username")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
