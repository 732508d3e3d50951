package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-s string   server base URL (e.g., "http://localhost:8080")
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, so positional command arguments pass through
// untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "s", config.ServerURL, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
