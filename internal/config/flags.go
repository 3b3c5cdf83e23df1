package config

import (
	"flag"
	"os"

	"bingotrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   URL of the backend RPC endpoint (default from Config)
//	-l string   log level (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "a", cfg.EndpointURL, "URL of the backend RPC endpoint")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (trace|debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
