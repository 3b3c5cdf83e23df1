// Package config loads runtime settings for the bingotrack CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional config file plus BINGO_* environment variables (via viper), and
// finally command-line flags.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"bingotrack/internal/flagx"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - EndpointURL: full URL of the backend RPC endpoint. Every action is
//     POSTed to this single URL.
//   - Locale: BCP 47 tag used for client-name collation in list sorting.
//   - LogLevel: trace, debug, info, warn or error.
//   - LogFormat: "console" for human-readable output, "json" otherwise.
type Config struct {
	EndpointURL string
	Locale      string
	LogLevel    string
	LogFormat   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:8080/api"
	c.Locale = "es"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment / config file and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays Config with values from BINGO_* environment variables and,
// if -c/-config was given, from that config file. Missing files are an error:
// an explicitly requested config file that cannot be read should not be
// silently skipped.
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("bingo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint_url", cfg.EndpointURL)
	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	if file := flagx.ConfigFileFlag(); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	cfg.EndpointURL = v.GetString("endpoint_url")
	cfg.Locale = v.GetString("locale")
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFormat = v.GetString("log_format")
}
