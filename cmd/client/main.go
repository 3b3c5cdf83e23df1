package main

import (
	"context"
	"os"

	"bingotrack/internal/buildinfo"
	"bingotrack/internal/cli"
	"bingotrack/internal/config"
	"bingotrack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewZerologLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
