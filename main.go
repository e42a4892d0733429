package main

import (
	"log/slog"
	"time"

	"github.com/alecthomas/kong"

	"cropstudio/app"
	"cropstudio/config"
	"cropstudio/debug"
)

var cli struct {
	Path    string `arg:"" optional:"" help:"Image file to open at startup." type:"existingfile"`
	Config  string `help:"Config file path." placeholder:"FILE"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
	Debug   bool   `help:"Log runtime metrics periodically."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("cropstudio"),
		kong.Description("Interactive image crop tool."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	cfgPath := cli.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}
	if cli.Debug {
		cfg.Debug = true
	}
	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
		debug.StartMemLogger(5*time.Second, logger)
	}

	application := app.NewApp(cfg, cfgPath, logger)
	application.Start(cli.Path)
}
