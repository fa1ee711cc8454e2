// Package app provides the application initialization and lifecycle management
package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"

	"github.com/aaurelions/combicode/internal/config"
	"github.com/aaurelions/combicode/internal/loggy"
	"github.com/aaurelions/combicode/internal/parser"
	"github.com/aaurelions/combicode/internal/recreate"
	"github.com/aaurelions/combicode/internal/scanner"
)

// App represents the application instance with its dependencies
type App struct {
	Config   *config.Config
	Parser   *parser.Service
	Scanner  *scanner.Service
	Recreate *recreate.Service
}

// New initializes a new application instance with all its dependencies
func New() (*App, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}

	if cfg.Output.NoColor {
		color.NoColor = true
		text.DisableColors()
	}

	logger := loggy.GetGlobalLogger()

	parserService := parser.NewService(logger)

	return &App{
		Config:   cfg,
		Parser:   parserService,
		Scanner:  scanner.NewService(logger, parserService.Detector()),
		Recreate: recreate.NewService(logger),
	}, nil
}

// initConfig loads and sets up the application configuration
func initConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	config.Set(cfg)
	return cfg, nil
}

// initLogger initializes the logging system
func initLogger(cfg *config.Config) error {
	err := loggy.Init(loggy.Config{
		Level:      config.ParseLogLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// FromContext retrieves the App instance from the CLI context
func FromContext(c *cli.Context) (*App, error) {
	application, ok := c.App.Metadata["app"].(*App)
	if !ok || application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}
