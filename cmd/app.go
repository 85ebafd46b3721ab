package cmd

import (
	"fmt"

	"steam-checker/core/config"
	"steam-checker/core/logger"
	"steam-checker/core/steam"
	"steam-checker/core/storage"
	"steam-checker/feature/ownership"

	"go.uber.org/zap"
)

// app bundles what a command needs for one invocation.
type app struct {
	logger  *zap.Logger
	client  steam.Client
	service *ownership.Service
}

// newApp loads configuration and builds the ownership service. The API key
// is validated here, before any client exists. Object storage is only set up
// when gamesPath points into it.
func newApp(gamesPath string) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (please create a .env file with your Steam API key)", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logger.WithRunID(logg)

	client, err := steam.NewClient(cfg.Steam)
	if err != nil {
		return nil, fmt.Errorf("failed to create steam client: %w", err)
	}

	var store storage.Client
	if ownership.IsObjectPath(gamesPath) {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		logg.Debug("Reading games list from object storage", zap.String("endpoint", cfg.Storage.Endpoint))
	}

	return &app{
		logger:  logg,
		client:  client,
		service: ownership.NewService(client, ownership.NewLoader(store), logg),
	}, nil
}

// Close releases the client and flushes the logger.
func (a *app) Close() {
	_ = a.client.Close()
	_ = a.logger.Sync()
}
