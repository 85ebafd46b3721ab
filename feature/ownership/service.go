package ownership

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"steam-checker/core/steam"
	"steam-checker/core/utils"

	"go.uber.org/zap"
)

// ErrUnresolvable is returned when a custom URL does not map to a SteamID.
var ErrUnresolvable = errors.New("could not resolve Steam ID for custom URL")

// Service checks a games list against a Steam library.
type Service struct {
	client steam.Client
	loader *Loader
	logger *zap.Logger
}

// NewService creates a new ownership service.
func NewService(client steam.Client, loader *Loader, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		loader: loader,
		logger: logger,
	}
}

// ResolveAccount returns the SteamID for input. All-digit input is taken as
// a SteamID as is; anything else is resolved as a custom URL.
func (s *Service) ResolveAccount(ctx context.Context, input string) (string, error) {
	if utils.IsDigits(input) {
		return input, nil
	}

	s.logger.Debug("Resolving custom URL", zap.String("custom_url", input))
	steamID, ok, err := s.client.ResolveVanityURL(ctx, input)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvable, input)
	}

	s.logger.Debug("Resolved custom URL", zap.String("custom_url", input), zap.String("steam_id", steamID))
	return steamID, nil
}

// Check loads the games list at gamesPath and partitions it by ownership for steamID.
// The library is only fetched once the list has been read.
func (s *Service) Check(ctx context.Context, gamesPath, steamID string) (*Report, error) {
	requested, err := s.loader.Load(ctx, gamesPath)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Loaded games list", zap.String("file", gamesPath), zap.Int("count", len(requested)))

	owned, err := s.client.GetOwnedGames(ctx, steamID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		s.logger.Warn("No owned games returned; profile may be private", zap.String("steam_id", steamID))
	}

	report := Compare(owned, requested)
	s.logger.Info("Ownership check completed",
		zap.String("steam_id", steamID),
		zap.Int("total", report.Total()),
		zap.Int("owned", len(report.Owned)),
		zap.Int("not_owned", len(report.NotOwned)),
	)

	return report, nil
}

// Owned returns the sorted names of every game in the library of steamID.
func (s *Service) Owned(ctx context.Context, steamID string) ([]string, error) {
	games, err := s.client.GetOwnedGames(ctx, steamID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(games))
	for _, g := range games {
		names = append(names, g.Name)
	}
	slices.Sort(names)

	return names, nil
}
