package mocks

import (
	"context"

	"steam-checker/core/steam"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of steam.Client
type Client struct {
	mock.Mock
}

func (m *Client) ResolveVanityURL(ctx context.Context, vanityURL string) (string, bool, error) {
	args := m.Called(ctx, vanityURL)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Client) GetOwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error) {
	args := m.Called(ctx, steamID)
	if games, ok := args.Get(0).([]steam.OwnedGame); ok {
		return games, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}
