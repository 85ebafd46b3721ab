package steam

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	resolveVanityPath = "/ISteamUser/ResolveVanityURL/v0001/"
	ownedGamesPath    = "/IPlayerService/GetOwnedGames/v0001/"
)

// Client defines the Steam Web API operations used by the checker.
type Client interface {
	// ResolveVanityURL maps a custom profile URL to a SteamID64.
	// ok is false when Steam reports no match.
	ResolveVanityURL(ctx context.Context, vanityURL string) (steamID string, ok bool, err error)
	// GetOwnedGames lists the games owned or played by steamID.
	// A response without a games list yields an empty slice.
	GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error)
	// Close releases idle connections.
	Close() error
}

// NewClient creates a new Steam Web API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid steam base url %q", cfg.BaseURL)
	}

	rc := resty.New().
		SetBaseURL(base).
		SetHeader("Accept", "application/json")
	if cfg.TimeoutSeconds > 0 {
		rc.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &restClient{client: rc, apiKey: cfg.ApiKey}, nil
}

// Bodies are decoded as JSON whatever Content-Type Steam sends, so an HTML
// error page fails loudly instead of reading as an empty result.
type restClient struct {
	client *resty.Client
	apiKey string
}

func (c *restClient) ResolveVanityURL(ctx context.Context, vanityURL string) (string, bool, error) {
	var body VanityResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":       c.apiKey,
			"vanityurl": vanityURL,
		}).
		SetForceResponseContentType("application/json").
		SetResult(&body).
		Get(resolveVanityPath)
	if err != nil {
		return "", false, fmt.Errorf("resolve vanity url request failed: %w", err)
	}
	if res.IsError() {
		return "", false, fmt.Errorf("resolve vanity url: unexpected status %s", res.Status())
	}

	if body.Response.Success != VanitySuccess || body.Response.SteamID == "" {
		return "", false, nil
	}
	return body.Response.SteamID, true, nil
}

func (c *restClient) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	var body OwnedGamesResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":                       c.apiKey,
			"steamid":                   steamID,
			"include_appinfo":           "1",
			"include_played_free_games": "1",
		}).
		SetForceResponseContentType("application/json").
		SetResult(&body).
		Get(ownedGamesPath)
	if err != nil {
		return nil, fmt.Errorf("get owned games request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("get owned games: unexpected status %s", res.Status())
	}

	if body.Response.Games == nil {
		return []OwnedGame{}, nil
	}
	return body.Response.Games, nil
}

func (c *restClient) Close() error {
	return c.client.Close()
}
