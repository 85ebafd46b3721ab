// Package steam is a minimal client for the two Steam Web API endpoints the
// checker needs.
//
// # Endpoints
//
//   - ISteamUser/ResolveVanityURL/v0001: maps a custom profile URL (alias) to a
//     SteamID64. A success code other than 1 means the alias is unknown.
//   - IPlayerService/GetOwnedGames/v0001: lists owned games with app info,
//     including played free games. Private profiles return no games list,
//     which the client reports as an empty slice.
//
// The client is built on resty and performs no retries, caching or paging.
// The Client interface allows the ownership feature to be tested against the
// testify mock in core/steam/mocks.
//
// # Usage
//
//	client, err := steam.NewClient(cfg.Steam)
//	id, ok, err := client.ResolveVanityURL(ctx, "gabelogannewell")
//	games, err := client.GetOwnedGames(ctx, id)
package steam
