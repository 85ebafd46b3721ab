package steam

// VanitySuccess is the success code returned by ResolveVanityURL on a match.
const VanitySuccess = 1

// VanityResponse is the body of ISteamUser/ResolveVanityURL.
type VanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
		Message string `json:"message"`
	} `json:"response"`
}

// OwnedGame is a single entry of IPlayerService/GetOwnedGames.
type OwnedGame struct {
	AppID           uint64 `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"` // minutes
}

// OwnedGamesResponse is the body of IPlayerService/GetOwnedGames.
// Games is absent for private profiles and unknown ids.
type OwnedGamesResponse struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []OwnedGame `json:"games"`
	} `json:"response"`
}
