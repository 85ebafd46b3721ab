package steam_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"steam-checker/core/steam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer serves body with a JSON content type and records the last query.
func newServer(t *testing.T, status int, body string, lastQuery *url.Values, lastPath *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		if lastPath != nil {
			*lastPath = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newRawServer serves body with the given content type, which may be empty.
func newRawServer(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType == "" {
			// Keep net/http from sniffing one.
			w.Header()["Content-Type"] = nil
		} else {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) steam.Client {
	t.Helper()
	client, err := steam.NewClient(steam.Config{ApiKey: "secret", BaseURL: baseURL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := steam.NewClient(steam.Config{ApiKey: "k", BaseURL: "http://api.steampowered.com"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("TrailingSlashWithTimeout", func(t *testing.T) {
		client, err := steam.NewClient(steam.Config{ApiKey: "k", BaseURL: "https://api.steampowered.com/", TimeoutSeconds: 5})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidBaseURL", func(t *testing.T) {
		client, err := steam.NewClient(steam.Config{ApiKey: "k", BaseURL: "api.steampowered.com"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestResolveVanityURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var query url.Values
		var path string
		srv := newServer(t, http.StatusOK, `{"response":{"steamid":"76561197960287930","success":1}}`, &query, &path)

		id, ok, err := newClient(t, srv.URL).ResolveVanityURL(context.Background(), "gabelogannewell")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "76561197960287930", id)

		assert.Equal(t, "/ISteamUser/ResolveVanityURL/v0001/", path)
		assert.Equal(t, "secret", query.Get("key"))
		assert.Equal(t, "gabelogannewell", query.Get("vanityurl"))
	})

	t.Run("NoMatch", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"response":{"success":42,"message":"No match"}}`, nil, nil)

		id, ok, err := newClient(t, srv.URL).ResolveVanityURL(context.Background(), "nobody-here")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, id)
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := newServer(t, http.StatusForbidden, `{}`, nil, nil)

		_, ok, err := newClient(t, srv.URL).ResolveVanityURL(context.Background(), "alias")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("HTMLBody", func(t *testing.T) {
		srv := newRawServer(t, "text/html", "<html>Internal error</html>")

		_, ok, err := newClient(t, srv.URL).ResolveVanityURL(context.Background(), "alias")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("JSONWithoutContentType", func(t *testing.T) {
		srv := newRawServer(t, "", `{"response":{"steamid":"76561197960287930","success":1}}`)

		id, ok, err := newClient(t, srv.URL).ResolveVanityURL(context.Background(), "gabelogannewell")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "76561197960287930", id)
	})

	t.Run("TransportError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		_, _, err := newClient(t, base).ResolveVanityURL(context.Background(), "alias")
		assert.Error(t, err)
	})
}

func TestGetOwnedGames(t *testing.T) {
	t.Run("Games", func(t *testing.T) {
		var query url.Values
		var path string
		body := `{"response":{"game_count":2,"games":[
			{"appid":620,"name":"Portal 2","playtime_forever":1200},
			{"appid":220,"name":"Half-Life 2","playtime_forever":30}]}}`
		srv := newServer(t, http.StatusOK, body, &query, &path)

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "76561197960287930")
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, steam.OwnedGame{AppID: 620, Name: "Portal 2", PlaytimeForever: 1200}, games[0])
		assert.Equal(t, "Half-Life 2", games[1].Name)

		assert.Equal(t, "/IPlayerService/GetOwnedGames/v0001/", path)
		assert.Equal(t, "secret", query.Get("key"))
		assert.Equal(t, "76561197960287930", query.Get("steamid"))
		assert.Equal(t, "1", query.Get("include_appinfo"))
		assert.Equal(t, "1", query.Get("include_played_free_games"))
	})

	t.Run("PrivateProfile", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"response":{}}`, nil, nil)

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "76561197960287930")
		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})

	t.Run("NoResponseObject", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{}`, nil, nil)

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "1")
		require.NoError(t, err)
		assert.Empty(t, games)
	})

	t.Run("HTMLBody", func(t *testing.T) {
		srv := newRawServer(t, "text/html", "<html>Internal error</html>")

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "1")
		assert.Error(t, err)
		assert.Nil(t, games)
	})

	t.Run("JSONWithoutContentType", func(t *testing.T) {
		srv := newRawServer(t, "", `{"response":{"games":[{"appid":620,"name":"Portal 2"}]}}`)

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Portal 2", games[0].Name)
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := newServer(t, http.StatusInternalServerError, `{}`, nil, nil)

		games, err := newClient(t, srv.URL).GetOwnedGames(context.Background(), "1")
		assert.Error(t, err)
		assert.Nil(t, games)
	})
}
