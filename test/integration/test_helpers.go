package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/REslim30/palette-pal-backend/internal/config"
	"github.com/REslim30/palette-pal-backend/internal/handler"
	"github.com/REslim30/palette-pal-backend/internal/middleware"
	"github.com/REslim30/palette-pal-backend/internal/registry"
	"github.com/REslim30/palette-pal-backend/internal/repository"
	"github.com/REslim30/palette-pal-backend/internal/router"
	"github.com/REslim30/palette-pal-backend/internal/service"
	"github.com/REslim30/palette-pal-backend/internal/token"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testRefreshTTL    = 30 * 24 * time.Hour
)

type testServer struct {
	*httptest.Server
	Registry *registry.MemoryRegistry
	Issuer   *token.Issuer
}

// newTestServer builds the full router on in-memory stores so the end-to-end
// tests exercise the real middleware and handler stack without Postgres or
// Redis.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	reg := registry.NewMemoryRegistry(testRefreshTTL)
	issuer := token.NewIssuer(testAccessSecret, testRefreshSecret, 15*time.Minute)
	authService := service.NewAuthService(repository.NewMemoryUserRepository(), reg, issuer)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  testRefreshTTL,
	}

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.RefreshTokenTTL),
		Palette: handler.NewPaletteHandler(service.NewPaletteService(repository.NewMemoryPaletteRepository())),
		Group:   handler.NewGroupHandler(service.NewGroupService(repository.NewMemoryGroupRepository())),
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(authService), handlers))
	t.Cleanup(server.Close)

	return &testServer{Server: server, Registry: reg, Issuer: issuer}
}

type authBody struct {
	JWT  string `json:"jwt"`
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

// registerUser registers a fresh account and returns the parsed auth body plus
// the refresh cookie set on the response.
func registerUser(t *testing.T, ts *testServer, username string) (authBody, *http.Cookie) {
	t.Helper()

	resp := postJSON(t, ts.URL+"/register", map[string]string{
		"email":    username + "@example.com",
		"username": username,
		"password": username + "-password",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body authBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.JWT)
	require.NotEmpty(t, body.User.ID)

	var refreshCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie, "register response must set refresh_token cookie")

	return body, refreshCookie
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method string, url string, payload any, accessToken string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if payload == nil {
		reader = bytes.NewReader(nil)
	} else {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func doWithCookie(t *testing.T, method string, url string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}
