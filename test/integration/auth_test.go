package integration

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/REslim30/palette-pal-backend/internal/token"
)

func TestRegisterIssuesTokensAndCookie(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/register", map[string]string{
		"email":    "testuser18@gmail.com",
		"username": "testuser18",
		"password": "testuser18password",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "password_hash")

	// The access token must verify against the deployment secret and carry
	// the new user's id as subject.
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(body["jwt"].(string), claims, func(*jwt.Token) (any, error) {
		return []byte(testAccessSecret), nil
	})
	require.NoError(t, err)
	require.Equal(t, user["id"], claims.Subject)

	setCookie := resp.Header.Get("Set-Cookie")
	require.Contains(t, setCookie, "refresh_token=")
	require.Contains(t, setCookie, "HttpOnly")
	require.Contains(t, setCookie, "Secure")
	require.Contains(t, setCookie, "SameSite=None")
}

func TestRegisterRejectsNonJSONBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/register", "text/plain", strings.NewReader("email=x"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestRegisterValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/register", map[string]string{"email": "not-an-email"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "regexp", fields["email"])
	require.Equal(t, "required", fields["username"])
	require.Equal(t, "required", fields["password"])
}

func TestRegisterDuplicateFields(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "testuser18")

	resp := postJSON(t, ts.URL+"/register", map[string]string{
		"email":    "different@email.com",
		"username": "testuser18",
		"password": "whatever",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMap(t, resp)
	require.Equal(t, map[string]any{"username": "unique"}, body["errors"])

	resp = postJSON(t, ts.URL+"/register", map[string]string{
		"email":    "testuser18@example.com",
		"username": "differentUsername",
		"password": "whatever",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeMap(t, resp)
	require.Equal(t, map[string]any{"email": "unique"}, body["errors"])
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "testuser18")

	resp := postJSON(t, ts.URL+"/login", map[string]string{
		"identifier": "testuser18",
		"password":   "incorrect-password",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	require.Equal(t, "invalid-credentials", body["errorType"])
	require.IsType(t, "", body["message"])

	// Unknown identifier must yield the identical shape.
	resp = postJSON(t, ts.URL+"/login", map[string]string{
		"identifier": "doesntexistidentifier",
		"password":   "whatever",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	unknown := decodeMap(t, resp)
	require.Equal(t, body, unknown)
}

func TestLoginByEmailSetsCookieAndReturnsJWT(t *testing.T) {
	ts := newTestServer(t)
	registered, _ := registerUser(t, ts, "testuser18")

	resp := postJSON(t, ts.URL+"/login", map[string]string{
		"identifier": "testuser18@example.com",
		"password":   "testuser18-password",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	require.NotEmpty(t, body["jwt"])
	user := body["user"].(map[string]any)
	require.Equal(t, registered.User.ID, user["id"])
	require.Contains(t, resp.Header.Get("Set-Cookie"), "refresh_token=")
}

func TestCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	registered, _ := registerUser(t, ts, "testuser18")

	resp := doJSON(t, http.MethodGet, ts.URL+"/users/me", nil, registered.JWT)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := decodeMap(t, resp)
	require.Equal(t, registered.User.ID, user["id"])
	require.Equal(t, "testuser18", user["username"])
	require.NotContains(t, user, "password")
}

func TestCurrentUserRejectsExpiredToken(t *testing.T) {
	ts := newTestServer(t)
	registered, _ := registerUser(t, ts, "testuser18")

	// Same secret, already-elapsed expiry.
	expiredIssuer := token.NewIssuer(testAccessSecret, testRefreshSecret, -time.Minute)
	expired, err := expiredIssuer.IssueAccess(registered.User.ID)
	require.NoError(t, err)

	resp := doJSON(t, http.MethodGet, ts.URL+"/users/me", nil, expired)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUserRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/users/me", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshFlow(t *testing.T) {
	ts := newTestServer(t)
	registered, cookie := registerUser(t, ts, "testuser18")

	resp := doWithCookie(t, http.MethodPost, ts.URL+"/refresh", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	require.NotEmpty(t, body["jwt"])
	user := body["user"].(map[string]any)
	require.Equal(t, registered.User.ID, user["id"])

	// The refresh token itself is not rotated.
	require.Empty(t, resp.Header.Get("Set-Cookie"))
}

func TestRefreshWithoutCookie(t *testing.T) {
	ts := newTestServer(t)

	resp := doWithCookie(t, http.MethodPost, ts.URL+"/refresh", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshAfterRegistryRemoval(t *testing.T) {
	ts := newTestServer(t)
	registered, cookie := registerUser(t, ts, "testuser18")

	require.NoError(t, ts.Registry.Remove(context.Background(), registered.User.ID))

	resp := doWithCookie(t, http.MethodPost, ts.URL+"/refresh", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRevokesRefreshAndClearsCookie(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := registerUser(t, ts, "testuser18")

	resp := doWithCookie(t, http.MethodPost, ts.URL+"/logout", cookie)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Set-Cookie"), "refresh_token=;")

	refreshResp := doWithCookie(t, http.MethodPost, ts.URL+"/refresh", cookie)
	defer refreshResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, refreshResp.StatusCode)
}
