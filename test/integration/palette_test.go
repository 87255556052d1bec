package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func sunsetPalette() map[string]any {
	return map[string]any{
		"name": "Sunset",
		"colors": []map[string]any{
			{"name": "orange", "shades": []string{"#ff9900", "#cc7a00"}},
			{"name": "violet", "shades": []string{"#8800ff"}},
		},
	}
}

func TestPalettesRequireAuthentication(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/palettes", sunsetPalette(), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	listResp := doJSON(t, http.MethodGet, ts.URL+"/palettes", nil, "")
	defer listResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, listResp.StatusCode)
}

func TestPaletteCRUD(t *testing.T) {
	ts := newTestServer(t)
	registered, _ := registerUser(t, ts, "paletteuser")

	createResp := doJSON(t, http.MethodPost, ts.URL+"/palettes", sunsetPalette(), registered.JWT)
	defer createResp.Body.Close()
	require.Equal(t, http.StatusOK, createResp.StatusCode)

	created := decodeMap(t, createResp)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.Equal(t, "Sunset", created["name"])
	require.Equal(t, registered.User.ID, created["user"])

	getResp := doJSON(t, http.MethodGet, ts.URL+"/palettes/"+id, nil, registered.JWT)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	require.Equal(t, created, decodeMap(t, getResp))

	listResp := doJSON(t, http.MethodGet, ts.URL+"/palettes", nil, registered.JWT)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	updated := sunsetPalette()
	updated["name"] = "Sunrise"
	updateResp := doJSON(t, http.MethodPut, ts.URL+"/palettes/"+id, updated, registered.JWT)
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)
	require.Equal(t, "Sunrise", decodeMap(t, updateResp)["name"])

	deleteResp := doJSON(t, http.MethodDelete, ts.URL+"/palettes/"+id, nil, registered.JWT)
	defer deleteResp.Body.Close()
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)

	missingResp := doJSON(t, http.MethodGet, ts.URL+"/palettes/"+id, nil, registered.JWT)
	defer missingResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, missingResp.StatusCode)
	require.Equal(t, "No palette found for id: "+id, decodeMap(t, missingResp)["message"])
}

func TestPaletteShadeValidation(t *testing.T) {
	ts := newTestServer(t)
	registered, _ := registerUser(t, ts, "paletteuser")

	payload := map[string]any{
		"name": "Broken",
		"colors": []map[string]any{
			{"name": "red", "shades": []string{"not-a-color"}},
		},
	}

	resp := doJSON(t, http.MethodPost, ts.URL+"/palettes", payload, registered.JWT)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	fields := body["errors"].(map[string]any)
	require.Equal(t, "regexp", fields["colors.0.shades.0"])
}

func TestPalettesAreScopedPerUser(t *testing.T) {
	ts := newTestServer(t)
	owner, _ := registerUser(t, ts, "owner")
	intruder, _ := registerUser(t, ts, "intruder")

	createResp := doJSON(t, http.MethodPost, ts.URL+"/palettes", sunsetPalette(), owner.JWT)
	defer createResp.Body.Close()
	require.Equal(t, http.StatusOK, createResp.StatusCode)
	id := decodeMap(t, createResp)["id"].(string)

	foreignResp := doJSON(t, http.MethodGet, ts.URL+"/palettes/"+id, nil, intruder.JWT)
	defer foreignResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, foreignResp.StatusCode)
	require.Equal(t, "No palette found for id: "+id, decodeMap(t, foreignResp)["message"])
}
