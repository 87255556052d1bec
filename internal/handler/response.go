package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

// errUnauthenticated is the shared 401 for handlers reached without a subject
// in context.
var errUnauthenticated = apierror.New(apierror.TypeUnauthenticated, "authentication required", http.StatusUnauthorized)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError renders the failure body shapes: {"errors": {field: cause}} for
// field-level failures, {"errorType": ..., "message": ...} for typed failures,
// and a bare {"message": ...} otherwise.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		switch {
		case len(apiErr.Fields) > 0:
			writeJSON(w, apiErr.HTTPStatus, map[string]any{"errors": apiErr.Fields})
		case apiErr.Type != "":
			writeJSON(w, apiErr.HTTPStatus, map[string]any{"errorType": apiErr.Type, "message": apiErr.Message})
		default:
			writeJSON(w, apiErr.HTTPStatus, map[string]any{"message": apiErr.Message})
		}
		return
	}

	slog.Error("unhandled error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"errorType": apierror.TypeInternal,
		"message":   "unexpected server error",
	})
}

func writeInvalidBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
}
