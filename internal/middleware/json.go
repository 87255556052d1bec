package middleware

import (
	"encoding/json"
	"mime"
	"net/http"
)

func jsonEncode(w http.ResponseWriter, value any) error {
	return json.NewEncoder(w).Encode(value)
}

// RequireJSON rejects request bodies that are not declared as JSON with 415,
// before the handler ever reads them.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
