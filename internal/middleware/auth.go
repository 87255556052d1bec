package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

type accessVerifier interface {
	VerifyAccess(tokenString string) (string, error)
}

type contextKey string

const subjectContextKey contextKey = "auth_subject"

type AuthMiddleware struct {
	verifier accessVerifier
}

func NewAuthMiddleware(verifier accessVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth verifies the bearer access token and threads the subject id
// through the request context for downstream handlers.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthenticated(w, "missing or invalid authorization header")
			return
		}

		subject, err := m.verifier.VerifyAccess(strings.TrimSpace(header[7:]))
		if err != nil {
			writeUnauthenticated(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), subjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the authenticated user's id, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey).(string)
	return subject, ok
}

func writeUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, apierror.New(apierror.TypeUnauthenticated, message, http.StatusUnauthorized))
}
