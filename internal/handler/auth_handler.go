package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/REslim30/palette-pal-backend/internal/middleware"
	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/service"
	"github.com/REslim30/palette-pal-backend/pkg/apierror"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	service    *service.AuthService
	refreshTTL time.Duration
}

func NewAuthHandler(service *service.AuthService, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, refreshTTL: refreshTTL}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]any{"jwt": result.AccessToken, "user": result.User})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	result, err := h.service.Login(r.Context(), payload.Identifier, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]any{"jwt": result.AccessToken, "user": result.User})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		writeError(w, apierror.New(apierror.TypeUnauthenticated, "refresh token cookie missing", http.StatusUnauthorized))
		return
	}

	result, err := h.service.Refresh(r.Context(), cookie.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"jwt": result.AccessToken, "user": result.User})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		h.service.Logout(r.Context(), cookie.Value)
	}

	h.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"message": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	user, err := h.service.UserByID(r.Context(), subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
