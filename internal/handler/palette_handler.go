package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/REslim30/palette-pal-backend/internal/middleware"
	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/service"
)

type PaletteHandler struct {
	service *service.PaletteService
}

func NewPaletteHandler(service *service.PaletteService) *PaletteHandler {
	return &PaletteHandler{service: service}
}

func (h *PaletteHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	var payload model.PaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	palette, err := h.service.Create(r.Context(), subject, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, palette)
}

func (h *PaletteHandler) Get(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	palette, err := h.service.Get(r.Context(), subject, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, palette)
}

func (h *PaletteHandler) List(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	palettes, err := h.service.List(r.Context(), subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, palettes)
}

func (h *PaletteHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	var payload model.PaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	palette, err := h.service.Update(r.Context(), subject, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, palette)
}

func (h *PaletteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), subject, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Deleted palette with id: " + id})
}
