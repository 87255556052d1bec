package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/REslim30/palette-pal-backend/internal/middleware"
	"github.com/REslim30/palette-pal-backend/internal/model"
	"github.com/REslim30/palette-pal-backend/internal/service"
)

type GroupHandler struct {
	service *service.GroupService
}

func NewGroupHandler(service *service.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	var payload model.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	group, err := h.service.Create(r.Context(), subject, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	group, err := h.service.Get(r.Context(), subject, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	groups, err := h.service.List(r.Context(), subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, errUnauthenticated)
		return
	}

	var payload model.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeInvalidBody(w)
		return
	}

	group, err := h.service.Update(r.Context(), subject, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, map[string]any{"message": "Deleted group with id: " + id})
}
