package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/middleware"
	"github.com/mindwellhq/mindwell-backend/internal/models"
	"github.com/mindwellhq/mindwell-backend/internal/services"
)

// ResourceHandler serves the content catalog. Role enforcement happens
// in the router middleware; handlers only read the verified identity.
type ResourceHandler struct {
	Svc *services.ResourceService
}

func NewResourceHandler(svc *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Svc: svc}
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var in services.ResourceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Create(r.Context(), in, id.ID)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", err.Error(), nil)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	var f models.ResourceFilter
	if v := r.URL.Query().Get("type"); v != "" {
		t := models.ResourceType(v)
		f.Type = &t
	}
	if v := r.URL.Query().Get("isPublished"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsPublished = &b
		}
	}

	list, err := h.Svc.List(r.Context(), f)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error fetching resources", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *ResourceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "resource not found", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error fetching resource", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var patch models.ResourcePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), patch, id.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "resource not found", nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", err.Error(), nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id"), id.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "resource not found", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error deleting resource", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "resource deleted"})
}

func (h *ResourceHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	t := models.ResourceType(chi.URLParam(r, "type"))
	if !models.ValidType(t) {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid resource type", nil)
		return
	}

	list, err := h.Svc.ListByType(r.Context(), t)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error fetching resources", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
