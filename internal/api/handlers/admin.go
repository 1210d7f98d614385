package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/api/validate"
	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/middleware"
	"github.com/mindwellhq/mindwell-backend/internal/services"
)

// AdminHandler serves staff registration, login and profile management.
type AdminHandler struct {
	Svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

type adminSessionResp struct {
	Token string `json:"token"`
	Admin any    `json:"admin"`
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	// Boundary validation: nothing reaches the service or store on failure.
	if err := validate.Registration(req.Name, req.Email, req.Password); err != nil {
		var errs validate.Errs
		errors.As(err, &errs)
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "bad request", errs)
		return
	}

	sess, err := h.Svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			httpx.WriteError(w, http.StatusConflict, "conflict", "admin already exists", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error creating admin", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, adminSessionResp{Token: sess.Token, Admin: sess.Account})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	sess, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid email or password", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error logging in", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, adminSessionResp{Token: sess.Token, Admin: sess.Account})
}

func (h *AdminHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	admin, err := h.Svc.Profile(r.Context(), id.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "admin not found", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error fetching admin profile", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, admin)
}

type profilePatchReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req profilePatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	admin, err := h.Svc.UpdateProfile(r.Context(), id.ID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "admin not found", nil)
		case errors.Is(err, apperr.ErrConflict):
			httpx.WriteError(w, http.StatusConflict, "conflict", "email already in use", nil)
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error updating profile", nil)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, admin)
}
