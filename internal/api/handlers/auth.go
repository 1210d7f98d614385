package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/services"
)

// AuthHandler serves end-user signup and login.
type AuthHandler struct {
	Svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type credentialsReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResp struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "name, email and password are required", nil)
		return
	}

	sess, err := h.Svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			httpx.WriteError(w, http.StatusConflict, "conflict", "email already registered", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sessionResp{Token: sess.Token, User: sess.Account})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	sess, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResp{Token: sess.Token, User: sess.Account})
}
