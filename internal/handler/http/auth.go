package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/vitacart/storefront/pkg/errors"
	"github.com/vitacart/storefront/pkg/httputil"
	"github.com/vitacart/storefront/pkg/validator"

	"github.com/vitacart/storefront/internal/service"
)

// AuthHandler handles HTTP requests for the provider-portal login endpoints.
type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// LoginRequest is the JSON request body for the provider login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse reports the session's provider-portal login state.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login handles POST /api/v1/provider/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.service.Login(r.Context(), sessionID(r), req.Username, req.Password); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: SessionResponse{Authenticated: true}})
}

// Logout handles POST /api/v1/provider/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), sessionID(r)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: SessionResponse{Authenticated: false}})
}

// GetSession handles GET /api/v1/provider/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.IsAuthenticated(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: SessionResponse{Authenticated: ok}})
}
