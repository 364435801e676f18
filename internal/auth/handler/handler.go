// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	"github.com/RootViper4/admin-portabitity/internal/auth/service"
	"github.com/RootViper4/admin-portabitity/internal/middleware"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /auth/login.
// @Summary Credentialed admin sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body authModel.LoginRequest true "Credentials"
// @Success 200 {object} authModel.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {object} ErrorResponse "Sign-in failed (AUTH_FAILURE)"
// @Failure 403 {object} ErrorResponse "Authenticated but unauthorized (ROLE_NOT_FOUND)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			errorResponse(c, "AUTH_FAILURE", "sign-in failed", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, authModel.ErrRoleNotFound) {
			errorResponse(c, "ROLE_NOT_FOUND", "no admin role assigned, signed out", http.StatusForbidden)
			return
		}
		h.logger.Errorw("error signing in", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Anonymous handles POST /auth/anonymous.
// @Summary Anonymous sign-in fallback, issues a Guest token
// @Tags Auth
// @Produce json
// @Success 200 {object} authModel.AnonymousResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/anonymous [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Anonymous(c *gin.Context) {
	resp, err := h.service.Anonymous(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error issuing anonymous token", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout.
// @Summary Sign out, clears persisted session state
// @Tags Auth
// @Produce json
// @Success 200 {object} authModel.LogoutResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/logout [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Logout(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity.PrincipalID == "" {
		c.JSON(http.StatusOK, authModel.LogoutResponse{Message: "signed out"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), identity.PrincipalID); err != nil {
		h.logger.Errorw("error signing out", "principal", identity.PrincipalID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, authModel.LogoutResponse{Message: "signed out"})
}
