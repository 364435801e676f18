// Package handler provides HTTP handlers for portability request endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RootViper4/admin-portabitity/internal/middleware"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
	"github.com/RootViper4/admin-portabitity/internal/request/service"
)

// Handler handles HTTP requests for portability request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new portability request handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Snapshot handles GET /requests.
// @Summary Full snapshot of all portability requests (empty for guests)
// @Tags Requests
// @Produce json
// @Success 200 {object} requestModel.SnapshotResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /requests [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Snapshot(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	resp, err := h.service.Snapshot(c.Request.Context(), identity)
	if err != nil {
		h.logger.Errorw("error loading snapshot", "error", err)
		errorResponse(c, "SUBSCRIPTION_FAILURE", "failed to load portability requests", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Transition handles POST /requests/transition.
// @Summary Transition a request to Validated or Rejected (single attempt, no retry)
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body requestModel.TransitionRequest true "Request"
// @Success 200 {object} requestModel.TransitionResponse
// @Failure 400 {object} ErrorResponse "Invalid body or transition (INVALID_TRANSITION)"
// @Failure 403 {object} ErrorResponse "Caller lacks write authorization (PERMISSION_DENIED)"
// @Failure 404 {object} ErrorResponse "Derived path resolves to nothing"
// @Failure 409 {object} ErrorResponse "A mutation for this target is in flight"
// @Failure 500 {object} ErrorResponse "Unknown failure, carries the underlying message"
// @Router /requests/transition [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Transition(c *gin.Context) {
	var req requestModel.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	identity := middleware.IdentityFrom(c)

	resp, err := h.service.ApplyStatusTransition(c.Request.Context(), identity, &req)
	if err != nil {
		switch {
		case errors.Is(err, requestModel.ErrInvalidTransition):
			errorResponse(c, "INVALID_TRANSITION", err.Error(), http.StatusBadRequest)
		case errors.Is(err, requestModel.ErrInvalidRequestID),
			errors.Is(err, requestModel.ErrInvalidOwnerKey):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		case errors.Is(err, requestModel.ErrPermissionDenied):
			errorResponse(c, "PERMISSION_DENIED", err.Error(), http.StatusForbidden)
		case errors.Is(err, requestModel.ErrRequestNotFound):
			notFoundResponse(c, err.Error())
		case errors.Is(err, requestModel.ErrTransitionInFlight):
			errorResponse(c, "TRANSITION_IN_FLIGHT", err.Error(), http.StatusConflict)
		default:
			h.logger.Errorw("error applying transition", "error", err)
			errorResponse(c, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TransitionState handles GET /requests/transition/state.
// @Summary In-flight state of a transition target
// @Tags Requests
// @Produce json
// @Param request_id query string true "Request ID"
// @Param full_number query string true "Full phone number (owner key)"
// @Success 200 {object} requestModel.ActionStateResponse
// @Failure 400 {object} ErrorResponse "Missing query parameters"
// @Router /requests/transition/state [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) TransitionState(c *gin.Context) {
	requestID := c.Query("request_id")
	fullNumber := c.Query("full_number")
	if requestID == "" || fullNumber == "" {
		errorResponse(c, "INVALID_REQUEST", "request_id and full_number are required", http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, h.service.TransitionState(requestID, fullNumber))
}

// ListByTargetAndStatus handles GET /requests/scoped.
// @Summary One-shot scoped list by target operator and status
// @Tags Requests
// @Produce json
// @Param target query string true "Target operator"
// @Param status query string true "Request status"
// @Success 200 {object} requestModel.SnapshotResponse
// @Failure 400 {object} ErrorResponse "Unknown operator or status"
// @Router /requests/scoped [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListByTargetAndStatus(c *gin.Context) {
	target, err := requestModel.ParseOperator(c.Query("target"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}
	status, err := requestModel.ParseStatus(c.Query("status"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	requests, err := h.service.ListByTargetAndStatus(c.Request.Context(), target, status)
	if err != nil {
		h.logger.Errorw("error loading scoped list", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []requestModel.PortabilityRequest{}
	}

	c.JSON(http.StatusOK, requestModel.SnapshotResponse{Requests: requests, Total: len(requests)})
}
