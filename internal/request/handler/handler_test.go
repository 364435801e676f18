package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) Snapshot(ctx context.Context, actor authModel.AdminIdentity) (*requestModel.SnapshotResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.SnapshotResponse), args.Error(1)
}

func (m *mockService) ListByTargetAndStatus(
	ctx context.Context,
	target requestModel.Operator,
	status requestModel.Status,
) ([]requestModel.PortabilityRequest, error) {
	args := m.Called(ctx, target, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]requestModel.PortabilityRequest), args.Error(1)
}

func (m *mockService) ApplyStatusTransition(
	ctx context.Context,
	actor authModel.AdminIdentity,
	req *requestModel.TransitionRequest,
) (*requestModel.TransitionResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestModel.TransitionResponse), args.Error(1)
}

func (m *mockService) TransitionState(requestID, fullNumber string) *requestModel.ActionStateResponse {
	args := m.Called(requestID, fullNumber)
	return args.Get(0).(*requestModel.ActionStateResponse)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())

	r := gin.New()
	r.GET("/requests", h.Snapshot)
	r.GET("/requests/scoped", h.ListByTargetAndStatus)
	r.POST("/requests/transition", h.Transition)
	r.GET("/requests/transition/state", h.TransitionState)
	return r
}

func TestHandler_Snapshot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		svc.On("Snapshot", mock.Anything, mock.Anything).
			Return(&requestModel.SnapshotResponse{
				Requests: []requestModel.PortabilityRequest{{ID: "r1"}},
				Total:    1,
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("store failure is a subscription failure", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		svc.On("Snapshot", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "SUBSCRIPTION_FAILURE")
	})
}

func TestHandler_Transition(t *testing.T) {
	body := func(t *testing.T) *bytes.Buffer {
		t.Helper()
		raw, err := json.Marshal(requestModel.TransitionRequest{
			RequestID:  "r1",
			FullNumber: "+243811111111",
			NewStatus:  "Validated",
		})
		require.NoError(t, err)
		return bytes.NewBuffer(raw)
	}

	post := func(r *gin.Engine, body *bytes.Buffer) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/requests/transition", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid transition", requestModel.ErrInvalidTransition, http.StatusBadRequest, "INVALID_TRANSITION"},
		{"permission denied", requestModel.ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
		{"not found", requestModel.ErrRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"in flight", requestModel.ErrTransitionInFlight, http.StatusConflict, "TRANSITION_IN_FLIGHT"},
		{"unknown", errors.New("disk full"), http.StatusInternalServerError, "disk full"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			r := setupRouter(svc)

			svc.On("ApplyStatusTransition", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tc.err)

			w := post(r, body(t))
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}

	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		svc.On("ApplyStatusTransition", mock.Anything, mock.Anything, mock.Anything).
			Return(&requestModel.TransitionResponse{
				Message: "request for +243811111111 validated successfully",
				Path:    "artifacts/app/users/+243811111111/portability_requests/r1",
				Status:  requestModel.StatusValidated,
			}, nil)

		w := post(r, body(t))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "validated successfully")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		w := post(r, bytes.NewBufferString("{"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ApplyStatusTransition",
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_TransitionState(t *testing.T) {
	t.Run("reports the phase", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		svc.On("TransitionState", "r1", "+243811111111").
			Return(&requestModel.ActionStateResponse{
				Path:  "artifacts/app/users/+243811111111/portability_requests/r1",
				Phase: "Pending",
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests/transition/state?request_id=r1&full_number=%2B243811111111", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pending")
	})

	t.Run("missing parameters", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests/transition/state?request_id=r1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListByTargetAndStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		submitted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		svc.On("ListByTargetAndStatus", mock.Anything,
			requestModel.OperatorVodacom, requestModel.StatusPending).
			Return([]requestModel.PortabilityRequest{
				{ID: "r1", SubmittedAt: &submitted},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests/scoped?target=VODACOM&status=PENDING", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("unknown operator", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/requests/scoped?target=TIGO&status=PENDING", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ListByTargetAndStatus",
			mock.Anything, mock.Anything, mock.Anything)
	})
}
