//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

func (s *E2ETestSuite) TestSuperAdminLifecycle() {
	s.seedAccount("acc-1", "root@portability.cd", "secret", "SuperAdmin", "")
	s.seedRequest("req-1", "+243811234567",
		requestModel.OperatorOrange, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	session := s.login("root@portability.cd", "secret")
	assert.Equal(s.T(), authModel.RoleSuperAdmin, session.Role)

	// Full snapshot
	resp, raw := s.doJSON("GET", "/requests", session.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var snapshot requestModel.SnapshotResponse
	require.NoError(s.T(), json.Unmarshal(raw, &snapshot))
	assert.Equal(s.T(), 1, snapshot.Total)

	// Validate the pending request
	resp, raw = s.doJSON("POST", "/requests/transition", session.Token, &requestModel.TransitionRequest{
		RequestID:  "req-1",
		FullNumber: "+243811234567",
		NewStatus:  "Validated",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(raw))

	var transition requestModel.TransitionResponse
	require.NoError(s.T(), json.Unmarshal(raw, &transition))
	assert.Equal(s.T(), requestModel.StatusValidated, transition.Status)
	assert.Equal(s.T(),
		"artifacts/"+e2eAppID+"/users/+243811234567/portability_requests/req-1",
		transition.Path)

	// The row was updated, not replaced
	var stored requestModel.PortabilityRequest
	require.NoError(s.T(), s.db.Where("id = ?", "req-1").First(&stored).Error)
	assert.Equal(s.T(), requestModel.StatusValidated, stored.Status)
	assert.NotNil(s.T(), stored.ProcessedAt)
	assert.Equal(s.T(), "subscriber@example.com", stored.Email)

	// Re-running the same transition on a terminal row still succeeds
	resp, _ = s.doJSON("POST", "/requests/transition", session.Token, &requestModel.TransitionRequest{
		RequestID:  "req-1",
		FullNumber: "+243811234567",
		NewStatus:  "Rejected",
	})
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)

	// The in-flight tracker settled
	resp, raw = s.doJSON("GET",
		"/requests/transition/state?request_id=req-1&full_number="+url.QueryEscape("+243811234567"),
		session.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var state requestModel.ActionStateResponse
	require.NoError(s.T(), json.Unmarshal(raw, &state))
	assert.Equal(s.T(), "Succeeded", state.Phase)
}

func (s *E2ETestSuite) TestProviderAdminScope() {
	s.seedAccount("acc-2", "orange@portability.cd", "secret", "ProviderAdmin", "ORANGE")
	s.seedRequest("req-own", "+243811111111",
		requestModel.OperatorOrange, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	s.seedRequest("req-other", "+243822222222",
		requestModel.OperatorAirtel, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC))

	session := s.login("orange@portability.cd", "secret")
	assert.Equal(s.T(), "ORANGE", session.Operator)

	// A request leaving the admin's own network can be processed
	resp, raw := s.doJSON("POST", "/requests/transition", session.Token, &requestModel.TransitionRequest{
		RequestID:  "req-own",
		FullNumber: "+243811111111",
		NewStatus:  "Rejected",
	})
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode, string(raw))

	// A request sourced from another operator is out of scope
	resp, raw = s.doJSON("POST", "/requests/transition", session.Token, &requestModel.TransitionRequest{
		RequestID:  "req-other",
		FullNumber: "+243822222222",
		NewStatus:  "Validated",
	})
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "PERMISSION_DENIED")

	var untouched requestModel.PortabilityRequest
	require.NoError(s.T(), s.db.Where("id = ?", "req-other").First(&untouched).Error)
	assert.Equal(s.T(), requestModel.StatusPending, untouched.Status)
}

func (s *E2ETestSuite) TestGuestFlow() {
	s.seedRequest("req-1", "+243811234567",
		requestModel.OperatorOrange, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	resp, raw := s.doJSON("POST", "/auth/anonymous", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var anon authModel.AnonymousResponse
	require.NoError(s.T(), json.Unmarshal(raw, &anon))
	assert.Equal(s.T(), authModel.RoleGuest, anon.Role)

	// Guests see an empty collection, not an error
	resp, raw = s.doJSON("GET", "/requests", anon.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var snapshot requestModel.SnapshotResponse
	require.NoError(s.T(), json.Unmarshal(raw, &snapshot))
	assert.Equal(s.T(), 0, snapshot.Total)

	// Write access is denied by the authorization rules
	resp, raw = s.doJSON("POST", "/requests/transition", anon.Token, &requestModel.TransitionRequest{
		RequestID:  "req-1",
		FullNumber: "+243811234567",
		NewStatus:  "Validated",
	})
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "PERMISSION_DENIED")
}

func (s *E2ETestSuite) TestAuthScenarios() {
	s.seedAccount("acc-1", "root@portability.cd", "secret", "SuperAdmin", "")

	// Wrong password
	resp, raw := s.doJSON("POST", "/auth/login", "", &authModel.LoginRequest{
		Email:    "root@portability.cd",
		Password: "wrong",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "AUTH_FAILURE")

	// Authenticated but unauthorized: account without a role record
	hashOnly := &authModel.AdminAccount{
		ID:           "acc-norole",
		Email:        "norole@portability.cd",
		PasswordHash: s.mustHash("secret"),
		CreatedAt:    time.Now(),
	}
	require.NoError(s.T(), s.db.Create(hashOnly).Error)

	resp, raw = s.doJSON("POST", "/auth/login", "", &authModel.LoginRequest{
		Email:    "norole@portability.cd",
		Password: "secret",
	})
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "ROLE_NOT_FOUND")

	// Logout, then revoke the role: the next call is forced out
	session := s.login("root@portability.cd", "secret")
	resp, _ = s.doJSON("POST", "/auth/logout", session.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.NoError(s.T(), s.db.Delete(&authModel.AdminRoleRecord{}, "account_id = ?", "acc-1").Error)

	resp, raw = s.doJSON("GET", "/requests", session.Token, nil)
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "ROLE_NOT_FOUND")
}

func (s *E2ETestSuite) TestDerivedViews() {
	s.seedAccount("acc-1", "root@portability.cd", "secret", "SuperAdmin", "")
	s.seedRequest("req-1", "+243811111111",
		requestModel.OperatorOrange, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.seedRequest("req-2", "+243822222222",
		requestModel.OperatorAirtel, requestModel.OperatorOrange, requestModel.StatusValidated,
		time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC))

	session := s.login("root@portability.cd", "secret")

	resp, raw := s.doJSON("GET", "/analytics", session.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var analytics struct {
		Years         []int                      `json:"years"`
		OverallTotals map[string]json.RawMessage `json:"overallTotals"`
	}
	require.NoError(s.T(), json.Unmarshal(raw, &analytics))
	assert.Equal(s.T(), []int{2024, 2023}, analytics.Years)
	assert.Len(s.T(), analytics.OverallTotals, 4)

	resp, raw = s.doJSON("GET", "/dashboard", session.Token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var dashboard struct {
		Role    string `json:"role"`
		Buckets struct {
			SuperAdmin map[string]json.RawMessage `json:"superAdmin"`
		} `json:"buckets"`
	}
	require.NoError(s.T(), json.Unmarshal(raw, &dashboard))
	assert.Equal(s.T(), "SuperAdmin", dashboard.Role)
	assert.Len(s.T(), dashboard.Buckets.SuperAdmin, 4)
}

func (s *E2ETestSuite) TestLiveFeed() {
	s.seedAccount("acc-1", "root@portability.cd", "secret", "SuperAdmin", "")
	s.seedRequest("req-1", "+243811234567",
		requestModel.OperatorOrange, requestModel.OperatorVodacom, requestModel.StatusPending,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	session := s.login("root@portability.cd", "secret")

	wsURL := strings.Replace(s.baseURL, "http://", "ws://", 1) + "/ws/feed"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+session.Token)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(s.T(), err, "websocket dial failed")
	defer conn.Close()

	// The first frame is always a full snapshot
	require.NoError(s.T(), conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(s.T(), err)

	var frame struct {
		Type     string                            `json:"type"`
		Requests []requestModel.PortabilityRequest `json:"requests"`
		Total    int                               `json:"total"`
	}
	require.NoError(s.T(), json.Unmarshal(raw, &frame))
	assert.Equal(s.T(), "snapshot", frame.Type)
	assert.Equal(s.T(), 1, frame.Total)

	// A transition triggers a refreshed snapshot push
	resp, _ := s.doJSON("POST", "/requests/transition", session.Token, &requestModel.TransitionRequest{
		RequestID:  "req-1",
		FullNumber: "+243811234567",
		NewStatus:  "Validated",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	// Periodic refresh frames may interleave with the change push, so read
	// until the new status shows up.
	deadline := time.Now().Add(15 * time.Second)
	for {
		require.True(s.T(), time.Now().Before(deadline), "no refreshed snapshot arrived")
		require.NoError(s.T(), conn.SetReadDeadline(deadline))
		_, raw, err = conn.ReadMessage()
		require.NoError(s.T(), err)
		require.NoError(s.T(), json.Unmarshal(raw, &frame))
		require.Equal(s.T(), "snapshot", frame.Type)
		if len(frame.Requests) == 1 && frame.Requests[0].Status == requestModel.StatusValidated {
			break
		}
	}
}

func (s *E2ETestSuite) TestMetricsExposed() {
	resp, raw := s.doJSON("GET", "/metrics", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "portability_admin_http_requests_total")
}

// mustHash hashes a password for direct row seeding.
func (s *E2ETestSuite) mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(s.T(), err)
	return string(hash)
}
