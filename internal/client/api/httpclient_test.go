package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybrief/skybrief/internal/client/models"
	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/logging"
)

func newClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL, 5*time.Second, logging.NewNop())
}

func TestLogin_Success(t *testing.T) {
	var gotPath, gotMethod, gotRequestID string
	var gotBody map[string]string

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
	})

	token, err := c.Login(context.Background(), "p@x.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "/auth/login", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.NotEmpty(t, gotRequestID, "every request carries a correlation id")
	assert.Equal(t, map[string]string{"email": "p@x.io", "password": "secret"}, gotBody)
}

func TestLogin_NonSuccessIsAuthenticationError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "p@x.io", "wrong")
	assert.ErrorIs(t, err, common.ErrAuthentication)
}

func TestRegister_Success(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-2"})
	})

	token, err := c.Register(context.Background(), "Pat", "p@x.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestRegister_NonSuccessIsRegistrationError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := c.Register(context.Background(), "Pat", "p@x.io", "secret")
	assert.ErrorIs(t, err, common.ErrRegistration)
}

func TestDashboard_PassesTokenAsQueryParam(t *testing.T) {
	var gotToken string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get(common.TokenQueryParam)
		_, _ = w.Write([]byte(`{
			"user": {"_id": "u1", "name": "Pat", "email": "p@x.io"},
			"recent_plans": [
				{"_id": "p1", "origin": "KOAK", "destination": "KLAS", "departure_time": "2026-09-01T14:00:00Z"}
			]
		}`))
	})

	dash, err := c.Dashboard(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", gotToken)
	assert.Equal(t, "Pat", dash.User.Name)
	require.Len(t, dash.RecentPlans, 1)
	assert.Equal(t, "p1", dash.RecentPlans[0].ID)
	assert.Equal(t, "KOAK", dash.RecentPlans[0].Origin)
}

func TestDashboard_401IsUnauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Dashboard(context.Background(), "expired")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDashboard_ServerErrorIsLoadError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Dashboard(context.Background(), "tok")
	assert.ErrorIs(t, err, common.ErrLoad)
}

func TestCreateFlightPlan_SendsPayloadAndReturnsID(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flightplan", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get(common.TokenQueryParam))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "p123"})
	})

	plan := newPlanRequest(t)
	id, err := c.CreateFlightPlan(context.Background(), "tok", plan)
	require.NoError(t, err)
	assert.Equal(t, "p123", id)
	assert.Equal(t, "KOAK", got["origin"])
	assert.Equal(t, "KLAS", got["destination"])
	assert.Equal(t, []any{"KSJC"}, got["alternates"])
	assert.Equal(t, "2026-09-01T14:00:00Z", got["departure_time"])
	_, hasCallsign := got["callsign"]
	assert.False(t, hasCallsign, "empty optional fields are omitted")
}

func TestCreateFlightPlan_NonSuccessIsSubmissionError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.CreateFlightPlan(context.Background(), "tok", newPlanRequest(t))
	assert.ErrorIs(t, err, common.ErrSubmission)
}

func TestGenerateBriefing_Success(t *testing.T) {
	var got map[string]string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brief", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{
			"summary": "VFR not recommended after 02Z",
			"risk_level": "MEDIUM",
			"decoded_origin": {"station": "KOAK", "summary": "overcast 800ft", "flight_category": "IFR"},
			"decoded_destination": {"station": "KLAS", "summary": "clear", "flight_category": "VFR"},
			"notams": ["RWY 30 CLSD"],
			"pireps": ["MOD TURB FL180"],
			"alternates": ["KSJC"],
			"hazards": [{"kind": "icing", "severity": "moderate", "detail": "FZLVL 6000ft"}]
		}`))
	})

	brief, err := c.GenerateBriefing(context.Background(), "tok", "p123")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flight_plan_id": "p123"}, got)
	assert.Equal(t, "VFR not recommended after 02Z", brief.Summary)
	assert.Equal(t, "MEDIUM", string(brief.RiskLevel))
	assert.Equal(t, "IFR", brief.DecodedOrigin.FlightCategory)
	require.Len(t, brief.Hazards, 1)
	assert.Equal(t, "icing", brief.Hazards[0].Kind)
}

func TestGenerateBriefing_NonSuccessIsBriefingError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GenerateBriefing(context.Background(), "tok", "p123")
	assert.ErrorIs(t, err, common.ErrBriefing)
}

func TestTransportFailureIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on
	c := NewHTTPClient(ts.URL, time.Second, logging.NewNop())

	_, err := c.Dashboard(context.Background(), "tok")
	assert.ErrorIs(t, err, common.ErrTransport)
}

func newPlanRequest(t *testing.T) *models.FlightPlanRequest {
	t.Helper()
	dep, err := time.Parse(time.RFC3339, "2026-09-01T14:00:00Z")
	require.NoError(t, err)
	return &models.FlightPlanRequest{
		Origin:           "KOAK",
		Destination:      "KLAS",
		Alternates:       []string{"KSJC"},
		DepartureTimeUTC: dep,
	}
}
