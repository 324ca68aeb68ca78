package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skybrief/skybrief/internal/client/models"
	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/logging"
)

// HTTPClient implements Client over the service's JSON endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type createPlanResponse struct {
	ID string `json:"id"`
}

type briefRequest struct {
	FlightPlanID string `json:"flight_plan_id"`
}

// Login exchanges credentials for a bearer token. Any non-success response
// is reported as common.ErrAuthentication; failure bodies are not assumed to
// carry structured detail.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if !success(status) {
		return "", fmt.Errorf("%w: status %d", common.ErrAuthentication, status)
	}
	return out.AccessToken, nil
}

// Register creates an account and returns the bearer token for the new
// session. Non-success responses map to common.ErrRegistration.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	var out tokenResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", registerRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if !success(status) {
		return "", fmt.Errorf("%w: status %d", common.ErrRegistration, status)
	}
	return out.AccessToken, nil
}

// Dashboard fetches the pilot's profile and recent plans.
func (c *HTTPClient) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	var out models.Dashboard
	status, err := c.doJSON(ctx, http.MethodGet, "/dashboard", token, nil, &out)
	if err != nil {
		return nil, err
	}
	if err := authedStatus(status, common.ErrLoad); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFlightPlan submits a plan and returns the identifier assigned by the
// service.
func (c *HTTPClient) CreateFlightPlan(ctx context.Context, token string, plan *models.FlightPlanRequest) (string, error) {
	var out createPlanResponse
	status, err := c.doJSON(ctx, http.MethodPost, "/flightplan", token, plan, &out)
	if err != nil {
		return "", err
	}
	if err := authedStatus(status, common.ErrSubmission); err != nil {
		return "", err
	}
	return out.ID, nil
}

// GenerateBriefing requests a weather/hazard briefing for an existing plan.
func (c *HTTPClient) GenerateBriefing(ctx context.Context, token, planID string) (*models.BriefingResult, error) {
	var out models.BriefingResult
	status, err := c.doJSON(ctx, http.MethodPost, "/brief", token, briefRequest{FlightPlanID: planID}, &out)
	if err != nil {
		return nil, err
	}
	if err := authedStatus(status, common.ErrBriefing); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON performs one JSON round trip. The returned error covers transport
// and encoding problems only (wrapped in common.ErrTransport); HTTP status
// interpretation is left to the caller. out is decoded only on 2xx.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body, out any) (int, error) {
	endpoint := c.baseURL + path
	if token != "" {
		endpoint += "?" + common.TokenQueryParam + "=" + url.QueryEscape(token)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: marshal request: %v", common.ErrTransport, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", common.ErrTransport, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err.Error())
		return 0, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", common.ErrTransport, err)
	}

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
		"request_id", requestID)

	if success(resp.StatusCode) && out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode response: %v", common.ErrTransport, err)
		}
	}
	return resp.StatusCode, nil
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

// authedStatus interprets the status of an authenticated call: 401 means
// the credential is no longer accepted, any other non-success maps to the
// operation's own error.
func authedStatus(status int, opErr error) error {
	if status == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	if !success(status) {
		return fmt.Errorf("%w: status %d", opErr, status)
	}
	return nil
}
