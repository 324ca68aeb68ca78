package services

import (
	"context"

	"github.com/skybrief/skybrief/internal/client/models"
)

// fakeAPI implements api.Client for controller unit tests. Behavior is
// driven by the Ret/Err fields; the Fn overrides allow per-call behavior.
type fakeAPI struct {
	LoginRet string
	LoginErr error

	RegisterRet string
	RegisterErr error

	DashboardRet   *models.Dashboard
	DashboardErr   error
	DashboardFn    func(ctx context.Context, token string) (*models.Dashboard, error)
	DashboardCalls int

	CreateRet   string
	CreateErr   error
	CreateCalls int

	BriefRet   *models.BriefingResult
	BriefErr   error
	BriefFn    func(ctx context.Context, token, planID string) (*models.BriefingResult, error)
	BriefCalls int

	// argument captures
	LastLoginEmail   string
	LastRegisterName string
	LastToken        string
	LastPlan         *models.FlightPlanRequest
	LastBriefPlanID  string
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.LastLoginEmail = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (string, error) {
	f.LastRegisterName = name
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	f.DashboardCalls++
	f.LastToken = token
	if f.DashboardFn != nil {
		return f.DashboardFn(ctx, token)
	}
	return f.DashboardRet, f.DashboardErr
}

func (f *fakeAPI) CreateFlightPlan(ctx context.Context, token string, plan *models.FlightPlanRequest) (string, error) {
	f.CreateCalls++
	f.LastToken = token
	f.LastPlan = plan
	return f.CreateRet, f.CreateErr
}

func (f *fakeAPI) GenerateBriefing(ctx context.Context, token, planID string) (*models.BriefingResult, error) {
	f.BriefCalls++
	f.LastToken = token
	f.LastBriefPlanID = planID
	if f.BriefFn != nil {
		return f.BriefFn(ctx, token, planID)
	}
	return f.BriefRet, f.BriefErr
}

func testDashboard() *models.Dashboard {
	return &models.Dashboard{
		User: models.UserProfile{ID: "u1", Name: "Pat", Email: "p@x.io"},
		RecentPlans: []models.FlightPlanSummary{
			{ID: "p0", Origin: "KOAK", Destination: "KLAS"},
		},
	}
}

func testBriefing(summary string) *models.BriefingResult {
	return &models.BriefingResult{
		Summary:   summary,
		RiskLevel: models.RiskLow,
	}
}
