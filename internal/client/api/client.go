// Package api is the client's only gateway to the briefing service. It
// exposes the remote operations behind a narrow interface so services can be
// tested against fakes, with a JSON-over-HTTP implementation alongside.
package api

import (
	"context"

	"github.com/skybrief/skybrief/internal/client/models"
)

// Client is the remote surface of the briefing service.
//
// Login and Register return the session credential (an opaque bearer token).
// Every other call takes the current credential and passes it to the service
// as the "token" query parameter, which is the contract the counterpart
// service implements.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Dashboard(ctx context.Context, token string) (*models.Dashboard, error)
	CreateFlightPlan(ctx context.Context, token string, plan *models.FlightPlanRequest) (string, error)
	GenerateBriefing(ctx context.Context, token, planID string) (*models.BriefingResult, error)
}
