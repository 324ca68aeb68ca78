package services

import (
	"context"

	"github.com/skybrief/skybrief/internal/client/api"
	"github.com/skybrief/skybrief/internal/client/store"
	"github.com/skybrief/skybrief/internal/logging"
)

// Orchestrator is the top-level composition. It owns the session and the
// three data controllers and holds the two pieces of cross-controller
// wiring: a created plan id becomes the briefing input, and the end of a
// session resets the planner and briefing so nothing from a previous login
// is visible after re-login.
type Orchestrator struct {
	Session   *SessionController
	Dashboard *DashboardController
	Planner   *PlannerController
	Briefing  *BriefingController
}

func NewOrchestrator(apiClient api.Client, credStore store.Store, log logging.Logger) *Orchestrator {
	session := NewSessionController(apiClient, credStore, log)

	o := &Orchestrator{
		Session:   session,
		Dashboard: NewDashboardController(apiClient, session, log),
		Planner:   NewPlannerController(apiClient, session, log),
		Briefing:  NewBriefingController(apiClient, session, log),
	}

	o.Planner.OnPlanCreated(func(ctx context.Context, planID string) {
		o.Briefing.SetPlanID(ctx, planID)
	})

	session.OnCredentialChange(func(ctx context.Context, credential string) {
		if credential == "" {
			o.Planner.Reset()
			o.Briefing.SetPlanID(ctx, "")
		}
	})

	return o
}

// Authenticated reports whether the session gate is open. While it is
// closed, only auth operations are reachable and the data controllers stay
// dormant.
func (o *Orchestrator) Authenticated() bool {
	return o.Session.IsAuthenticated()
}
