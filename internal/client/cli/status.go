package cli

import "context"

// Status prints a one-line state per controller. Useful to see where each
// resource stands without rendering the full views.
func (a *App) Status(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	if profile := a.orch.Session.Profile(); profile != nil {
		printlnFn("session:   authenticated as " + profile.Email)
	} else {
		printlnFn("session:   authenticated, profile not loaded")
	}
	printlnFn("dashboard: " + a.orch.Dashboard.Snapshot().State.String())
	printlnFn("plan:      " + a.orch.Planner.Snapshot().State.String())

	if planID := a.orch.Briefing.PlanID(); planID != "" {
		printlnFn("briefing:  " + a.orch.Briefing.Snapshot().State.String() + " (plan " + planID + ")")
	} else {
		printlnFn("briefing:  " + a.orch.Briefing.Snapshot().State.String())
	}
	return nil
}
