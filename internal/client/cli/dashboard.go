package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/skybrief/skybrief/internal/client/async"
	"github.com/skybrief/skybrief/internal/client/models"
)

// Dashboard renders the dashboard resource in whatever state it is in.
// The data itself is kept fresh by the session wiring; this command only
// looks at it.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}
	renderDashboard(a.orch.Dashboard.Snapshot())
	return nil
}

// Refresh re-fetches the dashboard and renders the outcome. It is also the
// retry path when the last load failed.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}
	renderDashboard(a.orch.Dashboard.Reload(ctx))
	return nil
}

func renderDashboard(snap async.Snapshot[*models.Dashboard]) {
	switch snap.State {
	case async.StateLoading:
		printlnFn("Loading dashboard...")
	case async.StateFailed:
		printlnFn("Dashboard unavailable:", snap.Err.Error())
		printlnFn("Type 'refresh' to try again.")
	case async.StateReady:
		d := snap.Value
		printlnFn(fmt.Sprintf("%s <%s>", d.User.Name, d.User.Email))
		if len(d.RecentPlans) == 0 {
			printlnFn("No flight plans filed yet.")
			return
		}
		printlnFn("Recent flight plans:")
		for _, p := range d.RecentPlans {
			printlnFn(fmt.Sprintf("  %s  %s -> %s  departs %s",
				p.ID, p.Origin, p.Destination, p.DepartureTimeUTC.Format(time.RFC3339)))
		}
	default:
		printlnFn("Dashboard not loaded yet. Type 'refresh' to load it.")
	}
}
