package cli

import (
	"context"
	"fmt"

	"github.com/skybrief/skybrief/internal/client/async"
	"github.com/skybrief/skybrief/internal/client/models"
)

// Brief renders the briefing for the current plan, whatever state the
// resource is in.
func (a *App) Brief(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}
	renderBriefing(a.orch.Briefing.Snapshot(), a.orch.Briefing.PlanID())
	return nil
}

// Retry re-requests the briefing for the same plan after a failure.
func (a *App) Retry(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}
	if a.orch.Briefing.PlanID() == "" {
		printlnFn("Nothing to retry. File a plan first with 'plan'.")
		return nil
	}
	a.orch.Briefing.Retry(ctx)
	renderBriefing(a.orch.Briefing.Snapshot(), a.orch.Briefing.PlanID())
	return nil
}

func renderBriefing(snap async.Snapshot[*models.BriefingResult], planID string) {
	switch snap.State {
	case async.StateLoading:
		printlnFn("Generating briefing for plan", planID, "...")
	case async.StateFailed:
		printlnFn("Briefing failed:", snap.Err.Error())
		printlnFn("Type 'retry' to request it again.")
	case async.StateReady:
		b := snap.Value
		printlnFn(fmt.Sprintf("Briefing for plan %s  [risk: %s]", planID, b.RiskLevel))
		printlnFn(b.Summary)
		renderStation("Origin", b.DecodedOrigin)
		renderStation("Destination", b.DecodedDestination)
		renderList("NOTAMs", b.NOTAMs)
		renderList("PIREPs", b.PIREPs)
		renderList("Alternates", b.Alternates)
		if len(b.Hazards) > 0 {
			printlnFn("Hazards:")
			for _, h := range b.Hazards {
				printlnFn(fmt.Sprintf("  [%s] %s: %s", h.Severity, h.Kind, h.Detail))
			}
		}
	default:
		printlnFn("No briefing yet. File a plan with 'plan' to get one.")
	}
}

func renderStation(label string, w models.DecodedWeather) {
	if w.Station == "" {
		return
	}
	printlnFn(fmt.Sprintf("%s %s (%s): %s", label, w.Station, w.FlightCategory, w.Summary))
}

func renderList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	printlnFn(label + ":")
	for _, item := range items {
		printlnFn("  " + item)
	}
}
