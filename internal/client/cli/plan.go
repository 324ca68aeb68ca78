package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/skybrief/skybrief/internal/client/services"
	"github.com/skybrief/skybrief/internal/common"
)

// Plan collects the flight-plan form field by field and submits it. ICAO
// codes are upper-cased here so the user can type them either way. On
// success the briefing starts automatically and is rendered right away.
func (a *App) Plan(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return nil
	}

	form := services.PlanForm{}
	fields := []struct {
		prompt string
		dest   *string
		icao   bool
	}{
		{"Origin (ICAO)", &form.Origin, true},
		{"Destination (ICAO)", &form.Destination, true},
		{"Alternates (comma-separated ICAO, optional)", &form.AlternatesRaw, true},
		{"Callsign (optional)", &form.Callsign, true},
		{"Route (optional)", &form.Route, false},
		{"Departure time (RFC 3339 UTC, e.g. 2026-09-01T14:00:00Z)", &form.DepartureTime, true},
		{"Cruise altitude (optional)", &form.CruiseAltitude, true},
		{"Aircraft type (optional)", &form.AircraftType, true},
	}

	for _, f := range fields {
		value, err := GetSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if f.icao {
			value = strings.ToUpper(value)
		}
		*f.dest = value
	}

	planID, err := a.orch.Planner.Submit(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			printlnFn("Plan not filed:", err.Error())
		case errors.Is(err, common.ErrTransport):
			printlnFn("Could not reach the briefing service. The plan was not filed.")
		default:
			printlnFn("Failed to file the plan:", err.Error())
		}
		return err
	}

	printlnFn("Flight plan", planID, "filed.")
	return a.Brief(ctx)
}
