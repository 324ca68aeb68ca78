package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skybrief/skybrief/internal/client/api"
	"github.com/skybrief/skybrief/internal/client/async"
	"github.com/skybrief/skybrief/internal/client/models"
	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/logging"
)

// PlanWatcher is notified with the identifier of every successfully created
// flight plan.
type PlanWatcher func(ctx context.Context, planID string)

// PlanForm is the raw user input for a flight plan, prior to validation.
// ICAO codes are expected to be upper-cased by the input layer.
type PlanForm struct {
	Origin         string
	Destination    string
	AlternatesRaw  string
	Callsign       string
	Route          string
	DepartureTime  string // RFC 3339 UTC
	CruiseAltitude string
	AircraftType   string
}

// PlannerController validates and submits new flight plans. Its resource
// holds the identifier of the most recently created plan.
type PlannerController struct {
	api      api.Client
	session  *SessionController
	log      logging.Logger
	res      *async.Resource[string]
	watchers []PlanWatcher
}

func NewPlannerController(apiClient api.Client, session *SessionController, log logging.Logger) *PlannerController {
	return &PlannerController{
		api:     apiClient,
		session: session,
		log:     log.With("component", "planner"),
		res:     async.New[string](),
	}
}

// OnPlanCreated registers fn to run after each successful submission,
// strictly after the new plan id is visible in the resource.
func (p *PlannerController) OnPlanCreated(fn PlanWatcher) {
	p.watchers = append(p.watchers, fn)
}

// Snapshot returns the submission lifecycle state.
func (p *PlannerController) Snapshot() async.Snapshot[string] {
	return p.res.Snapshot()
}

// Reset discards any pending submission state, e.g. on logout.
func (p *PlannerController) Reset() {
	p.res.Reset()
}

// Submit validates form and creates the flight plan. Validation failures
// settle the resource as Failed with common.ErrValidation and never reach
// the network. Each invocation is validated independently; there is no
// automatic retry.
func (p *PlannerController) Submit(ctx context.Context, form PlanForm) (string, error) {
	if !p.session.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}

	snap := p.res.Run(func() (string, error) {
		request, err := buildRequest(form)
		if err != nil {
			return "", err
		}
		planID, err := p.api.CreateFlightPlan(ctx, p.session.Credential(), request)
		if err != nil {
			p.log.Warn(ctx, "plan submission failed", "error", err.Error())
			if !errors.Is(err, common.ErrSubmission) && !errors.Is(err, common.ErrUnauthorized) {
				err = fmt.Errorf("%w: %v", common.ErrSubmission, err)
			}
			return "", err
		}
		p.log.Info(ctx, "flight plan created", "plan_id", planID,
			"origin", request.Origin, "destination", request.Destination)
		return planID, nil
	})

	if snap.State != async.StateReady {
		return "", snap.Err
	}

	for _, fn := range p.watchers {
		fn(ctx, snap.Value)
	}
	return snap.Value, nil
}

// buildRequest trims and validates the form and assembles the payload.
// Origin/destination presence and a parsable departure time are checked
// locally; everything else is the server's call.
func buildRequest(form PlanForm) (*models.FlightPlanRequest, error) {
	origin := strings.TrimSpace(form.Origin)
	destination := strings.TrimSpace(form.Destination)

	if origin == "" {
		return nil, fmt.Errorf("%w: origin is required", common.ErrValidation)
	}
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", common.ErrValidation)
	}

	departure, err := time.Parse(time.RFC3339, strings.TrimSpace(form.DepartureTime))
	if err != nil {
		return nil, fmt.Errorf("%w: departure time must be a valid RFC 3339 timestamp", common.ErrValidation)
	}

	return &models.FlightPlanRequest{
		Origin:           origin,
		Destination:      destination,
		Alternates:       models.ParseAlternates(form.AlternatesRaw),
		Callsign:         strings.TrimSpace(form.Callsign),
		Route:            strings.TrimSpace(form.Route),
		DepartureTimeUTC: departure.UTC(),
		CruiseAltitude:   strings.TrimSpace(form.CruiseAltitude),
		AircraftType:     strings.TrimSpace(form.AircraftType),
	}, nil
}
