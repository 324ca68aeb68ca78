package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skybrief/skybrief/internal/client/api"
	"github.com/skybrief/skybrief/internal/client/async"
	"github.com/skybrief/skybrief/internal/client/models"
	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/logging"
)

// BriefingController turns a plan identifier into a weather/hazard briefing.
// It is keyed entirely by its plan-id input: every change to a new non-empty
// id re-briefs unconditionally (no caching of prior briefings), and an empty
// id returns it to Idle.
type BriefingController struct {
	api     api.Client
	session *SessionController
	log     logging.Logger
	planID  string
	res     *async.Resource[*models.BriefingResult]
}

func NewBriefingController(apiClient api.Client, session *SessionController, log logging.Logger) *BriefingController {
	return &BriefingController{
		api:     apiClient,
		session: session,
		log:     log.With("component", "briefing"),
		res:     async.New[*models.BriefingResult](),
	}
}

// PlanID returns the plan identifier currently driving the controller.
func (b *BriefingController) PlanID() string { return b.planID }

// Snapshot returns the briefing lifecycle state.
func (b *BriefingController) Snapshot() async.Snapshot[*models.BriefingResult] {
	return b.res.Snapshot()
}

// SetPlanID is the controller's single input. A new non-empty id always
// triggers a fresh briefing request, even from Ready: the previous result
// is discarded, never served for a different plan. An empty id discards any
// held result and returns to Idle.
func (b *BriefingController) SetPlanID(ctx context.Context, planID string) {
	if planID == "" {
		b.planID = ""
		b.res.Reset()
		return
	}
	if planID == b.planID {
		return
	}
	b.planID = planID
	b.brief(ctx)
}

// Retry re-issues the briefing request for the same, unchanged plan id.
// Without a plan id it does nothing.
func (b *BriefingController) Retry(ctx context.Context) {
	if b.planID == "" {
		return
	}
	b.brief(ctx)
}

func (b *BriefingController) brief(ctx context.Context) {
	planID := b.planID
	b.res.Run(func() (*models.BriefingResult, error) {
		result, err := b.api.GenerateBriefing(ctx, b.session.Credential(), planID)
		if err != nil {
			b.log.Warn(ctx, "briefing failed", "plan_id", planID, "error", err.Error())
			if !errors.Is(err, common.ErrBriefing) && !errors.Is(err, common.ErrUnauthorized) {
				err = fmt.Errorf("%w: %v", common.ErrBriefing, err)
			}
			return nil, err
		}
		b.log.Info(ctx, "briefing ready", "plan_id", planID, "risk", string(result.RiskLevel))
		return result, nil
	})
}
