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

// DashboardController keeps the authenticated summary view (profile plus
// recent plans) loaded. It re-fetches on every credential change and goes
// back to Idle when the session ends.
type DashboardController struct {
	api     api.Client
	session *SessionController
	log     logging.Logger
	res     *async.Resource[*models.Dashboard]
}

func NewDashboardController(apiClient api.Client, session *SessionController, log logging.Logger) *DashboardController {
	d := &DashboardController{
		api:     apiClient,
		session: session,
		log:     log.With("component", "dashboard"),
		res:     async.New[*models.Dashboard](),
	}

	session.OnCredentialChange(func(ctx context.Context, credential string) {
		if credential == "" {
			d.res.Reset()
			return
		}
		d.Reload(ctx)
	})

	return d
}

// Snapshot returns the current lifecycle state of the dashboard data.
func (d *DashboardController) Snapshot() async.Snapshot[*models.Dashboard] {
	return d.res.Snapshot()
}

// Reload fetches the dashboard. It doubles as the manual retry for a Failed
// state. While unauthenticated the controller stays dormant and no request
// is issued.
func (d *DashboardController) Reload(ctx context.Context) async.Snapshot[*models.Dashboard] {
	if !d.session.IsAuthenticated() {
		return d.res.Snapshot()
	}

	return d.res.Run(func() (*models.Dashboard, error) {
		dashboard, err := d.api.Dashboard(ctx, d.session.Credential())
		if err != nil {
			d.log.Warn(ctx, "dashboard load failed", "error", err.Error())
			if !errors.Is(err, common.ErrLoad) {
				err = fmt.Errorf("%w: %v", common.ErrLoad, err)
			}
			return nil, err
		}
		return dashboard, nil
	})
}
