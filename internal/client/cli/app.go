// Package cli implements the interactive terminal frontend: a small REPL
// over the session orchestrator, with prompts for auth and flight-plan input
// and plain-text rendering of each resource's lifecycle state.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/skybrief/skybrief/internal/client/api"
	"github.com/skybrief/skybrief/internal/client/config"
	"github.com/skybrief/skybrief/internal/client/services"
	"github.com/skybrief/skybrief/internal/client/store"
	"github.com/skybrief/skybrief/internal/logging"
)

type App struct {
	config *config.Config
	orch   *services.Orchestrator
	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) *App {
	credStore := store.Open(ctx, cfg.DatabasePath, log)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	return &App{
		config: cfg,
		orch:   services.NewOrchestrator(apiClient, credStore, log),
		reader: bufio.NewReader(os.Stdin),
		log:    log,
	}
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	if err := a.orch.Session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err.Error())
	}

	printlnFn("SkyBrief CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.orch.Authenticated()
}

// status builds the prompt decoration: the pilot's name once the profile is
// loaded, a bare marker while only the credential is known.
func (a *App) status() string {
	if profile := a.orch.Session.Profile(); profile != nil {
		return "(" + profile.Name + ")"
	}
	if a.orch.Authenticated() {
		return "(authenticated)"
	}
	return ""
}
