// Package services contains the client-side controllers: the session (login,
// register, logout, profile), the three data controllers wrapping an
// async.Resource, and the Orchestrator that composes them.
//
// All controllers are driven from the single REPL goroutine; the only
// concurrency in the system is overlapping network requests, which the
// async.Resource sequence discipline resolves in favor of the most recently
// initiated one.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skybrief/skybrief/internal/client/api"
	"github.com/skybrief/skybrief/internal/client/models"
	"github.com/skybrief/skybrief/internal/client/store"
	"github.com/skybrief/skybrief/internal/common"
	"github.com/skybrief/skybrief/internal/logging"
)

// CredentialWatcher is notified after the session credential changes.
// The empty string means the session ended.
type CredentialWatcher func(ctx context.Context, credential string)

// SessionController owns authentication and the user profile derived from
// the credential. It is the credential's single writer; everything else
// observes it through OnCredentialChange.
type SessionController struct {
	api   api.Client
	store store.Store
	log   logging.Logger

	credential string
	profile    *models.UserProfile
	watchers   []CredentialWatcher
}

func NewSessionController(apiClient api.Client, credStore store.Store, log logging.Logger) *SessionController {
	s := &SessionController{
		api:   apiClient,
		store: credStore,
		log:   log.With("component", "session"),
	}

	// The profile always follows the credential. Registering here makes the
	// reload a consequence of every credential change, not a call site each
	// caller must remember.
	s.OnCredentialChange(func(ctx context.Context, _ string) {
		if err := s.LoadProfile(ctx); err != nil {
			s.log.Warn(ctx, "profile load failed", "error", err.Error())
		}
	})

	return s
}

// OnCredentialChange registers fn to run after every credential change.
// Watchers run in registration order, strictly after the new value is set.
func (s *SessionController) OnCredentialChange(fn CredentialWatcher) {
	s.watchers = append(s.watchers, fn)
}

// Credential returns the current bearer token, or "" when unauthenticated.
func (s *SessionController) Credential() string { return s.credential }

// IsAuthenticated reports whether a credential is present.
func (s *SessionController) IsAuthenticated() bool { return s.credential != "" }

// Profile returns the profile derived from the current credential, or nil
// when it is absent or could not be loaded.
func (s *SessionController) Profile() *models.UserProfile { return s.profile }

// Restore loads the persisted credential at startup. When one is present
// the session becomes authenticated and the usual change chain fires.
func (s *SessionController) Restore(ctx context.Context) error {
	credential, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("restore credential: %w", err)
	}
	if credential == "" {
		return nil
	}
	s.log.Info(ctx, "restored persisted session")
	s.setCredential(ctx, credential)
	return nil
}

// Login authenticates against the service and stores the returned
// credential. A rejected login surfaces as common.ErrAuthentication and
// leaves the session state untouched.
func (s *SessionController) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.persist(ctx, token)
	s.setCredential(ctx, token)
	return nil
}

// Register creates an account and starts a session with the returned
// credential. Rejection surfaces as common.ErrRegistration.
func (s *SessionController) Register(ctx context.Context, name, email, password string) error {
	token, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	s.persist(ctx, token)
	s.setCredential(ctx, token)
	return nil
}

// Logout clears the credential and the derived profile synchronously.
// No network call is made.
func (s *SessionController) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted credential", "error", err.Error())
	}
	s.setCredential(ctx, "")
	return nil
}

// LoadProfile derives the profile from the current credential. Without a
// credential it is a no-op. A 401 means the stored credential has expired
// server-side, which we resolve as an implicit logout; any other failure
// leaves the profile absent without touching the credential, since the two
// are only loosely coupled.
func (s *SessionController) LoadProfile(ctx context.Context) error {
	if s.credential == "" {
		s.profile = nil
		return nil
	}

	dashboard, err := s.api.Dashboard(ctx, s.credential)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.log.Info(ctx, "stored credential no longer accepted, logging out")
			return s.Logout(ctx)
		}
		return err
	}

	profile := dashboard.User
	s.profile = &profile
	return nil
}

func (s *SessionController) persist(ctx context.Context, token string) {
	// Persistence failure degrades to a session-only credential; the login
	// itself still succeeds.
	if err := s.store.Set(ctx, token); err != nil {
		s.log.Warn(ctx, "failed to persist credential", "error", err.Error())
	}
}

// setCredential updates the credential and notifies watchers exactly once.
// Setting the same value again is a no-op, so repeated identical tokens do
// not trigger redundant reloads.
func (s *SessionController) setCredential(ctx context.Context, credential string) {
	if s.credential == credential {
		return
	}
	s.credential = credential
	s.profile = nil
	for _, fn := range s.watchers {
		fn(ctx, credential)
	}
}
