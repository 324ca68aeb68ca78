// Package common defines shared constants and sentinel errors used across
// the SkyBrief client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors, surfaced inline on the auth prompt.
	ErrAuthentication = errors.New("invalid credentials")
	ErrRegistration   = errors.New("registration rejected")

	// ErrUnauthorized marks a 401 from an authenticated endpoint; the
	// session treats it as the stored credential having expired.
	ErrUnauthorized = errors.New("unauthorized")

	// Local input validation, detected before any request is sent.
	ErrValidation = errors.New("validation error")

	// Per-operation failures, absorbed into the owning resource state.
	ErrLoad       = errors.New("failed to load dashboard")
	ErrSubmission = errors.New("failed to create plan")
	ErrBriefing   = errors.New("failed to generate briefing")

	// ErrTransport is the catch-all for network/connectivity failures
	// beneath the operation-specific errors above.
	ErrTransport = errors.New("transport error")

	// Local persistence errors (non-fatal; the store degrades to memory).
	ErrStorageUnavailable = errors.New("local storage unavailable")
)
