// Package models defines the data types exchanged with the briefing service
// and shown by the CLI. All types are plain projections of the service's
// JSON contracts; the client never authors them except FlightPlanRequest.
package models

// UserProfile describes the authenticated pilot. It is derived from the
// credential via the dashboard endpoint and is never edited locally.
type UserProfile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
