package models

import (
	"strings"
	"time"
)

// FlightPlanRequest is the payload for creating a flight plan. Origin and
// destination are required; the rest is optional detail forwarded verbatim.
type FlightPlanRequest struct {
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Alternates       []string  `json:"alternates"`
	Callsign         string    `json:"callsign,omitempty"`
	Route            string    `json:"route,omitempty"`
	DepartureTimeUTC time.Time `json:"departure_time"`
	CruiseAltitude   string    `json:"cruise_altitude,omitempty"`
	AircraftType     string    `json:"aircraft_type,omitempty"`
}

// FlightPlanSummary is the read-only projection of a filed plan shown in
// dashboard lists.
type FlightPlanSummary struct {
	ID               string    `json:"_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	DepartureTimeUTC time.Time `json:"departure_time"`
}

// Dashboard is the authenticated summary view: the pilot's profile plus
// their most recently filed plans.
type Dashboard struct {
	User        UserProfile         `json:"user"`
	RecentPlans []FlightPlanSummary `json:"recent_plans"`
}

// ParseAlternates splits a comma-delimited list of alternate airfields,
// trimming whitespace and dropping empty entries. Order is preserved and
// duplicates are kept; code syntax is not validated here.
func ParseAlternates(raw string) []string {
	parts := strings.Split(raw, ",")
	alternates := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		alternates = append(alternates, p)
	}
	return alternates
}
