package models

// RiskLevel is the service's overall hazard classification for a briefing.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// DecodedWeather is the server-decoded METAR/TAF digest for one station.
type DecodedWeather struct {
	Station        string `json:"station"`
	Summary        string `json:"summary"`
	FlightCategory string `json:"flight_category"`
}

// Hazard is one classified hazard along the planned route.
type Hazard struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// BriefingResult is the aggregated, risk-annotated briefing produced for a
// single flight plan. It is tied to the plan id that produced it and is
// replaced wholesale when a new plan is briefed.
type BriefingResult struct {
	Summary            string         `json:"summary"`
	RiskLevel          RiskLevel      `json:"risk_level"`
	DecodedOrigin      DecodedWeather `json:"decoded_origin"`
	DecodedDestination DecodedWeather `json:"decoded_destination"`
	NOTAMs             []string       `json:"notams"`
	PIREPs             []string       `json:"pireps"`
	Alternates         []string       `json:"alternates"`
	Hazards            []Hazard       `json:"hazards"`
}
