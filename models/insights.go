package models

// HealthEntry is one health-log row in the shape the analysis backend
// expects. Field names follow that API's wire format, not ours.
type HealthEntry struct {
	DateISO  string  `json:"dateISO,omitempty"`
	Food     string  `json:"food,omitempty"`
	Water    float64 `json:"water,omitempty"`
	Vomit    string  `json:"vomit,omitempty"`
	Diarrhea string  `json:"diarrhea,omitempty"`
	Activity float64 `json:"activity,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// AnalyzeLogsRequest is the body posted to /api/health/analyze-logs.
type AnalyzeLogsRequest struct {
	Logs []HealthEntry `json:"logs"`
}

// HealthInsights is the analysis verdict: a coarse status ("good", "watch",
// "bad"), a 0..1 score, and human-readable reasons and tips. The client
// surfaces it verbatim.
type HealthInsights struct {
	Status  string   `json:"status"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
	Tips    []string `json:"tips"`
}
