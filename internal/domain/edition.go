package domain

import "time"

// Edition is one city's calendar build: its curated place library and the
// week plan produced from it.
type Edition struct {
	ID              string
	City            string
	State           string
	TemplateVersion string
	Status          EditionStatus
	PlanSource      string
	Degraded        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Label renders "City, ST" or just the city when no state is set.
func (e *Edition) Label() string {
	if e.State == "" {
		return e.City
	}
	return e.City + ", " + e.State
}

// PlanAttempt is the stored trace of one assignment strategy run.
type PlanAttempt struct {
	EditionID string
	Strategy  string
	Outcome   string
	Error     string
	LatencyMs int64
	CreatedAt time.Time
}
