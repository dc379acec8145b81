package models

import "time"

// Time window labels a request or a pandit schedule can use.
const (
	WindowMorning   = "morning"
	WindowAfternoon = "afternoon"
	WindowEvening   = "evening"
	WindowNight     = "night"
)

// WindowLabels lists the four labels in day order.
var WindowLabels = []string{WindowMorning, WindowAfternoon, WindowEvening, WindowNight}

// IsWindowLabel reports whether s is one of the four fixed window labels.
func IsWindowLabel(s string) bool {
	for _, l := range WindowLabels {
		if s == l {
			return true
		}
	}
	return false
}

// PujaRequest is the normalized, typed form of a free-text booking request.
// Every optional field is either nil or already satisfies its domain
// constraint; validation happens at the extraction boundary, never downstream.
type PujaRequest struct {
	PujaType         *string    `json:"puja_type,omitempty"`
	WhenDate         *time.Time `json:"when_date,omitempty"`
	TimeWindow       *string    `json:"time_window,omitempty"`
	TimeSpecificMins *int       `json:"time_specific_mins,omitempty"`
	City             *string    `json:"city,omitempty"`
	BudgetINR        *int       `json:"budget_inr,omitempty"`
	LanguagePref     []string   `json:"language_pref,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// Confidence maps extracted field names to a confidence score in [0,1].
// Scores are informative; no component gates on them.
type Confidence map[string]float64
