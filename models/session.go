package models

// RankedPandit is the per-candidate summary kept in a search session and
// echoed to the caller. Tier, DistanceKm and TimeDeltaMins are the derived
// ranking scalars.
type RankedPandit struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	City          string       `json:"city"`
	Fee           int          `json:"fee"`
	Phone         string       `json:"phone"`
	Rating        float64      `json:"rating"`
	ExperienceYrs int          `json:"experienceYears"`
	Languages     []string     `json:"languages"`
	ServiceMode   string       `json:"serviceMode"`
	TimeWindows   []TimeWindow `json:"timeWindows"`
	Days          []string     `json:"days"`
	Tier          int          `json:"tier"`
	DistanceKm    float64      `json:"distanceKm"`
	TimeDeltaMins int          `json:"timeDeltaMins"`
}

// SearchSession holds the snapshot of the last successful ranking, keyed by
// SessionID in Redis. Confirmation treats it as read-only; a new search
// replaces it wholesale.
type SearchSession struct {
	SessionID string         `json:"sessionId"`
	Request   PujaRequest    `json:"request"`
	Ranked    []RankedPandit `json:"ranked"`
}
