package models

// TimeWindow is a labelled slice of the day during which a pandit takes bookings.
// Start and End are minutes from midnight, Start <= End.
type TimeWindow struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Midpoint returns the middle of the window in minutes from midnight.
func (w TimeWindow) Midpoint() int {
	return (w.Start + w.End) / 2
}

// Pandit is one provider in the roster. Records are built once at startup and
// never mutated afterwards, so concurrent reads need no locking.
type Pandit struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Specializations []string     `json:"specializations"`
	BaseFee         int          `json:"baseFee"` // whole rupees
	City            string       `json:"city"`
	Languages       []string     `json:"languages"`
	Rating          float64      `json:"rating"`
	ExperienceYears int          `json:"experienceYears"`
	ServiceMode     string       `json:"serviceMode"` // "onsite", "online" or "either"
	Phone           string       `json:"phone"`
	TimeWindows     []TimeWindow `json:"timeWindows"`
	Days            []string     `json:"days"` // weekday tokens, e.g. ["Mon","Wed","Fri"]
}

// Service modes a pandit can declare.
const (
	ModeOnsite = "onsite"
	ModeOnline = "online"
	ModeEither = "either"
)
