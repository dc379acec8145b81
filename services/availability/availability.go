package availability

import (
	"time"

	"panditseva/models"
)

// IncompatibleDelta is the time-delta sentinel for a pandit with no window
// under the requested label.
const IncompatibleDelta = 10000

var weekdayTokens = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HasWindow reports whether the pandit declares a time window with the label.
func HasWindow(p models.Pandit, label string) bool {
	for _, w := range p.TimeWindows {
		if w.Label == label {
			return true
		}
	}
	return false
}

// TimeDelta measures how far a requested specific time sits from the midpoint
// of the pandit's matching window. Without a label or a specific time there is
// no precision penalty and the delta is zero.
func TimeDelta(p models.Pandit, label string, specificMins *int) int {
	if label == "" || specificMins == nil {
		return 0
	}
	for _, w := range p.TimeWindows {
		if w.Label == label {
			d := *specificMins - w.Midpoint()
			if d < 0 {
				d = -d
			}
			return d
		}
	}
	return IncompatibleDelta
}

// WeekdayToken maps a date to the roster's weekday token ("Mon".."Sun").
func WeekdayToken(d time.Time) string {
	return weekdayTokens[int(d.Weekday())]
}

// AvailableOn reports whether the pandit works on the given weekday token.
func AvailableOn(p models.Pandit, token string) bool {
	for _, day := range p.Days {
		if day == token {
			return true
		}
	}
	return false
}
