package models

// Search outcome statuses. NeedTimeWindow and NoMatch are legitimate
// non-error outcomes, not failures.
const (
	SearchStatusOK             = "ok"
	SearchStatusNeedTimeWindow = "need_time_window"
	SearchStatusNoMatch        = "no_match"
)

// NoMatchDiagnostics names the constraints that were in play when the
// candidate pool came up empty.
type NoMatchDiagnostics struct {
	PujaType   string `json:"pujaType,omitempty"`
	City       string `json:"city,omitempty"`
	TimeWindow string `json:"timeWindow,omitempty"`
	Weekday    string `json:"weekday,omitempty"`
}

// SearchResult is the full outcome of one search invocation.
type SearchResult struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	Request      PujaRequest         `json:"request"`
	Results      []RankedPandit      `json:"results,omitempty"`
	Explanations []string            `json:"explanations,omitempty"`
	SessionID    string              `json:"sessionId,omitempty"`
	Samagri      string              `json:"samagri,omitempty"`
	Guide        string              `json:"guide,omitempty"`
	Diagnostics  *NoMatchDiagnostics `json:"diagnostics,omitempty"`
}

// ConfirmResult is the outcome of a confirmation attempt. When Confirmed is
// false, Message carries the specific rejection and Booking is nil.
type ConfirmResult struct {
	Confirmed bool                 `json:"confirmed"`
	Message   string               `json:"message"`
	Booking   *BookingConfirmation `json:"booking,omitempty"`
}
