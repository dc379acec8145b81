package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"panditseva/models"
)

// ConfirmationService finalizes a booking against a prior search session.
type ConfirmationService interface {
	Confirm(ctx context.Context, sessionID string, panditID int, paymentMethod string) models.ConfirmResult
}

// DefaultConfirmationService implements ConfirmationService over a SessionStore.
type DefaultConfirmationService struct {
	Sessions SessionStore
}

var acceptedPayments = map[string]bool{
	models.PaymentUPI:        true,
	models.PaymentNetBanking: true,
	models.PaymentCash:       true,
}

// Confirm validates every precondition in turn and either emits a
// confirmation record or a specific rejection. A rejection leaves the session
// untouched; the single state transition here is Searched -> Confirmed.
func (s *DefaultConfirmationService) Confirm(ctx context.Context, sessionID string, panditID int, paymentMethod string) models.ConfirmResult {
	if sessionID == "" {
		return reject("Please search options first.")
	}
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return reject("Please search options first.")
	}
	if len(session.Ranked) == 0 {
		return reject("No options to confirm. Please search again.")
	}
	if panditID == 0 {
		return reject("Select a Pandit ID first.")
	}

	var chosen *models.RankedPandit
	for i := range session.Ranked {
		if session.Ranked[i].ID == panditID {
			chosen = &session.Ranked[i]
			break
		}
	}
	if chosen == nil {
		return reject("Selected ID not in current options. Please pick again.")
	}

	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	if !acceptedPayments[method] {
		return reject("Choose payment method (UPI / NetBanking / Cash).")
	}

	record := models.BookingConfirmation{
		Pandit:        *chosen,
		Request:       session.Request,
		PaymentMethod: method,
		Message:       confirmationMessage(session.Request, *chosen, method),
		ConfirmedAt:   time.Now(),
	}
	return models.ConfirmResult{
		Confirmed: true,
		Message:   "Booking confirmed!",
		Booking:   &record,
	}
}

func confirmationMessage(req models.PujaRequest, p models.RankedPandit, method string) string {
	puja := "Requested Puja"
	if req.PujaType != nil {
		puja = *req.PujaType
	}
	when := "your chosen date"
	if req.WhenDate != nil {
		when = req.WhenDate.Format("2006-01-02")
	}
	window := "your time window"
	if req.TimeWindow != nil {
		window = *req.TimeWindow
	}

	payMsg := fmt.Sprintf("Payment method: %s.", strings.ToUpper(method))
	if method != models.PaymentCash {
		// No settlement happens here; online methods are provisional until
		// the payment collaborator completes them.
		payMsg += " Payment link will follow; booking is provisionally confirmed."
	}

	return fmt.Sprintf(
		"Appointment confirmed for %s on %s, %s window.\nPandit: %s — Phone: %s\nCity: %s, Fee: ₹%d\n\n%s",
		puja, when, window, p.Name, p.Phone, p.City, p.Fee, payMsg,
	)
}

func reject(msg string) models.ConfirmResult {
	return models.ConfirmResult{Confirmed: false, Message: msg}
}
