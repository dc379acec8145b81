package models

import "time"

// Accepted payment methods. Cash is the pay-later option; the others are
// annotated as provisionally successful, no settlement happens here.
const (
	PaymentUPI        = "upi"
	PaymentNetBanking = "netbanking"
	PaymentCash       = "cash"
)

// BookingConfirmation is the record emitted after a booking passes all
// confirmation preconditions. Never mutated.
type BookingConfirmation struct {
	Pandit        RankedPandit `json:"pandit"`
	Request       PujaRequest  `json:"request"`
	PaymentMethod string       `json:"paymentMethod"`
	Message       string       `json:"message"`
	ConfirmedAt   time.Time    `json:"confirmedAt"`
}
