package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panditseva/services/booking"
)

var ConfirmationService booking.ConfirmationService

// ConfirmHandler finalizes a booking against a prior search session. Business
// rejections (missing selection, bad payment method) come back as 200 with
// confirmed=false so clients can surface the message verbatim.
func ConfirmHandler(c *gin.Context) {
	var input struct {
		SessionID     string `json:"session_id"`
		PanditID      int    `json:"pandit_id"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := ConfirmationService.Confirm(c.Request.Context(), input.SessionID, input.PanditID, input.PaymentMethod)
	c.JSON(http.StatusOK, result)
}
