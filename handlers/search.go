package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panditseva/models"
	"panditseva/services/booking"
)

// Service wiring happens in main before the router starts.
var SearchService booking.SearchService

// SearchHandler accepts a free-text request and returns ranked Pandit options.
func SearchHandler(c *gin.Context) {
	var input struct {
		Text       string `json:"text"`
		TimeWindow string `json:"time_window"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if input.TimeWindow != "" && !models.IsWindowLabel(input.TimeWindow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time window", "details": input.TimeWindow})
		return
	}

	result, err := SearchService.Search(c.Request.Context(), input.Text, input.TimeWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
