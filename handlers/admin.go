package handlers

import (
	"net/http"

	"brew-and-bite-api/config"
	"brew-and-bite-api/models"

	"github.com/gin-gonic/gin"
)

// AdminDashboard aggregates feedback sentiment counts and all bookings with
// their table names — admin only
func AdminDashboard(c *gin.Context) {
	var allFeedback []models.Feedback
	config.DB.Order("created_at desc").Find(&allFeedback)

	positive, negative := 0, 0
	for _, f := range allFeedback {
		switch f.Sentiment {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		}
	}

	var allBookings []models.Booking
	config.DB.Order("date desc, time desc").Find(&allBookings)

	bookings := make([]gin.H, 0, len(allBookings))
	for _, b := range allBookings {
		bookings = append(bookings, gin.H{
			"booking_id": b.BookingID,
			"table_name": Catalog.TableName(b.TableID),
			"date":       b.Date,
			"time":       b.Time,
			"party_size": b.PartySize,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"positive_count": positive,
		"negative_count": negative,
		"neutral_count":  len(allFeedback) - positive - negative,
		"total_count":    len(allFeedback),
		"feedback_items": allFeedback,
		"booking_items":  bookings,
	})
}
