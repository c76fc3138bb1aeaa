package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"brew-and-bite-api/config"
	"brew-and-bite-api/engine"
	"brew-and-bite-api/middleware"
	"brew-and-bite-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableRecommendationsRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	PartySize  int    `json:"party_size"`
	Preference string `json:"preference"`
}

type BookTableRequest struct {
	TableID   int    `json:"table_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize int    `json:"party_size" binding:"required,min=1"`
}

// TableRecommendations ranks the tables that are free and big enough for the
// requested slot. Field validation lives in the availability engine so the
// same rules apply everywhere.
func TableRecommendations(c *gin.Context) {
	var req TableRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Preference == "" {
		req.Preference = "any"
	}

	var bookings []models.Booking
	config.DB.Where("date = ?", req.Date).Find(&bookings)

	ranked, err := engine.AvailableTables(Catalog.Tables(), bookings, req.Date, req.Time, req.PartySize, req.Preference)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date, time, and party size are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability"})
		return
	}

	tables := make([]any, 0, len(ranked))
	for _, st := range ranked {
		tables = append(tables, st.Table)
	}
	c.JSON(http.StatusOK, gin.H{"available_tables": tables})
}

// BookTable creates a booking for the authenticated user. The availability
// window is re-checked inside the insert transaction so two simultaneous
// requests cannot double-book a table.
func BookTable(c *gin.Context) {
	var req BookTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking information"})
		return
	}

	requested, err := engine.ParseBookingTime(req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date, time, and party size are required"})
		return
	}

	userEmail := middleware.GetEmail(c)
	bookingID := fmt.Sprintf("BNB-%d", rand.Intn(9000)+1000)

	booking := models.Booking{
		BookingID: bookingID,
		TableID:   req.TableID,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Booking
		if err := tx.Where("date = ? AND table_id = ?", req.Date, req.TableID).Find(&existing).Error; err != nil {
			return err
		}
		for _, b := range existing {
			if engine.ConflictsWith(b, requested) {
				return errTableTaken
			}
		}
		return tx.Create(&booking).Error
	})
	if errors.Is(err, errTableTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "This table was just booked for that time. Please pick another."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	tableName := Catalog.TableName(req.TableID)
	body := fmt.Sprintf(
		"Hello,\n\nYour booking for %s on %s at %s for %d guests is confirmed.\nYour Booking ID is: %s\n\nWe look forward to seeing you!\n- The Brew & Bite Team",
		tableName, req.Date, req.Time, req.PartySize, bookingID,
	)
	go Mail.Send(userEmail, "Your Table Booking at Brew & Bite is Confirmed!", body)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking_id": bookingID,
		"table_name": tableName,
	})
}

var errTableTaken = errors.New("table already booked in that window")

// DeleteBooking removes a booking by its public id — admin only
func DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")

	var booking models.Booking
	if err := config.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}
	if err := config.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking removed successfully"})
}
