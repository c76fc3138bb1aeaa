package handlers

import (
	"net/http"
	"strings"

	"brew-and-bite-api/config"
	"brew-and-bite-api/models"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	Text string `json:"text" binding:"required"`
}

// PostFeedback classifies the text and stores it with its sentiment label.
func PostFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your feedback before submitting"})
		return
	}

	label, compound := Classifier.Classify(req.Text)

	feedback := models.Feedback{Text: req.Text, Sentiment: label}
	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Thank you for your feedback!",
		"sentiment": label,
		"compound":  compound,
	})
}

// LatestFeedback returns the three most recent feedback entries, newest first.
func LatestFeedback(c *gin.Context) {
	var latest []models.Feedback
	config.DB.Order("created_at desc").Limit(3).Find(&latest)
	c.JSON(http.StatusOK, gin.H{"feedback": latest})
}
