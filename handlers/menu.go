package handlers

import (
	"fmt"
	"net/http"
	"time"

	"brew-and-bite-api/engine"

	"github.com/gin-gonic/gin"
)

type scoredItemResponse struct {
	engine.ScoredMenuItem
	ImageURL string `json:"image_url"`
}

type pricedItemResponse struct {
	engine.PricedMenuItem
	ImageURL string `json:"image_url"`
}

// Items is a pointer so a missing field is rejected while an empty cart is
// still a valid request.
type CartSuggestionsRequest struct {
	Items *[]string `json:"items" binding:"required"`
}

// ambientContext builds the per-request scoring context: a live (or fallback)
// temperature read plus a fresh event roll. Deliberately not cached.
func ambientContext(c *gin.Context) engine.Context {
	return engine.Context{
		Temperature: Weather.Temperature(c.Request.Context()),
		Event:       engine.LocalEvent(time.Now(), Rng),
	}
}

// TodaysSpecials returns the four best-scoring items for the current weather
// and event, with a human-readable context line.
func TodaysSpecials(c *gin.Context) {
	ctx := ambientContext(c)
	specials := engine.TopSpecials(Catalog.Items(), ctx, Rng)

	resp := make([]scoredItemResponse, 0, len(specials))
	for _, s := range specials {
		resp = append(resp, scoredItemResponse{ScoredMenuItem: s, ImageURL: imageURL(s.ID)})
	}

	context := fmt.Sprintf("Based on the current weather (%g°C) ", ctx.Temperature)
	if ctx.Event != engine.EventNone {
		context += fmt.Sprintf("and a %s, ", ctx.Event)
	} else {
		context += "in Kolkata, "
	}
	context += "here are our top picks for you!"

	c.JSON(http.StatusOK, gin.H{"specials": resp, "context": context})
}

// SectionMenu returns one meal section with dynamic pricing applied.
func SectionMenu(c *gin.Context) {
	items, ok := Catalog.Section(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	priced := engine.PriceItems(items, time.Now())
	resp := make([]pricedItemResponse, 0, len(priced))
	for _, p := range priced {
		resp = append(resp, pricedItemResponse{PricedMenuItem: p, ImageURL: imageURL(p.ID)})
	}

	c.JSON(http.StatusOK, gin.H{"items": resp})
}

// CartSuggestions scores the menu against the current context and returns the
// top three items not already in the cart.
func CartSuggestions(c *gin.Context) {
	var req CartSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := ambientContext(c)
	suggestions := engine.Suggestions(Catalog.Items(), *req.Items, ctx, Rng)

	resp := make([]scoredItemResponse, 0, len(suggestions))
	for _, s := range suggestions {
		resp = append(resp, scoredItemResponse{ScoredMenuItem: s, ImageURL: imageURL(s.ID)})
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": resp})
}
