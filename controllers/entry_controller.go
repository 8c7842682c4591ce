package controllers

import (
	"errors"
	"net/http"
	"time"

	"caltrack/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Entries *services.EntryService
	Summary *services.SummaryService
	Hub     *services.RealtimeHub
}

func NewEntryController(entries *services.EntryService, summary *services.SummaryService, hub *services.RealtimeHub) *EntryController {
	return &EntryController{Entries: entries, Summary: summary, Hub: hub}
}

type entryInput struct {
	FoodItemID *uint    `json:"food_item_id"`
	Quantity   *float64 `json:"quantity"`
}

// POST /api/entry
func (ec *EntryController) Add(c *gin.Context) {
	userID := c.GetUint("userID")

	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if input.FoodItemID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_item_id is required"})
		return
	}

	quantity := 1.0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	now := time.Now()
	entry, err := ec.Entries.Add(userID, *input.FoodItemID, quantity, now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than 0"})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		case errors.Is(err, services.ErrFoodNotAccessible):
			c.JSON(http.StatusForbidden, gin.H{"error": "Food item not accessible"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// push the fresh totals to any open dashboard sockets
	if sum, err := ec.Summary.Daily(userID, now); err == nil {
		ec.Hub.Broadcast(userID, summaryPayload(sum))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Entry added", "id": entry.ID})
}

func summaryPayload(sum services.DailySummary) gin.H {
	return gin.H{
		"calories": services.Round1(sum.Calories),
		"protein":  services.Round1(sum.Protein),
		"carbs":    services.Round1(sum.Carbs),
		"fat":      services.Round1(sum.Fat),
	}
}
