package controllers

import (
	"net/http"
	"time"

	"caltrack/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Users   *services.UserService
	Entries *services.EntryService
	Summary *services.SummaryService
}

func NewDashboardController(users *services.UserService, entries *services.EntryService, summary *services.SummaryService) *DashboardController {
	return &DashboardController{Users: users, Entries: entries, Summary: summary}
}

type dashboardEntry struct {
	ID       uint    `json:"id"`
	Food     string  `json:"food"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Date     string  `json:"date"`
}

// GET /dashboard — today's entries plus derived totals against the user's
// goal. Totals are rounded to one decimal here and nowhere earlier.
func (dc *DashboardController) Show(c *gin.Context) {
	userID := c.GetUint("userID")
	today := time.Now()

	user, err := dc.Users.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries, err := dc.Entries.ForDay(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sum, err := dc.Summary.Daily(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dashboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dashboardEntry{
			ID:       e.ID,
			Food:     e.FoodItem.Name,
			Quantity: e.Quantity,
			Calories: services.Round1(float64(e.FoodItem.Calories) * e.Quantity),
			Date:     e.Date.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": out,
		"totals": gin.H{
			"calories": services.Round1(sum.Calories),
			"protein":  services.Round1(sum.Protein),
			"carbs":    services.Round1(sum.Carbs),
			"fat":      services.Round1(sum.Fat),
		},
		"daily_calorie_goal": user.DailyCalorieGoal,
		"remaining_calories": services.Round1(services.Remaining(user.DailyCalorieGoal, sum)),
	})
}
