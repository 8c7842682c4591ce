package services

import (
	"fmt"
	"math"
	"time"

	"caltrack/models"

	"gorm.io/gorm"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

// DailySummary holds the derived nutrition totals for one (user, day) pair.
type DailySummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Daily recomputes the totals from the day's entries joined to their food
// items. Read-only and safe for concurrent use. Sums stay unrounded; rounding
// happens only where a total is presented.
func (s *SummaryService) Daily(userID uint, date time.Time) (DailySummary, error) {
	var entries []models.FoodEntry
	if err := s.db.
		Preload("FoodItem").
		Where("user_id = ? AND date = ?", userID, DayOf(date)).
		Find(&entries).Error; err != nil {
		return DailySummary{}, err
	}

	var sum DailySummary
	for _, e := range entries {
		if e.FoodItem.ID == 0 {
			// creation-time validation makes this unreachable; a dangling
			// reference means the store is corrupt
			return DailySummary{}, fmt.Errorf("entry %d references missing food item %d", e.ID, e.FoodItemID)
		}
		sum.Calories += float64(e.FoodItem.Calories) * e.Quantity
		sum.Protein += e.FoodItem.Protein * e.Quantity
		sum.Carbs += e.FoodItem.Carbs * e.Quantity
		sum.Fat += e.FoodItem.Fat * e.Quantity
	}
	return sum, nil
}

// Remaining is the calorie budget left for the day, clamped at zero.
func Remaining(goal int, sum DailySummary) float64 {
	r := float64(goal) - sum.Calories
	if r < 0 {
		return 0
	}
	return r
}

// Round1 rounds to one decimal place for presentation.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DayOf truncates a timestamp to its UTC calendar day, the canonical form
// stored on entries and used in day lookups.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
