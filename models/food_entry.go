package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged consumption of a food item. Quantity is a serving multiplier
// applied to the item's nutrient values. Date carries the calendar day only
// (midnight UTC); totals for a day are recomputed from entries on each read,
// never stored.
type FoodEntry struct {
	gorm.Model
	UserID     uint `gorm:"index;not null"` // FK → users.id
	FoodItemID uint `gorm:"not null"`
	FoodItem   FoodItem
	Quantity   float64   `gorm:"not null;default:1"`
	Date       time.Time `gorm:"index;not null"`
}
