package models

import "gorm.io/gorm"

// A catalog entry users can log consumption against. UserID is nil for
// unowned seed items.
type FoodItem struct {
	gorm.Model
	Name     string  `gorm:"not null"`
	Calories int     `gorm:"not null"`  // kcal per serving
	Protein  float64 `gorm:"default:0"` // grams per serving
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	// No column default here: gorm drops zero-valued fields carrying a
	// default tag from the INSERT, which would silently flip an explicit
	// IsPublic=false back to true. The request layer supplies true when the
	// flag is absent.
	IsPublic bool  `gorm:"not null"`
	UserID   *uint `gorm:"index"`
}

// VisibleTo reports whether the item may be read or logged by the given user:
// public items are visible to everyone, private ones only to their owner.
func (f *FoodItem) VisibleTo(userID uint) bool {
	if f.IsPublic {
		return true
	}
	return f.UserID != nil && *f.UserID == userID
}
