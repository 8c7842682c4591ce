package services

import (
	"errors"
	"time"

	"caltrack/models"

	"gorm.io/gorm"
)

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// Add validates and persists one consumption entry. Checks run in a fixed
// order so every failure scenario maps to exactly one status: quantity before
// existence, existence before accessibility.
func (s *EntryService) Add(userID, foodItemID uint, quantity float64, date time.Time) (*models.FoodEntry, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var item models.FoodItem
	if err := s.db.First(&item, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	if !item.VisibleTo(userID) {
		return nil, ErrFoodNotAccessible
	}

	entry := &models.FoodEntry{
		UserID:     userID,
		FoodItemID: foodItemID,
		Quantity:   quantity,
		Date:       DayOf(date),
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	}); err != nil {
		return nil, err
	}
	return entry, nil
}

// ForDay returns the user's entries for one calendar day with their food
// items loaded, oldest first.
func (s *EntryService) ForDay(userID uint, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Preload("FoodItem").
		Where("user_id = ? AND date = ?", userID, DayOf(date)).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
