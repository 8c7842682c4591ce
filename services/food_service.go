package services

import (
	"caltrack/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// ListVisible returns every public item plus the caller's own private items,
// ordered by id ascending for a stable listing.
func (s *FoodService) ListVisible(userID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.
		Where("is_public = ? OR user_id = ?", true, userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Create inserts a catalog item owned by the caller. Names are not unique;
// two users may each have their own "Oatmeal".
func (s *FoodService) Create(userID uint, name string, calories int, protein, carbs, fat float64, isPublic bool) (*models.FoodItem, error) {
	owner := userID
	item := &models.FoodItem{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		IsPublic: isPublic,
		UserID:   &owner,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	}); err != nil {
		return nil, err
	}
	return item, nil
}
