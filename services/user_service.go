package services

import (
	"errors"

	"caltrack/models"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateGoal changes the user's daily calorie goal. Past entries are not
// touched; the goal only affects the remaining-budget computation from now
// on.
func (s *UserService) UpdateGoal(userID uint, goal int) error {
	if goal <= 0 {
		return ErrInvalidGoal
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).Update("daily_calorie_goal", goal)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
