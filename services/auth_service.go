package services

import (
	"errors"

	"caltrack/models"
	"caltrack/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates a new user with a hashed password. It does not establish
// a session; callers still log in separately.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if taken, err := s.usernameTaken(username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.emailTaken(email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:         username,
		Email:            email,
		Password:         hashed,
		DailyCalorieGoal: 2000,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	}); err != nil {
		// a concurrent registration can slip between the checks above and
		// the insert; the unique indexes fire instead, and the loser still
		// owes the caller a conflict, not a server error
		return nil, s.conflictFor(username, email, err)
	}
	return user, nil
}

func (s *AuthService) usernameTaken(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *AuthService) emailTaken(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// conflictFor resolves a failed insert to the uniqueness conflict that caused
// it, or hands back insertErr unchanged when neither column is taken.
func (s *AuthService) conflictFor(username, email string, insertErr error) error {
	if taken, err := s.usernameTaken(username); err == nil && taken {
		return ErrUsernameTaken
	}
	if taken, err := s.emailTaken(email); err == nil && taken {
		return ErrEmailTaken
	}
	return insertErr
}

// Authenticate returns the user for valid credentials. The error is the same
// for an unknown username and a wrong password so callers cannot enumerate
// accounts.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
