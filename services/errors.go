package services

import "errors"

// Sentinel errors returned by the services. Controllers map them onto HTTP
// statuses; anything else surfaces as a 500.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrFoodNotFound      = errors.New("food item not found")
	ErrFoodNotAccessible = errors.New("food item not accessible")
	ErrInvalidGoal       = errors.New("daily calorie goal must be greater than 0")
)
