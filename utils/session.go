package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

// GenerateSessionToken mints the signed value stored in the session cookie.
// The token carries only the user id; everything else is looked up per
// request.
func GenerateSessionToken(userID uint, ttl time.Duration, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseSessionToken validates the cookie value and returns the user id it
// was minted for.
func ParseSessionToken(tokenString string, secret []byte) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	id, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok || id <= 0 {
		return 0, ErrInvalidSession
	}
	return uint(id), nil
}
