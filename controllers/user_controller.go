package controllers

import (
	"errors"
	"net/http"

	"caltrack/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (u *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := u.Users.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 user.ID,
		"username":           user.Username,
		"email":              user.Email,
		"daily_calorie_goal": user.DailyCalorieGoal,
	})
}

type profileInput struct {
	DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required"`
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Users.UpdateGoal(userID, input.DailyCalorieGoal); err != nil {
		if errors.Is(err, services.ErrInvalidGoal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
