package controllers

import (
	"net/http"

	"caltrack/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

type foodResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// GET /api/food
func (f *FoodController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	items, err := f.Foods.ListVisible(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]foodResponse, 0, len(items))
	for _, item := range items {
		out = append(out, foodResponse{
			ID:       item.ID,
			Name:     item.Name,
			Calories: item.Calories,
			Protein:  item.Protein,
			Carbs:    item.Carbs,
			Fat:      item.Fat,
		})
	}
	c.JSON(http.StatusOK, out)
}

type foodInput struct {
	Name     string  `json:"name"`
	Calories *int    `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	IsPublic *bool   `json:"is_public"`
}

// POST /api/food
func (f *FoodController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if input.Name == "" || input.Calories == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and calories are required"})
		return
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	item, err := f.Foods.Create(userID, input.Name, *input.Calories, input.Protein, input.Carbs, input.Fat, isPublic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Food item added", "id": item.ID})
}
