// Populates the database with a starter food catalog and demo accounts.
// Run: go run ./cmd/seed
package main

import (
	"log"
	"time"

	"caltrack/config"
	"caltrack/models"
	"caltrack/services"
	"caltrack/utils"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed data created")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		users := []struct {
			username, email, password string
			goal                      int
		}{
			{"testuser", "test@example.com", "test123", 2000},
			{"student", "student@example.com", "123456", 2500},
			{"guest", "guest@example.com", "123456", 1800},
		}
		created := make([]models.User, 0, len(users))
		for _, u := range users {
			hashed, err := utils.HashPassword(u.password)
			if err != nil {
				return err
			}
			user := models.User{Username: u.username, Email: u.email, Password: hashed, DailyCalorieGoal: u.goal}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			created = append(created, user)
		}

		foods := []models.FoodItem{
			{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, IsPublic: true},
			{Name: "Grilled Chicken", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, IsPublic: true},
			{Name: "White Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, IsPublic: true},
			{Name: "Black Beans", Calories: 127, Protein: 8.8, Carbs: 22.8, Fat: 0.5, IsPublic: true},
			{Name: "Boiled Egg", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, IsPublic: true},
			{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, IsPublic: true},
			{Name: "Whole Wheat Bread", Calories: 247, Protein: 13, Carbs: 41, Fat: 4.2, IsPublic: true},
			{Name: "Plain Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, IsPublic: true},
			{Name: "Green Salad", Calories: 15, Protein: 1.2, Carbs: 3, Fat: 0.2, IsPublic: true},
			{Name: "Turkey Breast", Calories: 135, Protein: 30, Carbs: 0, Fat: 1, IsPublic: true},
		}
		for i := range foods {
			if err := tx.Create(&foods[i]).Error; err != nil {
				return err
			}
		}

		today := time.Now()
		yesterday := today.AddDate(0, 0, -1)
		entries := []struct {
			user models.User
			food models.FoodItem
			qty  float64
			when time.Time
		}{
			{created[0], foods[0], 2, today},
			{created[0], foods[1], 1, today},
			{created[0], foods[2], 1, yesterday},
			{created[1], foods[3], 1, today},
			{created[1], foods[4], 2, today},
		}
		for _, e := range entries {
			entry := models.FoodEntry{
				UserID:     e.user.ID,
				FoodItemID: e.food.ID,
				Quantity:   e.qty,
				Date:       services.DayOf(e.when),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
