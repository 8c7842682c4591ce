package services

import (
	"testing"

	"caltrack/config"
	"caltrack/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep every connection on the same :memory: database

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, goal int) models.User {
	t.Helper()

	user := models.User{
		Username:         username,
		Email:            username + "@example.com",
		Password:         "not-a-real-hash",
		DailyCalorieGoal: goal,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createFood(t *testing.T, db *gorm.DB, name string, calories int, protein, carbs, fat float64, isPublic bool, owner *uint) models.FoodItem {
	t.Helper()

	item := models.FoodItem{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		IsPublic: isPublic,
		UserID:   owner,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}
