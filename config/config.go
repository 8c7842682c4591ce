package config

import (
	"fmt"
	"os"

	"caltrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Addr          string
	SessionSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads the process configuration from the environment. A .env file is
// honored when present but not required, so tests and containers can run
// without one.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getenv("ADDR", ":8080"),
		SessionSecret: getenv("SESSION_SECRET", "dev-only-secret"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBUser:        getenv("DB_USER", "caltrack"),
		DBPassword:    getenv("DB_PASSWORD", "caltrack"),
		DBName:        getenv("DB_NAME", "caltrack"),
		DBPort:        getenv("DB_PORT", "5432"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB connects to Postgres and migrates the schema. The returned handle is
// passed into the router and services; there is no package-level DB.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the schema on any gorm dialect. Tests call
// it directly against an in-memory sqlite handle.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodEntry{},
	)
}
