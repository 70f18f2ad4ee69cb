package config

import (
	"os"

	"casino-backend/models"
	"casino-backend/utils/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupDatabase connects to DB and runs migrations
func SetupDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Log.Fatal("DATABASE_URL is required in .env or environment")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.RoundRecord{},
	); err != nil {
		logger.Log.Fatalf("Migration failed: %v", err)
	}

	logger.Info("database migration completed")
	return db
}
