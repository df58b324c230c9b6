package database

import (
	"github.com/burgerclub/burger-tracker-api/internal/config"
	"github.com/burgerclub/burger-tracker-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.User{},
		&models.Burger{},
		&models.Like{},
		&models.Comment{},
		&models.UserBadge{},
		&models.APIKey{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
