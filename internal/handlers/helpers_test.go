package handlers

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/config"
	"github.com/burgerclub/burger-tracker-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Burger{},
		&models.Like{},
		&models.Comment{},
		&models.UserBadge{},
		&models.APIKey{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func testAuth(db *gorm.DB) *auth.AuthHandler {
	return auth.NewAuthHandler(&config.Config{JWTSecret: "test-secret"}, db)
}

func userCtx(userID uint) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func createUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{GoogleID: "g-" + name, FullName: name}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// fakeUploader stands in for S3 in handler tests.
type fakeUploader struct {
	uploads int
	fail    bool
}

func (f *fakeUploader) Upload(ctx context.Context, dataURL, prefix string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("upload failed")
	}
	f.uploads++
	return fmt.Sprintf("https://photos.example.com/%s/%d.jpg", prefix, f.uploads), nil
}
