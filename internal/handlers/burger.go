package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/badges"
	"github.com/burgerclub/burger-tracker-api/internal/models"
	"github.com/burgerclub/burger-tracker-api/internal/notifier"
	"github.com/burgerclub/burger-tracker-api/internal/places"
	"github.com/burgerclub/burger-tracker-api/internal/stats"
	"github.com/burgerclub/burger-tracker-api/internal/storage"
)

type BurgerHandler struct {
	db          *gorm.DB
	storage     storage.Uploader
	evaluator   *badges.Evaluator
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
}

func NewBurgerHandler(db *gorm.DB, uploader storage.Uploader, evaluator *badges.Evaluator, notifier notifier.Notifier, authHandler *auth.AuthHandler) *BurgerHandler {
	return &BurgerHandler{
		db:          db,
		storage:     uploader,
		evaluator:   evaluator,
		notifier:    notifier,
		authHandler: authHandler,
	}
}

type BurgerResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PlaceName string    `json:"place_name"`
	PhotoURL  string    `json:"photo_url"`
	Rating    int       `json:"rating"`
	Price     *float64  `json:"price,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toBurgerResponse(b models.Burger) BurgerResponse {
	return BurgerResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		PlaceName: b.PlaceName,
		PhotoURL:  b.PhotoURL,
		Rating:    b.Rating,
		Price:     b.Price,
		Lat:       b.Lat,
		Lng:       b.Lng,
		CreatedAt: b.CreatedAt,
	}
}

type CreateBurgerRequest struct {
	auth.AuthInput
	Body struct {
		PlaceName string   `json:"place_name" doc:"Where the burger was eaten" required:"true"`
		Photo     string   `json:"photo" doc:"Photo as a base64 data URL" required:"true"`
		Rating    int      `json:"rating" doc:"Rating, whole stars" minimum:"1" maximum:"5" required:"true"`
		Price     *float64 `json:"price,omitempty" doc:"Price paid, in whole currency units" minimum:"0"`
		Lat       *float64 `json:"lat,omitempty" doc:"Latitude of the place"`
		Lng       *float64 `json:"lng,omitempty" doc:"Longitude of the place"`
	}
}

type CreateBurgerResponse struct {
	Body BurgerResponse
}

func (h *BurgerHandler) HandleCreate(ctx context.Context, input *CreateBurgerRequest) (*CreateBurgerResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	placeName, err := places.Normalize(input.Body.PlaceName)
	if err != nil {
		return nil, huma.Error400BadRequest("Place name is required")
	}

	if (input.Body.Lat == nil) != (input.Body.Lng == nil) {
		return nil, huma.Error400BadRequest("Location needs both lat and lng")
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	if h.storage == nil {
		return nil, huma.Error500InternalServerError("Photo storage is not configured")
	}
	photoURL, err := h.storage.Upload(ctx, input.Body.Photo, "burgers")
	if err != nil {
		return nil, huma.Error400BadRequest("Failed to store photo: " + err.Error())
	}

	burger := models.Burger{
		UserID:    userID,
		PlaceName: placeName,
		PhotoURL:  photoURL,
		Rating:    input.Body.Rating,
		Price:     input.Body.Price,
		Lat:       input.Body.Lat,
		Lng:       input.Body.Lng,
	}

	if err := h.db.Create(&burger).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save burger: " + err.Error())
	}

	// Badge evaluation never blocks or fails the upload.
	h.evaluator.CheckOnCreateAsync(user, burger)

	if h.notifier != nil {
		if err := h.notifier.NewBurger(user, burger); err != nil {
			logrus.Errorf("Failed to send feed notification: %v", err)
		}
	}

	return &CreateBurgerResponse{Body: toBurgerResponse(burger)}, nil
}

type ListBurgersRequest struct {
	auth.AuthInput
}

type ListBurgersResponse struct {
	Body []BurgerResponse
}

// HandleList returns the caller's own burgers, newest first.
func (h *BurgerHandler) HandleList(ctx context.Context, input *ListBurgersRequest) (*ListBurgersResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var burgers []models.Burger
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&burgers).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list burgers")
	}

	response := make([]BurgerResponse, 0, len(burgers))
	for _, b := range burgers {
		response = append(response, toBurgerResponse(b))
	}
	return &ListBurgersResponse{Body: response}, nil
}

type UpdateBurgerRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		PlaceName *string  `json:"place_name,omitempty" doc:"New place name"`
		Rating    *int     `json:"rating,omitempty" minimum:"1" maximum:"5"`
		Price     *float64 `json:"price,omitempty" minimum:"0"`
	}
}

type UpdateBurgerResponse struct {
	Body BurgerResponse
}

// HandleUpdate edits place, price and rating. Photo, timestamp and
// location are fixed at creation.
func (h *BurgerHandler) HandleUpdate(ctx context.Context, input *UpdateBurgerRequest) (*UpdateBurgerResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var burger models.Burger
	if err := h.db.Where("id = ? AND user_id = ?", input.ID, userID).First(&burger).Error; err != nil {
		return nil, huma.Error404NotFound("Burger not found")
	}

	if input.Body.PlaceName != nil {
		placeName, err := places.Normalize(*input.Body.PlaceName)
		if err != nil {
			return nil, huma.Error400BadRequest("Place name is required")
		}
		burger.PlaceName = placeName
	}
	if input.Body.Rating != nil {
		burger.Rating = *input.Body.Rating
	}
	if input.Body.Price != nil {
		burger.Price = input.Body.Price
	}

	if err := h.db.Save(&burger).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update burger")
	}

	return &UpdateBurgerResponse{Body: toBurgerResponse(burger)}, nil
}

type DeleteBurgerRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

// HandleDelete removes a burger and its likes and comments for good.
func (h *BurgerHandler) HandleDelete(ctx context.Context, input *DeleteBurgerRequest) (*struct{}, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var burger models.Burger
	if err := h.db.Where("id = ? AND user_id = ?", input.ID, userID).First(&burger).Error; err != nil {
		return nil, huma.Error404NotFound("Burger not found")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("burger_id = ?", burger.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("burger_id = ?", burger.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&burger).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete burger")
	}

	return nil, nil
}

type StatsRequest struct {
	auth.AuthInput
}

type StatsResponse struct {
	Body stats.Summary
}

// HandleStats recomputes the dashboard summary from the caller's full
// entry set on every request.
func (h *BurgerHandler) HandleStats(ctx context.Context, input *StatsRequest) (*StatsResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var burgers []models.Burger
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&burgers).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load burgers")
	}

	return &StatsResponse{Body: *stats.Summarize(burgers, time.Now())}, nil
}
