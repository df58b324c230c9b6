package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/models"
	"github.com/burgerclub/burger-tracker-api/internal/storage"
)

type ProfileHandler struct {
	db          *gorm.DB
	storage     storage.Uploader
	authHandler *auth.AuthHandler
}

func NewProfileHandler(db *gorm.DB, uploader storage.Uploader, authHandler *auth.AuthHandler) *ProfileHandler {
	return &ProfileHandler{db: db, storage: uploader, authHandler: authHandler}
}

type UpdateProfileRequest struct {
	auth.AuthInput
	Body struct {
		FullName *string `json:"full_name,omitempty" doc:"Display name"`
		Avatar   *string `json:"avatar,omitempty" doc:"New avatar as a base64 data URL"`
		Cover    *string `json:"cover,omitempty" doc:"New cover image as a base64 data URL"`
	}
}

type UpdateProfileResponse struct {
	Body struct {
		ID        uint   `json:"id"`
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
		CoverURL  string `json:"cover_url"`
	}
}

func (h *ProfileHandler) HandleUpdateProfile(ctx context.Context, input *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	if input.Body.FullName != nil {
		name := strings.TrimSpace(*input.Body.FullName)
		if name == "" {
			return nil, huma.Error400BadRequest("Name cannot be empty")
		}
		user.FullName = name
	}

	if input.Body.Avatar != nil {
		url, err := h.uploadImage(ctx, userID, *input.Body.Avatar)
		if err != nil {
			return nil, err
		}
		user.AvatarURL = url
	}
	if input.Body.Cover != nil {
		url, err := h.uploadImage(ctx, userID, *input.Body.Cover)
		if err != nil {
			return nil, err
		}
		user.CoverURL = url
	}

	if err := h.db.Save(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update profile")
	}

	res := &UpdateProfileResponse{}
	res.Body.ID = user.ID
	res.Body.FullName = user.FullName
	res.Body.AvatarURL = user.AvatarURL
	res.Body.CoverURL = user.CoverURL
	return res, nil
}

func (h *ProfileHandler) uploadImage(ctx context.Context, userID uint, dataURL string) (string, error) {
	if h.storage == nil {
		return "", huma.Error500InternalServerError("Photo storage is not configured")
	}
	url, err := h.storage.Upload(ctx, dataURL, fmt.Sprintf("avatars/%d", userID))
	if err != nil {
		return "", huma.Error400BadRequest("Failed to store image: " + err.Error())
	}
	return url, nil
}
