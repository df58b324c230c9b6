package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/badges"
	"github.com/burgerclub/burger-tracker-api/internal/models"
)

type BadgeHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewBadgeHandler(db *gorm.DB, authHandler *auth.AuthHandler) *BadgeHandler {
	return &BadgeHandler{db: db, authHandler: authHandler}
}

type BadgeView struct {
	badges.Badge
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type ListBadgesRequest struct {
	auth.AuthInput
}

type ListBadgesResponse struct {
	Body []BadgeView
}

// HandleListBadges returns the whole catalog with the caller's unlock
// state, locked ones included so the client can gray them out.
func (h *BadgeHandler) HandleListBadges(ctx context.Context, input *ListBadgesRequest) (*ListBadgesResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var grants []models.UserBadge
	if err := h.db.Where("user_id = ?", userID).Find(&grants).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load badges")
	}

	unlockedAt := map[string]time.Time{}
	for _, g := range grants {
		unlockedAt[g.Code] = g.CreatedAt
	}

	views := make([]BadgeView, 0, len(badges.Catalog))
	for _, b := range badges.Catalog {
		view := BadgeView{Badge: b}
		if at, ok := unlockedAt[b.Code]; ok {
			view.Unlocked = true
			t := at
			view.UnlockedAt = &t
		}
		views = append(views, view)
	}

	return &ListBadgesResponse{Body: views}, nil
}
