package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/models"
)

const LeaderboardSize = 10

type LeaderboardHandler struct {
	db *gorm.DB
}

func NewLeaderboardHandler(db *gorm.DB) *LeaderboardHandler {
	return &LeaderboardHandler{db: db}
}

type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	AvatarURL    string `json:"avatar_url"`
	TotalBurgers int    `json:"total_burgers"`
}

type LeaderboardRequest struct {
	Period string `query:"period" doc:"Ranking period" enum:"monthly,yearly" default:"monthly" required:"false"`
}

type LeaderboardResponse struct {
	Body struct {
		Period  string             `json:"period"`
		Entries []LeaderboardEntry `json:"entries"`
	}
}

// HandleLeaderboard ranks users by burgers logged in the current
// calendar month or year. Ties go to the lower user id so the order is
// stable.
func (h *LeaderboardHandler) HandleLeaderboard(ctx context.Context, input *LeaderboardRequest) (*LeaderboardResponse, error) {
	period := input.Period
	if period == "" {
		period = "monthly"
	}

	now := time.Now()
	var since time.Time
	switch period {
	case "monthly":
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "yearly":
		since = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, huma.Error400BadRequest("Period must be monthly or yearly")
	}

	var rows []struct {
		UserID       uint
		TotalBurgers int
	}
	if err := h.db.Model(&models.Burger{}).
		Select("user_id, COUNT(*) as total_burgers").
		Where("created_at >= ?", since).
		Group("user_id").
		Order("total_burgers DESC, user_id ASC").
		Limit(LeaderboardSize).
		Scan(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute ranking")
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}

	users := map[uint]models.User{}
	if len(ids) > 0 {
		var list []models.User
		if err := h.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
			return nil, huma.Error500InternalServerError("Failed to load users")
		}
		for _, u := range list {
			users[u.ID] = u
		}
	}

	res := &LeaderboardResponse{}
	res.Body.Period = period
	res.Body.Entries = make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		u := users[row.UserID]
		res.Body.Entries = append(res.Body.Entries, LeaderboardEntry{
			Rank:         i + 1,
			UserID:       row.UserID,
			FullName:     u.FullName,
			AvatarURL:    u.AvatarURL,
			TotalBurgers: row.TotalBurgers,
		})
	}

	return res, nil
}
