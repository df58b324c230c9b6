package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/models"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 50
	MaxCommentLength = 500
)

type FeedHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewFeedHandler(db *gorm.DB, authHandler *auth.AuthHandler) *FeedHandler {
	return &FeedHandler{db: db, authHandler: authHandler}
}

type Author struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

type FeedItem struct {
	BurgerResponse
	Author       Author `json:"author"`
	LikeCount    int    `json:"like_count"`
	Liked        bool   `json:"liked"`
	CommentCount int    `json:"comment_count"`
}

type FeedRequest struct {
	auth.AuthInput
	Limit  int `query:"limit" doc:"Page size" minimum:"1" maximum:"50" required:"false"`
	Offset int `query:"offset" doc:"Page offset" minimum:"0" required:"false"`
}

type FeedResponse struct {
	Body []FeedItem
}

// HandleFeed returns everyone's burgers, newest first, with author
// profile and like/comment counters for the calling user.
func (h *FeedHandler) HandleFeed(ctx context.Context, input *FeedRequest) (*FeedResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	var burgers []models.Burger
	if err := h.db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(input.Offset).
		Find(&burgers).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load feed")
	}

	ids := make([]uint, 0, len(burgers))
	for _, b := range burgers {
		ids = append(ids, b.ID)
	}

	likeCounts, err := h.countByBurger(&models.Like{}, ids)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count likes")
	}
	commentCounts, err := h.countByBurger(&models.Comment{}, ids)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to count comments")
	}

	liked := map[uint]bool{}
	if len(ids) > 0 {
		var mine []models.Like
		if err := h.db.Where("user_id = ? AND burger_id IN ?", userID, ids).Find(&mine).Error; err != nil {
			return nil, huma.Error500InternalServerError("Failed to load likes")
		}
		for _, l := range mine {
			liked[l.BurgerID] = true
		}
	}

	items := make([]FeedItem, 0, len(burgers))
	for _, b := range burgers {
		items = append(items, FeedItem{
			BurgerResponse: toBurgerResponse(b),
			Author: Author{
				ID:        b.User.ID,
				FullName:  b.User.FullName,
				AvatarURL: b.User.AvatarURL,
			},
			LikeCount:    likeCounts[b.ID],
			Liked:        liked[b.ID],
			CommentCount: commentCounts[b.ID],
		})
	}

	return &FeedResponse{Body: items}, nil
}

func (h *FeedHandler) countByBurger(model interface{}, ids []uint) (map[uint]int, error) {
	counts := map[uint]int{}
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		BurgerID uint
		Total    int
	}
	if err := h.db.Model(model).
		Select("burger_id, COUNT(*) as total").
		Where("burger_id IN ?", ids).
		Group("burger_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.BurgerID] = row.Total
	}
	return counts, nil
}

type LikeRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type LikeResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *FeedHandler) HandleLike(ctx context.Context, input *LikeRequest) (*LikeResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var burger models.Burger
	if err := h.db.First(&burger, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Burger not found")
	}

	like := models.Like{UserID: userID, BurgerID: burger.ID}
	if err := h.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, huma.Error409Conflict("Already liked")
		}
		return nil, huma.Error500InternalServerError("Failed to save like")
	}

	res := &LikeResponse{}
	res.Body.Message = "Liked"
	return res, nil
}

func (h *FeedHandler) HandleUnlike(ctx context.Context, input *LikeRequest) (*struct{}, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	result := h.db.Unscoped().
		Where("user_id = ? AND burger_id = ?", userID, input.ID).
		Delete(&models.Like{})
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to remove like")
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Like not found")
	}

	return nil, nil
}

type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    Author    `json:"author"`
}

type ListCommentsRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type ListCommentsResponse struct {
	Body []CommentView
}

// HandleListComments returns a burger's comments, oldest first.
func (h *FeedHandler) HandleListComments(ctx context.Context, input *ListCommentsRequest) (*ListCommentsResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	var burger models.Burger
	if err := h.db.First(&burger, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Burger not found")
	}

	var comments []models.Comment
	if err := h.db.Preload("User").
		Where("burger_id = ?", burger.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load comments")
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author: Author{
				ID:        c.User.ID,
				FullName:  c.User.FullName,
				AvatarURL: c.User.AvatarURL,
			},
		})
	}

	return &ListCommentsResponse{Body: views}, nil
}

type CreateCommentRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Content string `json:"content" doc:"Comment text" required:"true" maxLength:"500"`
	}
}

type CreateCommentResponse struct {
	Body CommentView
}

func (h *FeedHandler) HandleCreateComment(ctx context.Context, input *CreateCommentRequest) (*CreateCommentResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Body.Content)
	if content == "" {
		return nil, huma.Error400BadRequest("Comment is empty")
	}

	var burger models.Burger
	if err := h.db.First(&burger, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Burger not found")
	}

	comment := models.Comment{
		BurgerID: burger.ID,
		UserID:   userID,
		Content:  content,
	}
	if err := h.db.Create(&comment).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save comment")
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load user")
	}

	return &CreateCommentResponse{Body: CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author: Author{
			ID:        user.ID,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
		},
	}}, nil
}
