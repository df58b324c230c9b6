package handlers

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/models"
)

func TestHandleFeed(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewFeedHandler(db, testAuth(db))

	now := time.Now()
	old := models.Burger{
		Model:     gorm.Model{CreatedAt: now.Add(-time.Hour)},
		UserID:    nico.ID,
		PlaceName: "Mostaza",
		Rating:    3,
	}
	db.Create(&old)
	recent := models.Burger{
		Model:     gorm.Model{CreatedAt: now},
		UserID:    flor.ID,
		PlaceName: "La Birra Bar",
		Rating:    5,
	}
	db.Create(&recent)

	db.Create(&models.Like{UserID: nico.ID, BurgerID: recent.ID})
	db.Create(&models.Like{UserID: flor.ID, BurgerID: recent.ID})
	db.Create(&models.Comment{UserID: nico.ID, BurgerID: recent.ID, Content: "tremenda"})

	resp, err := handler.HandleFeed(userCtx(nico.ID), &FeedRequest{})
	if err != nil {
		t.Fatalf("HandleFeed returned error: %v", err)
	}

	if len(resp.Body) != 2 {
		t.Fatalf("expected 2 feed items, got %d", len(resp.Body))
	}

	first := resp.Body[0]
	if first.ID != recent.ID {
		t.Fatalf("expected newest burger first, got %d", first.ID)
	}
	if first.Author.FullName != "Flor" {
		t.Errorf("expected author Flor, got %q", first.Author.FullName)
	}
	if first.LikeCount != 2 {
		t.Errorf("expected 2 likes, got %d", first.LikeCount)
	}
	if !first.Liked {
		t.Error("expected caller's like to be flagged")
	}
	if first.CommentCount != 1 {
		t.Errorf("expected 1 comment, got %d", first.CommentCount)
	}

	second := resp.Body[1]
	if second.LikeCount != 0 || second.Liked || second.CommentCount != 0 {
		t.Errorf("expected zero counters on the old burger, got %+v", second)
	}
}

func TestHandleFeedLimit(t *testing.T) {
	db := testDB(t)
	user := createUser(t, db, "Nico")
	handler := NewFeedHandler(db, testAuth(db))

	for i := 0; i < 25; i++ {
		db.Create(&models.Burger{
			Model:     gorm.Model{CreatedAt: time.Now().Add(time.Duration(i) * time.Minute)},
			UserID:    user.ID,
			PlaceName: "Mostaza",
			Rating:    3,
		})
	}

	resp, err := handler.HandleFeed(userCtx(user.ID), &FeedRequest{})
	if err != nil {
		t.Fatalf("HandleFeed returned error: %v", err)
	}
	if len(resp.Body) != DefaultFeedLimit {
		t.Errorf("expected default limit %d, got %d", DefaultFeedLimit, len(resp.Body))
	}

	resp, err = handler.HandleFeed(userCtx(user.ID), &FeedRequest{Limit: 5, Offset: 5})
	if err != nil {
		t.Fatalf("HandleFeed returned error: %v", err)
	}
	if len(resp.Body) != 5 {
		t.Errorf("expected 5 items, got %d", len(resp.Body))
	}
}

func TestHandleLikeIsIdempotentConflict(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewFeedHandler(db, testAuth(db))

	burger := models.Burger{UserID: flor.ID, PlaceName: "Mostaza", Rating: 3}
	db.Create(&burger)

	if _, err := handler.HandleLike(userCtx(nico.ID), &LikeRequest{ID: burger.ID}); err != nil {
		t.Fatalf("first like returned error: %v", err)
	}

	if _, err := handler.HandleLike(userCtx(nico.ID), &LikeRequest{ID: burger.ID}); err == nil {
		t.Error("expected conflict on double like")
	}

	var count int64
	db.Model(&models.Like{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 like row, got %d", count)
	}
}

func TestHandleUnlike(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewFeedHandler(db, testAuth(db))

	burger := models.Burger{UserID: flor.ID, PlaceName: "Mostaza", Rating: 3}
	db.Create(&burger)
	db.Create(&models.Like{UserID: nico.ID, BurgerID: burger.ID})

	if _, err := handler.HandleUnlike(userCtx(nico.ID), &LikeRequest{ID: burger.ID}); err != nil {
		t.Fatalf("HandleUnlike returned error: %v", err)
	}

	// Unliking again is a 404, the like is gone.
	if _, err := handler.HandleUnlike(userCtx(nico.ID), &LikeRequest{ID: burger.ID}); err == nil {
		t.Error("expected error when unliking twice")
	}
}

func TestComments(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewFeedHandler(db, testAuth(db))

	burger := models.Burger{UserID: flor.ID, PlaceName: "Mostaza", Rating: 3}
	db.Create(&burger)

	req := &CreateCommentRequest{ID: burger.ID}
	req.Body.Content = "  ¡Qué buena pinta!  "
	resp, err := handler.HandleCreateComment(userCtx(nico.ID), req)
	if err != nil {
		t.Fatalf("HandleCreateComment returned error: %v", err)
	}
	if resp.Body.Content != "¡Qué buena pinta!" {
		t.Errorf("expected trimmed content, got %q", resp.Body.Content)
	}
	if resp.Body.Author.FullName != "Nico" {
		t.Errorf("expected author Nico, got %q", resp.Body.Author.FullName)
	}

	empty := &CreateCommentRequest{ID: burger.ID}
	empty.Body.Content = "   "
	if _, err := handler.HandleCreateComment(userCtx(nico.ID), empty); err == nil {
		t.Error("expected error for empty comment")
	}

	second := &CreateCommentRequest{ID: burger.ID}
	second.Body.Content = "segunda"
	if _, err := handler.HandleCreateComment(userCtx(flor.ID), second); err != nil {
		t.Fatalf("HandleCreateComment returned error: %v", err)
	}

	list, err := handler.HandleListComments(userCtx(nico.ID), &ListCommentsRequest{ID: burger.ID})
	if err != nil {
		t.Fatalf("HandleListComments returned error: %v", err)
	}
	if len(list.Body) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(list.Body))
	}
	if list.Body[0].Content != "¡Qué buena pinta!" {
		t.Errorf("expected oldest comment first, got %q", list.Body[0].Content)
	}

	if _, err := handler.HandleListComments(userCtx(nico.ID), &ListCommentsRequest{ID: 99999}); err == nil {
		t.Error("expected error for missing burger")
	}
}
