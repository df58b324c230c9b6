package handlers

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/burgerclub/burger-tracker-api/internal/models"
)

func seedBurgers(t *testing.T, db *gorm.DB, userID uint, n int, created time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		burger := models.Burger{
			Model:     gorm.Model{CreatedAt: created.Add(time.Duration(i) * time.Minute)},
			UserID:    userID,
			PlaceName: "Mostaza",
			Rating:    3,
		}
		if err := db.Create(&burger).Error; err != nil {
			t.Fatalf("failed to seed burger: %v", err)
		}
	}
}

func TestHandleLeaderboardMonthly(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewLeaderboardHandler(db)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	seedBurgers(t, db, nico.ID, 2, monthStart.Add(time.Hour))
	seedBurgers(t, db, flor.ID, 3, monthStart.Add(2*time.Hour))
	// Out of period, must not count for monthly.
	seedBurgers(t, db, nico.ID, 5, monthStart.AddDate(0, -2, 0))

	resp, err := handler.HandleLeaderboard(context.Background(), &LeaderboardRequest{Period: "monthly"})
	if err != nil {
		t.Fatalf("HandleLeaderboard returned error: %v", err)
	}

	if len(resp.Body.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Body.Entries))
	}
	first := resp.Body.Entries[0]
	if first.UserID != flor.ID || first.TotalBurgers != 3 || first.Rank != 1 {
		t.Errorf("expected Flor first with 3 burgers, got %+v", first)
	}
	if first.FullName != "Flor" {
		t.Errorf("expected user profile attached, got %+v", first)
	}
}

func TestHandleLeaderboardYearlyAndTies(t *testing.T) {
	db := testDB(t)
	nico := createUser(t, db, "Nico")
	flor := createUser(t, db, "Flor")
	handler := NewLeaderboardHandler(db)

	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	seedBurgers(t, db, nico.ID, 4, yearStart.Add(time.Hour))
	seedBurgers(t, db, flor.ID, 4, yearStart.Add(2*time.Hour))

	resp, err := handler.HandleLeaderboard(context.Background(), &LeaderboardRequest{Period: "yearly"})
	if err != nil {
		t.Fatalf("HandleLeaderboard returned error: %v", err)
	}

	if len(resp.Body.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Body.Entries))
	}
	// Equal counts: the earlier user id wins.
	if resp.Body.Entries[0].UserID != nico.ID {
		t.Errorf("expected deterministic tie-break by user id, got %+v", resp.Body.Entries)
	}
}

func TestHandleLeaderboardDefaultsToMonthly(t *testing.T) {
	db := testDB(t)
	handler := NewLeaderboardHandler(db)

	resp, err := handler.HandleLeaderboard(context.Background(), &LeaderboardRequest{})
	if err != nil {
		t.Fatalf("HandleLeaderboard returned error: %v", err)
	}
	if resp.Body.Period != "monthly" {
		t.Errorf("expected monthly default, got %q", resp.Body.Period)
	}
	if len(resp.Body.Entries) != 0 {
		t.Errorf("expected empty ranking, got %+v", resp.Body.Entries)
	}
}
