package badges

import (
	"errors"
	"time"

	"github.com/burgerclub/burger-tracker-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BigSpenderThreshold is the price above which MAGNATE unlocks, in
// whole currency units.
const BigSpenderThreshold = 15000

// Notifier is what the evaluator needs to celebrate a fresh unlock.
// Implemented by notifier.DiscordNotifier.
type Notifier interface {
	BadgeUnlocked(user models.User, badge Badge) error
}

type Evaluator struct {
	db       *gorm.DB
	notifier Notifier
}

func NewEvaluator(db *gorm.DB, notifier Notifier) *Evaluator {
	return &Evaluator{db: db, notifier: notifier}
}

// CheckOnCreateAsync runs CheckOnCreate in a detached goroutine. Burger
// creation never waits for badge evaluation; whatever goes wrong in
// here is logged and dies with the goroutine.
func (e *Evaluator) CheckOnCreateAsync(user models.User, burger models.Burger) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("badge evaluation panicked: %v", r)
			}
		}()
		if _, err := e.CheckOnCreate(user, burger); err != nil {
			logrus.Errorf("badge evaluation failed for user %d: %v", user.ID, err)
		}
	}()
}

// CheckOnCreate evaluates every unlock predicate against the owner's
// history (including the just-created burger) and persists each hit.
// It returns the badges that were newly unlocked by this call; badges
// the user already owned are silently skipped.
func (e *Evaluator) CheckOnCreate(user models.User, burger models.Burger) ([]Badge, error) {
	var total int64
	if err := e.db.Model(&models.Burger{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		return nil, err
	}

	var earned []string
	if total == 1 {
		earned = append(earned, CodeFirstBite)
	}
	if total == 5 {
		earned = append(earned, CodeFifthBurger)
	}
	if burger.Price != nil && *burger.Price > BigSpenderThreshold {
		earned = append(earned, CodeBigSpender)
	}
	created := burger.CreatedAt.Local()
	if created.Weekday() == time.Saturday && created.Hour() >= 20 {
		earned = append(earned, CodeSaturdayFever)
	}
	if burger.Rating == 1 {
		earned = append(earned, CodeHarshCritic)
	}

	var unlocked []Badge
	for _, code := range earned {
		grant := models.UserBadge{UserID: user.ID, Code: code}
		if err := e.db.Create(&grant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Already owned, not a new unlock.
				continue
			}
			logrus.Errorf("failed to persist badge %s for user %d: %v", code, user.ID, err)
			continue
		}

		badge, ok := ByCode(code)
		if !ok {
			continue
		}
		unlocked = append(unlocked, badge)

		if e.notifier != nil {
			if err := e.notifier.BadgeUnlocked(user, badge); err != nil {
				logrus.Errorf("failed to send badge notification: %v", err)
			}
		}
	}

	return unlocked, nil
}
