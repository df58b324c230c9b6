package models

import (
	"gorm.io/gorm"
)

// UserBadge records that a user unlocked a badge. A badge is either
// unlocked or not; the (UserID, Code) pair is unique and rows are never
// updated or deleted. The unique index is what makes badge evaluation
// idempotent: a second unlock attempt fails with a duplicate-key error
// and is treated as "already owned".
type UserBadge struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_badge" json:"user_id"`
	User   User   `json:"user"`
	Code   string `gorm:"uniqueIndex:idx_user_badge" json:"code"`
}
