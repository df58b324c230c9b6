package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	GoogleID  string `gorm:"uniqueIndex" json:"google_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	CoverURL  string `json:"cover_url"`
}
