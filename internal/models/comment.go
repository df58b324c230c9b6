package models

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	BurgerID uint   `gorm:"index" json:"burger_id"`
	UserID   uint   `json:"user_id"`
	User     User   `json:"user"`
	Content  string `json:"content"`
}
