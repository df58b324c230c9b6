package models

import (
	"gorm.io/gorm"
)

type Like struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex:idx_user_burger" json:"user_id"`
	BurgerID uint   `gorm:"uniqueIndex:idx_user_burger" json:"burger_id"`
	User     User   `json:"user"`
	Burger   Burger `json:"burger"`
}
