package models

import (
	"gorm.io/gorm"
)

// Burger is one logged food purchase. PlaceName is stored already
// normalized (see internal/places). PhotoURL, CreatedAt and the
// coordinates are fixed at creation; only place, price and rating go
// through the edit flow.
type Burger struct {
	gorm.Model
	UserID    uint     `gorm:"index" json:"user_id"`
	User      User     `json:"user"`
	PlaceName string   `json:"place_name"`
	PhotoURL  string   `json:"photo_url"`
	Rating    int      `json:"rating"`
	Price     *float64 `json:"price,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}
