package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FoodSpotKindRestaurant = "restaurant"
	FoodSpotKindBar        = "bar"
)

type FoodSpot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Kind        string `gorm:"size:30;index;default:'restaurant'" json:"kind"`

	LocationID *uint `gorm:"index" json:"location_id,omitempty"`

	OpeningHours    string `gorm:"size:255" json:"opening_hours"`
	MenuURL         string `gorm:"size:255" json:"menu_url"`
	BookingRequired bool   `gorm:"default:false" json:"booking_required"`

	Location *Location       `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Images   []FoodSpotImage `gorm:"foreignKey:FoodSpotID" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
