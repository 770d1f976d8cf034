package models

import (
	"time"

	"gorm.io/gorm"
)

// Suggestion location types. Address is persisted only for external
// suggestions; internal ones are inside the hotel and the field is nulled
// on write.
const (
	LocationTypeInternal = "internal"
	LocationTypeExternal = "external"
)

type Suggestion struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	CategoryID *uint `gorm:"index" json:"category_id,omitempty"`

	LocationType string `gorm:"size:20;default:'internal'" json:"location_type"`
	Address      string `gorm:"type:text" json:"address,omitempty"`
	Website      string `gorm:"size:255" json:"website,omitempty"`
	Phone        string `gorm:"size:50" json:"phone,omitempty"`

	Category *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images   []SuggestionImage `gorm:"foreignKey:SuggestionID" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
