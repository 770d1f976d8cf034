package models

import (
	"time"

	"gorm.io/gorm"
)

// Entertainment backs both daily activities and night shows in a single
// table; the IsDaily / IsNightShow flags partition it into the two logical
// content types the guest pages expose.
type Entertainment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	CategoryID *uint `gorm:"index" json:"category_id,omitempty"`
	LocationID *uint `gorm:"index" json:"location_id,omitempty"`

	IsDaily     bool `gorm:"default:false;index" json:"is_daily"`
	IsNightShow bool `gorm:"default:false;index" json:"is_night_show"`

	Category  *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Location  *Location            `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Schedules []Schedule           `gorm:"foreignKey:EntertainmentID" json:"schedules,omitempty"`
	Images    []EntertainmentImage `gorm:"foreignKey:EntertainmentID" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
