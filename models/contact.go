package models

import "time"

type Contact struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Name       string `gorm:"size:150" json:"name"`
	Phone      string `gorm:"size:50" json:"phone"`
	Department string `gorm:"size:150" json:"department"`
	SortOrder  int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
