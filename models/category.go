package models

import "time"

// Category kinds. The same table backs activity categories and suggestion
// categories, split by Kind.
const (
	CategoryKindActivity   = "activity"
	CategoryKindSuggestion = "suggestion"
)

type Category struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HotelID uint   `gorm:"index;not null" json:"hotel_id"`
	Kind    string `gorm:"size:30;index" json:"kind"`

	Name      string `gorm:"size:150" json:"name"`
	Icon      string `gorm:"size:100" json:"icon"`
	Color     string `gorm:"size:30" json:"color"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
