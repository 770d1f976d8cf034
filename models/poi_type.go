package models

import "time"

type POIType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Key       string `gorm:"size:50" json:"key"`
	Name      string `gorm:"size:150" json:"name"`
	Icon      string `gorm:"size:100" json:"icon"`
	Color     string `gorm:"size:30" json:"color"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (POIType) TableName() string {
	return "poi_types"
}
