package models

import "time"

// Location is a descriptive place tag inside the hotel ("Pool deck",
// "Main lobby"), referenced by content entities. Not a coordinate.
type Location struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HotelID     uint   `gorm:"index;not null" json:"hotel_id"`
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
