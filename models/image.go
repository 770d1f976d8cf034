package models

import "time"

// Image is an externally hosted picture. Ownership is expressed through one
// join row per entity type; at most one join row per owner may be flagged
// principal, enforced by the image service's transactional swap.
type Image struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HotelID uint   `gorm:"index;not null" json:"hotel_id"`
	URL     string `gorm:"size:500" json:"url"`
	Alt     string `gorm:"size:255" json:"alt"`

	CreatedAt time.Time `json:"created_at"`
}

type EntertainmentImage struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EntertainmentID uint `gorm:"index;not null" json:"entertainment_id"`
	ImageID         uint `gorm:"index;not null" json:"image_id"`
	IsPrincipal     bool `gorm:"default:false" json:"is_principal"`

	Image Image `gorm:"foreignKey:ImageID" json:"image"`
}

type FoodSpotImage struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	FoodSpotID  uint `gorm:"index;not null" json:"food_spot_id"`
	ImageID     uint `gorm:"index;not null" json:"image_id"`
	IsPrincipal bool `gorm:"default:false" json:"is_principal"`

	Image Image `gorm:"foreignKey:ImageID" json:"image"`
}

type SuggestionImage struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	SuggestionID uint `gorm:"index;not null" json:"suggestion_id"`
	ImageID      uint `gorm:"index;not null" json:"image_id"`
	IsPrincipal  bool `gorm:"default:false" json:"is_principal"`

	Image Image `gorm:"foreignKey:ImageID" json:"image"`
}

// TenantImage links a carousel picture to a hotel profile.
type TenantImage struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	HotelID     uint `gorm:"index;not null" json:"hotel_id"`
	ImageID     uint `gorm:"index;not null" json:"image_id"`
	IsPrincipal bool `gorm:"default:false" json:"is_principal"`
	SortOrder   int  `gorm:"default:0" json:"sort_order"`

	Image Image `gorm:"foreignKey:ImageID" json:"image"`
}
