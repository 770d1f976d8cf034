package models

import "time"

// Plan is a raster floor plan; MapPoint pins a POI onto it with fractional
// coordinates (0..1 of the plan's width/height).
type Plan struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;not null" json:"hotel_id"`

	Name      string `gorm:"size:150" json:"name"`
	Floor     int    `gorm:"default:0" json:"floor"`
	ImageURL  string `gorm:"size:500" json:"image_url"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	Points []MapPoint `gorm:"foreignKey:PlanID" json:"points,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MapPoint struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PlanID    uint `gorm:"index;not null" json:"plan_id"`
	POITypeID uint `gorm:"column:poi_type_id;index;not null" json:"poi_type_id"`

	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `gorm:"size:150" json:"label"`

	POIType POIType `gorm:"foreignKey:POITypeID" json:"poi_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
