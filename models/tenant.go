package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tenant is one hotel instance. The Slug is the subdomain key used by the
// tenant resolver middleware; every content row references a tenant through
// its HotelID column.
type Tenant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Slug        string `gorm:"uniqueIndex;size:100" json:"slug"`
	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	CheckInTime  string `gorm:"size:10" json:"check_in_time"`
	CheckOutTime string `gorm:"size:10" json:"check_out_time"`

	// Theme holds appearance settings (logo URL, color tokens) managed from
	// the appearance tab of the hotel settings screen.
	Theme datatypes.JSON `gorm:"column:theme" json:"theme,omitempty"`

	// No column default: gorm skips zero-value bools on struct creates,
	// which would silently resurrect inactive rows. Create paths set it.
	Active bool `json:"active"`

	CarouselImages []TenantImage `gorm:"foreignKey:HotelID" json:"carousel_images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string {
	return "hotels"
}
