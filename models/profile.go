package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is a back-office user. HotelID is nil for super admins, which is
// how the session resolver decides between single-tenant and multi-tenant
// mode.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"`

	RoleID  uint  `gorm:"index" json:"role_id"`
	HotelID *uint `gorm:"index" json:"hotel_id,omitempty"`

	Role  Role    `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Hotel *Tenant `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
