package models

import "time"

// Role names seeded at startup. A super admin profile carries no fixed
// tenant and must select one explicitly before any admin mutation.
const (
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
