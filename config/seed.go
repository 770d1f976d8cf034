package config

import (
	"fmt"

	"guest-companion-backend/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDatabase ensures the roles, the default tenant and the initial super
// admin exist. Safe to run on every start.
func SeedDatabase(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	roles := []models.Role{
		{Name: models.RoleSuperAdmin, Description: "Operates across all hotels"},
		{Name: models.RoleManager, Description: "Manages a single hotel's content"},
		{Name: models.RoleStaff, Description: "Edits content for a single hotel"},
	}
	for _, role := range roles {
		var existing models.Role
		err := db.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("lookup role %s: %w", role.Name, err)
		}
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("create role %s: %w", role.Name, err)
		}
		log.Info("role seeded", zap.String("role", role.Name))
	}

	tenant, err := ensureDefaultTenant(db, cfg)
	if err != nil {
		return err
	}

	if err := ensureSuperAdmin(db, cfg, log); err != nil {
		return err
	}

	return ensureStarterPOITypes(db, tenant.ID, log)
}

func ensureDefaultTenant(db *gorm.DB, cfg *Config) (*models.Tenant, error) {
	slug := cfg.Tenancy.DefaultTenantSlug

	var tenant models.Tenant
	err := db.Where("slug = ?", slug).First(&tenant).Error
	if err == nil {
		return &tenant, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("lookup default tenant: %w", err)
	}

	tenant = models.Tenant{
		Slug:         slug,
		Name:         cfg.Seed.TenantName,
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		Active:       true,
	}
	if err := db.Create(&tenant).Error; err != nil {
		return nil, fmt.Errorf("create default tenant: %w", err)
	}
	return &tenant, nil
}

func ensureSuperAdmin(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	var superRole models.Role
	if err := db.Where("name = ?", models.RoleSuperAdmin).First(&superRole).Error; err != nil {
		return fmt.Errorf("lookup super admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	profile := models.Profile{
		FullName: "Super Admin",
		Email:    cfg.Seed.AdminEmail,
		Password: string(hash),
		RoleID:   superRole.ID,
		// HotelID left nil: super admins pick a tenant explicitly.
	}
	if err := db.Create(&profile).Error; err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}
	log.Info("super admin seeded", zap.String("email", profile.Email))
	return nil
}

func ensureStarterPOITypes(db *gorm.DB, hotelID uint, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.POIType{}).Where("hotel_id = ?", hotelID).Count(&count).Error; err != nil {
		return fmt.Errorf("count poi types: %w", err)
	}
	if count > 0 {
		return nil
	}

	starters := []models.POIType{
		{HotelID: hotelID, Key: "pool", Name: "Pool", Icon: "pool", Color: "#1e88e5", SortOrder: 1, Active: true},
		{HotelID: hotelID, Key: "restaurant", Name: "Restaurant", Icon: "restaurant", Color: "#e53935", SortOrder: 2, Active: true},
		{HotelID: hotelID, Key: "reception", Name: "Reception", Icon: "concierge", Color: "#43a047", SortOrder: 3, Active: true},
		{HotelID: hotelID, Key: "elevator", Name: "Elevator", Icon: "elevator", Color: "#757575", SortOrder: 4, Active: true},
	}
	if err := db.Create(&starters).Error; err != nil {
		return fmt.Errorf("seed poi types: %w", err)
	}
	log.Info("starter poi types seeded", zap.Uint("hotel_id", hotelID))
	return nil
}
