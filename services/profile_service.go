package services

import (
	"errors"
	"strings"

	"guest-companion-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Authenticate checks the email/password pair and returns the profile with
// its role preloaded.
func (s *ProfileService) Authenticate(email, password string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.Profile
	err := s.db.Preload("Role").Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

// GetByID returns a profile with role and hotel preloaded.
func (s *ProfileService) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Preload("Role").Preload("Hotel").First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ResolveTenant determines which tenant a caller implicitly acts on.
// Returns (nil, nil) for super admins, who operate in multi-tenant mode and
// must pick a tenant explicitly, and for profiles with no resolvable role or
// hotel. Lookup misses are valid states here, not errors.
func (s *ProfileService) ResolveTenant(profileID uint) (*models.Tenant, error) {
	var profile models.Profile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var role models.Role
	if err := s.db.First(&role, profile.RoleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if role.Name == models.RoleSuperAdmin {
		return nil, nil
	}
	if profile.HotelID == nil {
		return nil, nil
	}

	var tenant models.Tenant
	if err := s.db.First(&tenant, *profile.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

// RoleByID looks up a role row.
func (s *ProfileService) RoleByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// List returns all profiles for one hotel, or every profile when hotelID is
// nil (super-admin view).
func (s *ProfileService) List(hotelID *uint) ([]models.Profile, error) {
	q := s.db.Preload("Role").Preload("Hotel")
	if hotelID != nil {
		q = q.Where("hotel_id = ?", *hotelID)
	}
	var profiles []models.Profile
	err := q.Find(&profiles).Error
	return profiles, err
}

// Create hashes the password and stores a new staff profile.
func (s *ProfileService) Create(profile *models.Profile, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.Password = string(hash)
	return s.db.Create(profile).Error
}

func (s *ProfileService) Delete(id uint) error {
	res := s.db.Delete(&models.Profile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
