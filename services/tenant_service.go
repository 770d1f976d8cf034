package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrInvalidSlug   = errors.New("slug must be lowercase letters, digits and hyphens")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type TenantService struct {
	db          *gorm.DB
	defaultSlug string
}

func NewTenantService(db *gorm.DB, defaultSlug string) *TenantService {
	return &TenantService{db: db, defaultSlug: defaultSlug}
}

func (s *TenantService) GetBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (s *TenantService) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := s.db.Order("name asc").Find(&tenants).Error
	return tenants, err
}

func (s *TenantService) Create(tenant *models.Tenant) error {
	tenant.Slug = strings.ToLower(strings.TrimSpace(tenant.Slug))
	if !slugPattern.MatchString(tenant.Slug) {
		return ErrInvalidSlug
	}
	if err := s.db.Create(tenant).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Update applies the given fields to one tenant row. The slug is immutable
// once issued: it is the subdomain key guests are already using.
func (s *TenantService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "slug")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}

	res := s.db.Model(&models.Tenant{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveGuestHotelID turns the tenant header set by the resolver
// middleware into a hotel id, falling back to the configured default tenant
// when no header is present.
func (s *TenantService) ResolveGuestHotelID(headerValue string) (uint, error) {
	if headerValue != "" {
		id, err := strconv.ParseUint(headerValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed tenant header: %w", err)
		}
		return uint(id), nil
	}

	tenant, err := s.GetBySlug(s.defaultSlug)
	if err != nil {
		return 0, fmt.Errorf("default tenant %q: %w", s.defaultSlug, err)
	}
	return tenant.ID, nil
}
