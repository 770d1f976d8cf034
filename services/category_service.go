package services

import (
	"sort"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	repo *ScopedRepo[models.Category]
	db   *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		repo: NewScopedRepo[models.Category](db),
		db:   db,
	}
}

// List returns the tenant's categories, optionally restricted to one kind,
// sorted by explicit sort order then name.
func (s *CategoryService) List(hotelID uint, kind string) ([]models.Category, error) {
	q := s.db.Where("hotel_id = ?", hotelID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *CategoryService) Create(cat *models.Category) error {
	if cat.Kind == "" {
		cat.Kind = models.CategoryKindActivity
	}
	return s.repo.Create(cat)
}

func (s *CategoryService) Update(hotelID, id uint, fields map[string]interface{}) error {
	return s.repo.Update(hotelID, id, fields)
}

func (s *CategoryService) Delete(hotelID, id uint) error {
	return s.repo.Delete(hotelID, id)
}
