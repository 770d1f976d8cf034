package services

import (
	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type LocationService struct {
	repo *ScopedRepo[models.Location]
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{repo: NewScopedRepo[models.Location](db)}
}

func (s *LocationService) List(hotelID uint) ([]models.Location, error) {
	return s.repo.List(hotelID)
}

func (s *LocationService) Create(loc *models.Location) error {
	return s.repo.Create(loc)
}

func (s *LocationService) Update(hotelID, id uint, fields map[string]interface{}) error {
	return s.repo.Update(hotelID, id, fields)
}

func (s *LocationService) Delete(hotelID, id uint) error {
	return s.repo.Delete(hotelID, id)
}
