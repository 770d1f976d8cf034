package services

import (
	"sort"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type ContactService struct {
	repo *ScopedRepo[models.Contact]
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{repo: NewScopedRepo[models.Contact](db)}
}

// List returns the tenant's contacts sorted by sort order then name.
func (s *ContactService) List(hotelID uint) ([]models.Contact, error) {
	contacts, err := s.repo.List(hotelID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		if contacts[i].SortOrder != contacts[j].SortOrder {
			return contacts[i].SortOrder < contacts[j].SortOrder
		}
		return contacts[i].Name < contacts[j].Name
	})
	return contacts, nil
}

func (s *ContactService) Create(contact *models.Contact) error {
	return s.repo.Create(contact)
}

func (s *ContactService) Update(hotelID, id uint, fields map[string]interface{}) error {
	return s.repo.Update(hotelID, id, fields)
}

func (s *ContactService) Delete(hotelID, id uint) error {
	return s.repo.Delete(hotelID, id)
}
