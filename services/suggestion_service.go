package services

import (
	"sort"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type SuggestionService struct {
	db   *gorm.DB
	repo *ScopedRepo[models.Suggestion]
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{
		db:   db,
		repo: NewScopedRepo[models.Suggestion](db),
	}
}

func (s *SuggestionService) List(hotelID uint) ([]models.Suggestion, error) {
	return s.repo.List(hotelID, "Category", "Images.Image")
}

func (s *SuggestionService) Get(hotelID, id uint) (*models.Suggestion, error) {
	return s.repo.Get(hotelID, id, "Category", "Images.Image")
}

// normalizeLocation enforces the address rule: internal suggestions are
// inside the hotel and never carry an address.
func normalizeLocation(locationType, address string) (string, string) {
	if locationType != models.LocationTypeExternal {
		return models.LocationTypeInternal, ""
	}
	return models.LocationTypeExternal, address
}

func (s *SuggestionService) Create(sug *models.Suggestion) error {
	sug.LocationType, sug.Address = normalizeLocation(sug.LocationType, sug.Address)
	return s.repo.Create(sug)
}

// Update applies the address rule against the effective location type: the
// one in the payload, or the row's current one when the payload touches only
// the address.
func (s *SuggestionService) Update(hotelID, id uint, fields map[string]interface{}) error {
	_, hasAddr := fields["address"]
	lt, hasType := fields["location_type"].(string)
	if hasType || hasAddr {
		if !hasType {
			current, err := s.repo.Get(hotelID, id)
			if err != nil {
				return err
			}
			lt = current.LocationType
		}
		addr, _ := fields["address"].(string)
		fields["location_type"], fields["address"] = normalizeLocation(lt, addr)
	}
	return s.repo.Update(hotelID, id, fields)
}

// Delete removes the suggestion and its image links in one transaction.
func (s *SuggestionService) Delete(hotelID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&models.Suggestion{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("suggestion_id = ?", id).Delete(&models.SuggestionImage{}).Error
	})
}

// UncategorizedBucket is the name used for suggestions without a category.
const UncategorizedBucket = "uncategorized"

// SuggestionView is a guest-facing suggestion with its hero image resolved.
type SuggestionView struct {
	models.Suggestion
	ImageURL string `json:"image_url"`
}

// GroupSuggestionsByCategory buckets suggestions by category name. Nil
// categories land in the uncategorized bucket; buckets are sorted by the
// category's sort order, entries alphabetically by title.
func GroupSuggestionsByCategory(suggestions []models.Suggestion) map[string][]SuggestionView {
	grouped := make(map[string][]SuggestionView)
	for _, sug := range suggestions {
		bucket := UncategorizedBucket
		if sug.Category != nil && sug.Category.Name != "" {
			bucket = sug.Category.Name
		}
		grouped[bucket] = append(grouped[bucket], SuggestionView{
			Suggestion: sug,
			ImageURL:   PrincipalSuggestionImage(sug.Images),
		})
	}
	for bucket := range grouped {
		views := grouped[bucket]
		sort.SliceStable(views, func(i, j int) bool { return views[i].Title < views[j].Title })
		grouped[bucket] = views
	}
	return grouped
}

// PrincipalSuggestionImage picks the hero image URL: principal, else first
// by link id, else empty.
func PrincipalSuggestionImage(links []models.SuggestionImage) string {
	if len(links) == 0 {
		return ""
	}
	first := links[0]
	for _, link := range links {
		if link.IsPrincipal {
			return link.Image.URL
		}
		if link.ID < first.ID {
			first = link
		}
	}
	return first.Image.URL
}
