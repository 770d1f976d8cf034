package services

import (
	"sort"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type FoodSpotService struct {
	db   *gorm.DB
	repo *ScopedRepo[models.FoodSpot]
}

func NewFoodSpotService(db *gorm.DB) *FoodSpotService {
	return &FoodSpotService{
		db:   db,
		repo: NewScopedRepo[models.FoodSpot](db),
	}
}

func (s *FoodSpotService) List(hotelID uint) ([]models.FoodSpot, error) {
	return s.repo.List(hotelID, "Location", "Images.Image")
}

func (s *FoodSpotService) Get(hotelID, id uint) (*models.FoodSpot, error) {
	return s.repo.Get(hotelID, id, "Location", "Images.Image")
}

func (s *FoodSpotService) Create(spot *models.FoodSpot) error {
	if spot.Kind == "" {
		spot.Kind = models.FoodSpotKindRestaurant
	}
	return s.repo.Create(spot)
}

func (s *FoodSpotService) Update(hotelID, id uint, fields map[string]interface{}) error {
	return s.repo.Update(hotelID, id, fields)
}

// Delete removes the spot and its image links in one transaction.
func (s *FoodSpotService) Delete(hotelID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&models.FoodSpot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("food_spot_id = ?", id).Delete(&models.FoodSpotImage{}).Error
	})
}

// FoodSpotView is a guest-facing spot with its hero image resolved.
type FoodSpotView struct {
	models.FoodSpot
	ImageURL string `json:"image_url"`
}

// GroupFoodSpotsByKind buckets spots into restaurants and bars, each sorted
// alphabetically.
func GroupFoodSpotsByKind(spots []models.FoodSpot) map[string][]FoodSpotView {
	grouped := make(map[string][]FoodSpotView)
	for _, spot := range spots {
		kind := spot.Kind
		if kind == "" {
			kind = models.FoodSpotKindRestaurant
		}
		grouped[kind] = append(grouped[kind], FoodSpotView{
			FoodSpot: spot,
			ImageURL: PrincipalFoodSpotImage(spot.Images),
		})
	}
	for kind := range grouped {
		views := grouped[kind]
		sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
		grouped[kind] = views
	}
	return grouped
}

// PrincipalFoodSpotImage picks the hero image URL with the same fallback
// rule as entertainments: principal, else first by link id, else empty.
func PrincipalFoodSpotImage(links []models.FoodSpotImage) string {
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
