package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"guest-companion-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Image owner kinds. Exactly one owner reference accompanies each upload.
const (
	OwnerEntertainment = "entertainment"
	OwnerFoodSpot      = "food_spot"
	OwnerSuggestion    = "suggestion"
	OwnerCarousel      = "carousel"
)

var ErrUnknownOwner = errors.New("unknown image owner kind")

type ImageService struct {
	db       *gorm.DB
	uploader Uploader
	log      *zap.Logger
}

func NewImageService(db *gorm.DB, uploader Uploader, log *zap.Logger) *ImageService {
	return &ImageService{db: db, uploader: uploader, log: log}
}

// altFromFilename derives a default alt text from the uploaded file name.
func altFromFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.TrimSpace(base)
}

// verifyOwner checks that the target row exists under the acting tenant
// before anything is uploaded or written.
func (s *ImageService) verifyOwner(hotelID uint, owner string, ownerID uint) error {
	var (
		count int64
		err   error
	)
	switch owner {
	case OwnerEntertainment:
		err = s.db.Model(&models.Entertainment{}).
			Where("id = ? AND hotel_id = ?", ownerID, hotelID).Count(&count).Error
	case OwnerFoodSpot:
		err = s.db.Model(&models.FoodSpot{}).
			Where("id = ? AND hotel_id = ?", ownerID, hotelID).Count(&count).Error
	case OwnerSuggestion:
		err = s.db.Model(&models.Suggestion{}).
			Where("id = ? AND hotel_id = ?", ownerID, hotelID).Count(&count).Error
	case OwnerCarousel:
		err = s.db.Model(&models.Tenant{}).
			Where("id = ?", hotelID).Count(&count).Error
	default:
		return ErrUnknownOwner
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Attach uploads the file to the media host and persists the image row plus
// its owner link inside one transaction. A failed remote upload aborts
// before any row is written; a failed insert leaves no dangling link.
func (s *ImageService) Attach(ctx context.Context, hotelID uint, owner string, ownerID uint, filename string, file io.Reader) (*models.Image, error) {
	if err := s.verifyOwner(hotelID, owner, ownerID); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, filename, file)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	image := models.Image{
		HotelID: hotelID,
		URL:     url,
		Alt:     altFromFilename(filename),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
		switch owner {
		case OwnerEntertainment:
			return tx.Create(&models.EntertainmentImage{EntertainmentID: ownerID, ImageID: image.ID}).Error
		case OwnerFoodSpot:
			return tx.Create(&models.FoodSpotImage{FoodSpotID: ownerID, ImageID: image.ID}).Error
		case OwnerSuggestion:
			return tx.Create(&models.SuggestionImage{SuggestionID: ownerID, ImageID: image.ID}).Error
		case OwnerCarousel:
			return tx.Create(&models.TenantImage{HotelID: hotelID, ImageID: image.ID}).Error
		default:
			return ErrUnknownOwner
		}
	})
	if err != nil {
		// The remote file is now orphaned; the local rows are consistent.
		s.log.Warn("image link insert failed after upload",
			zap.String("owner", owner), zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return &image, nil
}

// SetPrincipal flips the principal flag to the given image in one atomic
// swap: clear every sibling link, set the target. At most one principal per
// owner holds by construction.
func (s *ImageService) SetPrincipal(hotelID uint, owner string, ownerID, imageID uint) error {
	if err := s.verifyOwner(hotelID, owner, ownerID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var (
			clear *gorm.DB
			set   *gorm.DB
		)
		switch owner {
		case OwnerEntertainment:
			clear = tx.Model(&models.EntertainmentImage{}).
				Where("entertainment_id = ?", ownerID).
				Update("is_principal", false)
			set = tx.Model(&models.EntertainmentImage{}).
				Where("entertainment_id = ? AND image_id = ?", ownerID, imageID).
				Update("is_principal", true)
		case OwnerFoodSpot:
			clear = tx.Model(&models.FoodSpotImage{}).
				Where("food_spot_id = ?", ownerID).
				Update("is_principal", false)
			set = tx.Model(&models.FoodSpotImage{}).
				Where("food_spot_id = ? AND image_id = ?", ownerID, imageID).
				Update("is_principal", true)
		case OwnerSuggestion:
			clear = tx.Model(&models.SuggestionImage{}).
				Where("suggestion_id = ?", ownerID).
				Update("is_principal", false)
			set = tx.Model(&models.SuggestionImage{}).
				Where("suggestion_id = ? AND image_id = ?", ownerID, imageID).
				Update("is_principal", true)
		case OwnerCarousel:
			clear = tx.Model(&models.TenantImage{}).
				Where("hotel_id = ?", hotelID).
				Update("is_principal", false)
			set = tx.Model(&models.TenantImage{}).
				Where("hotel_id = ? AND image_id = ?", hotelID, imageID).
				Update("is_principal", true)
		default:
			return ErrUnknownOwner
		}
		if clear.Error != nil {
			return clear.Error
		}
		if set.Error != nil {
			return set.Error
		}
		if set.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes the image row and every link pointing at it in one
// transaction. The remote file stays on the media host.
func (s *ImageService) Delete(hotelID, imageID uint) error {
	var image models.Image
	err := s.db.Where("id = ? AND hotel_id = ?", imageID, hotelID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", imageID).Delete(&models.EntertainmentImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&models.FoodSpotImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&models.SuggestionImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&models.TenantImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Image{}, imageID).Error
	})
}
