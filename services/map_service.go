package services

import (
	"errors"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidCoordinate = errors.New("map point coordinates must be within 0..1")

// MapService covers floor plans, their map points, and the POI type
// catalog. Map points have no hotel id of their own; tenancy flows through
// the owning plan, mirroring the schedule rule.
type MapService struct {
	db       *gorm.DB
	plans    *ScopedRepo[models.Plan]
	poiTypes *ScopedRepo[models.POIType]
}

func NewMapService(db *gorm.DB) *MapService {
	return &MapService{
		db:       db,
		plans:    NewScopedRepo[models.Plan](db),
		poiTypes: NewScopedRepo[models.POIType](db),
	}
}

// ListPlans returns the tenant's floor plans with points and their POI
// types, ordered by floor then sort order.
func (s *MapService) ListPlans(hotelID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.Where("hotel_id = ?", hotelID).
		Preload("Points.POIType").
		Order("floor asc, sort_order asc").
		Find(&plans).Error
	return plans, err
}

func (s *MapService) CreatePlan(plan *models.Plan) error {
	return s.plans.Create(plan)
}

func (s *MapService) UpdatePlan(hotelID, id uint, fields map[string]interface{}) error {
	return s.plans.Update(hotelID, id, fields)
}

// DeletePlan removes the plan and its points in one transaction.
func (s *MapService) DeletePlan(hotelID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&models.Plan{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("plan_id = ?", id).Delete(&models.MapPoint{}).Error
	})
}

// AddPoint inserts a map point after re-verifying the target plan belongs
// to the acting tenant.
func (s *MapService) AddPoint(hotelID uint, point *models.MapPoint) error {
	if point.X < 0 || point.X > 1 || point.Y < 0 || point.Y > 1 {
		return ErrInvalidCoordinate
	}

	var plan models.Plan
	err := s.db.Where("id = ? AND hotel_id = ?", point.PlanID, hotelID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Create(point).Error
}

// UpdatePoint applies the given fields to a point, constrained to plans
// inside the tenant's own plan id set.
func (s *MapService) UpdatePoint(hotelID, pointID uint, fields map[string]interface{}) error {
	if x, ok := fields["x"].(float64); ok && (x < 0 || x > 1) {
		return ErrInvalidCoordinate
	}
	if y, ok := fields["y"].(float64); ok && (y < 0 || y > 1) {
		return ErrInvalidCoordinate
	}
	delete(fields, "id")
	delete(fields, "plan_id")
	delete(fields, "created_at")
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}

	ownPlans := s.db.Model(&models.Plan{}).
		Select("id").
		Where("hotel_id = ?", hotelID)

	res := s.db.Model(&models.MapPoint{}).
		Where("id = ? AND plan_id IN (?)", pointID, ownPlans).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePoint removes a point, constrained to plans inside the tenant's own
// plan id set.
func (s *MapService) DeletePoint(hotelID, pointID uint) error {
	ownPlans := s.db.Model(&models.Plan{}).
		Select("id").
		Where("hotel_id = ?", hotelID)

	res := s.db.
		Where("id = ? AND plan_id IN (?)", pointID, ownPlans).
		Delete(&models.MapPoint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPOITypes returns the tenant's POI types; activeOnly trims the catalog
// to what the guest map shows.
func (s *MapService) ListPOITypes(hotelID uint, activeOnly bool) ([]models.POIType, error) {
	q := s.db.Where("hotel_id = ?", hotelID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var types []models.POIType
	err := q.Order("sort_order asc, name asc").Find(&types).Error
	return types, err
}

func (s *MapService) CreatePOIType(t *models.POIType) error {
	return s.poiTypes.Create(t)
}

func (s *MapService) UpdatePOIType(hotelID, id uint, fields map[string]interface{}) error {
	return s.poiTypes.Update(hotelID, id, fields)
}

func (s *MapService) DeletePOIType(hotelID, id uint) error {
	return s.poiTypes.Delete(hotelID, id)
}
