package services

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist under the acting
// tenant's scope. Cross-tenant ids are indistinguishable from missing ones.
var ErrNotFound = errors.New("record not found")

// ErrEmptyUpdate is returned when an update carries no writable fields.
// Gorm reports zero affected rows for such updates, which must not be
// mistaken for a missing record.
var ErrEmptyUpdate = errors.New("no fields to update")

// ScopedRepo is the tenant-scoped CRUD core shared by the content services.
// Every operation carries a hotel_id equality predicate, including updates
// and deletes of rows that were already fetched under that scope.
type ScopedRepo[T any] struct {
	db *gorm.DB
}

func NewScopedRepo[T any](db *gorm.DB) *ScopedRepo[T] {
	return &ScopedRepo[T]{db: db}
}

func (r *ScopedRepo[T]) List(hotelID uint, preloads ...string) ([]T, error) {
	q := r.db.Where("hotel_id = ?", hotelID)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var rows []T
	err := q.Find(&rows).Error
	return rows, err
}

func (r *ScopedRepo[T]) Get(hotelID, id uint, preloads ...string) (*T, error) {
	q := r.db.Where("hotel_id = ?", hotelID)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var row T
	if err := q.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ScopedRepo[T]) Create(row *T) error {
	return r.db.Create(row).Error
}

// Update applies the given fields to the row matching id under the tenant's
// scope. Protected columns are stripped before the update.
func (r *ScopedRepo[T]) Update(hotelID, id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "hotel_id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}

	var model T
	res := r.db.Model(&model).
		Where("id = ? AND hotel_id = ?", id, hotelID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScopedRepo[T]) Delete(hotelID, id uint) error {
	var model T
	res := r.db.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
