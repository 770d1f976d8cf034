package services

import (
	"errors"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidSchedule = errors.New("schedule needs exactly one of weekday or date")

// ScheduleService manages entertainment schedules. Schedules carry no hotel
// id of their own, so every mutation goes through the parent entertainment
// to keep tenant isolation intact against id guessing.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// Add inserts a schedule after re-verifying that the parent entertainment
// belongs to the acting tenant.
func (s *ScheduleService) Add(hotelID uint, sched *models.Schedule) error {
	if (sched.Weekday == nil) == (sched.Date == nil) {
		return ErrInvalidSchedule
	}
	if sched.Weekday != nil && (*sched.Weekday < 0 || *sched.Weekday > 6) {
		return ErrInvalidSchedule
	}

	var parent models.Entertainment
	err := s.db.Where("id = ? AND hotel_id = ?", sched.EntertainmentID, hotelID).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Create(sched).Error
}

// Delete removes a schedule, constrained to parents inside the tenant's own
// entertainment id set.
func (s *ScheduleService) Delete(hotelID, scheduleID uint) error {
	ownIDs := s.db.Model(&models.Entertainment{}).
		Select("id").
		Where("hotel_id = ?", hotelID)

	res := s.db.
		Where("id = ? AND entertainment_id IN (?)", scheduleID, ownIDs).
		Delete(&models.Schedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForEntertainment returns a parent's schedules under tenant scope.
func (s *ScheduleService) ListForEntertainment(hotelID, entertainmentID uint) ([]models.Schedule, error) {
	var parent models.Entertainment
	err := s.db.Where("id = ? AND hotel_id = ?", entertainmentID, hotelID).
		First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var schedules []models.Schedule
	err = s.db.Where("entertainment_id = ?", entertainmentID).
		Order("weekday asc, date asc, start_time asc").
		Find(&schedules).Error
	return schedules, err
}
