package services

import (
	"sort"
	"time"

	"guest-companion-backend/models"

	"gorm.io/gorm"
)

type EntertainmentService struct {
	db   *gorm.DB
	repo *ScopedRepo[models.Entertainment]
}

func NewEntertainmentService(db *gorm.DB) *EntertainmentService {
	return &EntertainmentService{
		db:   db,
		repo: NewScopedRepo[models.Entertainment](db),
	}
}

func (s *EntertainmentService) listKind(hotelID uint, flag string) ([]models.Entertainment, error) {
	var rows []models.Entertainment
	err := s.db.
		Where("hotel_id = ? AND "+flag+" = ?", hotelID, true).
		Preload("Category").
		Preload("Location").
		Preload("Schedules").
		Preload("Images.Image").
		Find(&rows).Error
	return rows, err
}

// ListDaily returns the tenant's daily activities with all joins loaded.
func (s *EntertainmentService) ListDaily(hotelID uint) ([]models.Entertainment, error) {
	return s.listKind(hotelID, "is_daily")
}

// ListShows returns the tenant's night shows with all joins loaded.
func (s *EntertainmentService) ListShows(hotelID uint) ([]models.Entertainment, error) {
	return s.listKind(hotelID, "is_night_show")
}

func (s *EntertainmentService) List(hotelID uint) ([]models.Entertainment, error) {
	return s.repo.List(hotelID, "Category", "Location", "Schedules", "Images.Image")
}

func (s *EntertainmentService) Get(hotelID, id uint) (*models.Entertainment, error) {
	return s.repo.Get(hotelID, id, "Category", "Location", "Schedules", "Images.Image")
}

func (s *EntertainmentService) Create(ent *models.Entertainment) error {
	return s.repo.Create(ent)
}

func (s *EntertainmentService) Update(hotelID, id uint, fields map[string]interface{}) error {
	return s.repo.Update(hotelID, id, fields)
}

// Delete removes the entity together with its schedules and image links in
// one transaction, so a failed step leaves nothing half-deleted.
func (s *EntertainmentService) Delete(hotelID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND hotel_id = ?", id, hotelID).Delete(&models.Entertainment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("entertainment_id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Where("entertainment_id = ?", id).Delete(&models.EntertainmentImage{}).Error
	})
}

// ActivitySlot is one scheduled occurrence of a daily activity on the guest
// program.
type ActivitySlot struct {
	Entertainment models.Entertainment `json:"entertainment"`
	StartTime     string               `json:"start_time"`
	DurationMin   int                  `json:"duration_min"`
	ImageURL      string               `json:"image_url"`
}

// DayProgram groups a tenant's daily activities by weekday. Entities with
// no weekly slot land in Unscheduled rather than being dropped.
type DayProgram struct {
	Days        map[time.Weekday][]ActivitySlot `json:"days"`
	Unscheduled []models.Entertainment          `json:"unscheduled"`
}

// GroupActivitiesByWeekday builds the weekly program: one bucket per
// weekday, slots sorted by start time then title.
func GroupActivitiesByWeekday(activities []models.Entertainment) DayProgram {
	program := DayProgram{Days: make(map[time.Weekday][]ActivitySlot)}

	for _, act := range activities {
		scheduled := false
		for _, sched := range act.Schedules {
			if !sched.IsWeekly() {
				continue
			}
			day := time.Weekday(*sched.Weekday)
			program.Days[day] = append(program.Days[day], ActivitySlot{
				Entertainment: act,
				StartTime:     sched.StartTime,
				DurationMin:   sched.DurationMin,
				ImageURL:      PrincipalEntertainmentImage(act.Images),
			})
			scheduled = true
		}
		if !scheduled {
			program.Unscheduled = append(program.Unscheduled, act)
		}
	}

	for day := range program.Days {
		slots := program.Days[day]
		sort.SliceStable(slots, func(i, j int) bool {
			if slots[i].StartTime != slots[j].StartTime {
				return slots[i].StartTime < slots[j].StartTime
			}
			return slots[i].Entertainment.Title < slots[j].Entertainment.Title
		})
		program.Days[day] = slots
	}
	return program
}

// ShowEvent is one dated performance of a night show.
type ShowEvent struct {
	Entertainment models.Entertainment `json:"entertainment"`
	Date          time.Time            `json:"date"`
	StartTime     string               `json:"start_time"`
	DurationMin   int                  `json:"duration_min"`
	Audience      string               `json:"audience,omitempty"`
	ImageURL      string               `json:"image_url"`
}

// ShowBoard splits dated show slots into upcoming and past around a
// reference time, each sorted chronologically.
type ShowBoard struct {
	Upcoming []ShowEvent `json:"upcoming"`
	Past     []ShowEvent `json:"past"`
}

// dayOf normalizes a timestamp to its calendar date, so shows dated "today"
// stay upcoming until midnight regardless of the server's time zone.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func BuildShowBoard(shows []models.Entertainment, now time.Time) ShowBoard {
	var board ShowBoard
	today := dayOf(now)

	for _, show := range shows {
		for _, sched := range show.Schedules {
			if sched.Date == nil {
				continue
			}
			event := ShowEvent{
				Entertainment: show,
				Date:          *sched.Date,
				StartTime:     sched.StartTime,
				DurationMin:   sched.DurationMin,
				Audience:      sched.Audience,
				ImageURL:      PrincipalEntertainmentImage(show.Images),
			}
			if dayOf(*sched.Date).Before(today) {
				board.Past = append(board.Past, event)
			} else {
				board.Upcoming = append(board.Upcoming, event)
			}
		}
	}

	byDate := func(events []ShowEvent) func(i, j int) bool {
		return func(i, j int) bool {
			if !events[i].Date.Equal(events[j].Date) {
				return events[i].Date.Before(events[j].Date)
			}
			return events[i].StartTime < events[j].StartTime
		}
	}
	sort.SliceStable(board.Upcoming, byDate(board.Upcoming))
	sort.SliceStable(board.Past, byDate(board.Past))
	return board
}

// PrincipalEntertainmentImage picks the hero image URL: the principal row,
// else the first link by id, else empty.
func PrincipalEntertainmentImage(links []models.EntertainmentImage) string {
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
