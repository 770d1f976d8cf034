package models

import "time"

// Schedule is a child of Entertainment. Weekly recurring slots carry a
// Weekday (0=Sunday..6=Saturday); dated show slots carry a Date and an
// optional audience tag. Schedules have no hotel id of their own; tenancy
// is enforced through the parent entertainment on every mutation.
type Schedule struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EntertainmentID uint `gorm:"index;not null" json:"entertainment_id"`

	Weekday *int       `gorm:"column:weekday" json:"weekday,omitempty"`
	Date    *time.Time `gorm:"column:date" json:"date,omitempty"`

	StartTime   string `gorm:"size:10" json:"start_time"`
	DurationMin int    `gorm:"column:duration_min" json:"duration_min"`
	Audience    string `gorm:"size:50" json:"audience,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsWeekly reports whether the slot is a weekly recurring one rather than a
// dated show slot.
func (s Schedule) IsWeekly() bool {
	return s.Weekday != nil
}
