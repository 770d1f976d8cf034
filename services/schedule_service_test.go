package services

import (
	"testing"
	"time"

	"guest-companion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAddValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	ent := models.Entertainment{HotelID: riviera.ID, Title: "Aquagym", IsDaily: true}
	require.NoError(t, db.Create(&ent).Error)

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		sched models.Schedule
		want  error
	}{
		{"neither weekday nor date", models.Schedule{EntertainmentID: ent.ID}, ErrInvalidSchedule},
		{"both weekday and date", models.Schedule{EntertainmentID: ent.ID, Weekday: intPtr(1), Date: &date}, ErrInvalidSchedule},
		{"weekday out of range", models.Schedule{EntertainmentID: ent.ID, Weekday: intPtr(7)}, ErrInvalidSchedule},
		{"weekly ok", models.Schedule{EntertainmentID: ent.ID, Weekday: intPtr(0), StartTime: "10:00"}, nil},
		{"dated ok", models.Schedule{EntertainmentID: ent.ID, Date: &date, StartTime: "21:00"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Add(riviera.ID, &tc.sched)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleAddRejectsForeignParent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	palma := createTenant(t, db, "palma", "Hotel Palma")
	foreign := models.Entertainment{HotelID: palma.ID, Title: "Aquagym"}
	require.NoError(t, db.Create(&foreign).Error)

	err := svc.Add(riviera.ID, &models.Schedule{EntertainmentID: foreign.ID, Weekday: intPtr(2), StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleDeleteTenantGuard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	palma := createTenant(t, db, "palma", "Hotel Palma")
	ent := models.Entertainment{HotelID: palma.ID, Title: "Magic Night", IsNightShow: true}
	require.NoError(t, db.Create(&ent).Error)
	sched := models.Schedule{EntertainmentID: ent.ID, Weekday: intPtr(4), StartTime: "21:00"}
	require.NoError(t, db.Create(&sched).Error)

	// Guessing a foreign schedule id must not delete anything.
	assert.ErrorIs(t, svc.Delete(riviera.ID, sched.ID), ErrNotFound)
	require.NoError(t, svc.Delete(palma.ID, sched.ID))
}

func TestScheduleListRequiresOwnParent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	palma := createTenant(t, db, "palma", "Hotel Palma")
	ent := models.Entertainment{HotelID: palma.ID, Title: "Magic Night"}
	require.NoError(t, db.Create(&ent).Error)

	_, err := svc.ListForEntertainment(riviera.ID, ent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := svc.ListForEntertainment(palma.ID, ent.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
