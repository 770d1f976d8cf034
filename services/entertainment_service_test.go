package services

import (
	"testing"
	"time"

	"guest-companion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntertainmentTenantIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntertainmentService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	palma := createTenant(t, db, "palma", "Hotel Palma")

	// Same title under both tenants; each hotel runs its own aquagym.
	require.NoError(t, svc.Create(&models.Entertainment{HotelID: riviera.ID, Title: "Aquagym", IsDaily: true}))
	require.NoError(t, svc.Create(&models.Entertainment{HotelID: palma.ID, Title: "Aquagym", IsDaily: true}))
	require.NoError(t, svc.Create(&models.Entertainment{HotelID: palma.ID, Title: "Magic Night", IsNightShow: true}))

	rivieraRows, err := svc.List(riviera.ID)
	require.NoError(t, err)
	assert.Len(t, rivieraRows, 1)
	assert.Equal(t, riviera.ID, rivieraRows[0].HotelID)

	palmaRows, err := svc.List(palma.ID)
	require.NoError(t, err)
	assert.Len(t, palmaRows, 2)

	// A cross-tenant id behaves exactly like a missing one.
	_, err = svc.Get(riviera.ID, palmaRows[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Update(riviera.ID, palmaRows[0].ID, map[string]interface{}{"title": "Hijacked"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(riviera.ID, palmaRows[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntertainmentUpdateStripsProtectedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntertainmentService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	palma := createTenant(t, db, "palma", "Hotel Palma")

	ent := &models.Entertainment{HotelID: riviera.ID, Title: "Yoga", IsDaily: true}
	require.NoError(t, svc.Create(ent))

	err := svc.Update(riviera.ID, ent.ID, map[string]interface{}{
		"title":    "Sunrise Yoga",
		"hotel_id": palma.ID,
	})
	require.NoError(t, err)

	got, err := svc.Get(riviera.ID, ent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Yoga", got.Title)
	assert.Equal(t, riviera.ID, got.HotelID)
}

func TestEntertainmentUpdateWithoutFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntertainmentService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	ent := &models.Entertainment{HotelID: riviera.ID, Title: "Yoga", IsDaily: true}
	require.NoError(t, svc.Create(ent))

	// The row exists, so a payload with nothing writable left must not
	// surface as a missing record.
	err := svc.Update(riviera.ID, ent.ID, map[string]interface{}{"hotel_id": 99})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	err = svc.Update(riviera.ID, ent.ID, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestEntertainmentDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntertainmentService(db)

	riviera := createTenant(t, db, "riviera", "Hotel Riviera")
	ent := &models.Entertainment{HotelID: riviera.ID, Title: "Aquagym", IsDaily: true}
	require.NoError(t, svc.Create(ent))
	require.NoError(t, db.Create(&models.Schedule{EntertainmentID: ent.ID, Weekday: intPtr(1), StartTime: "10:00"}).Error)
	img := models.Image{HotelID: riviera.ID, URL: "https://cdn.example/aquagym.jpg"}
	require.NoError(t, db.Create(&img).Error)
	require.NoError(t, db.Create(&models.EntertainmentImage{EntertainmentID: ent.ID, ImageID: img.ID}).Error)

	require.NoError(t, svc.Delete(riviera.ID, ent.ID))

	var schedules, links int64
	require.NoError(t, db.Model(&models.Schedule{}).Where("entertainment_id = ?", ent.ID).Count(&schedules).Error)
	require.NoError(t, db.Model(&models.EntertainmentImage{}).Where("entertainment_id = ?", ent.ID).Count(&links).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, links)
}

func TestGroupActivitiesByWeekday(t *testing.T) {
	aquagym := models.Entertainment{ID: 1, Title: "Aquagym", Schedules: []models.Schedule{
		{Weekday: intPtr(1), StartTime: "10:00", DurationMin: 45},
		{Weekday: intPtr(3), StartTime: "10:00", DurationMin: 45},
	}}
	yoga := models.Entertainment{ID: 2, Title: "Yoga", Schedules: []models.Schedule{
		{Weekday: intPtr(1), StartTime: "08:30", DurationMin: 60},
	}}
	darts := models.Entertainment{ID: 3, Title: "Darts", Schedules: nil}

	program := GroupActivitiesByWeekday([]models.Entertainment{aquagym, yoga, darts})

	monday := program.Days[time.Monday]
	require.Len(t, monday, 2)
	assert.Equal(t, "Yoga", monday[0].Entertainment.Title)
	assert.Equal(t, "Aquagym", monday[1].Entertainment.Title)
	assert.Len(t, program.Days[time.Wednesday], 1)

	require.Len(t, program.Unscheduled, 1)
	assert.Equal(t, "Darts", program.Unscheduled[0].Title)
}

func TestGroupActivitiesSortsByTitleOnTie(t *testing.T) {
	a := models.Entertainment{ID: 1, Title: "Zumba", Schedules: []models.Schedule{{Weekday: intPtr(5), StartTime: "18:00"}}}
	b := models.Entertainment{ID: 2, Title: "Aerobics", Schedules: []models.Schedule{{Weekday: intPtr(5), StartTime: "18:00"}}}

	program := GroupActivitiesByWeekday([]models.Entertainment{a, b})

	friday := program.Days[time.Friday]
	require.Len(t, friday, 2)
	assert.Equal(t, "Aerobics", friday[0].Entertainment.Title)
	assert.Equal(t, "Zumba", friday[1].Entertainment.Title)
}

func TestBuildShowBoard(t *testing.T) {
	now := time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	magic := models.Entertainment{ID: 1, Title: "Magic Night", Schedules: []models.Schedule{
		{Date: &yesterday, StartTime: "21:00"},
		{Date: &nextWeek, StartTime: "21:00"},
	}}
	flamenco := models.Entertainment{ID: 2, Title: "Flamenco", Schedules: []models.Schedule{
		{Date: &tomorrow, StartTime: "22:00", Audience: "adults"},
	}}

	board := BuildShowBoard([]models.Entertainment{magic, flamenco}, now)

	require.Len(t, board.Upcoming, 2)
	assert.Equal(t, "Flamenco", board.Upcoming[0].Entertainment.Title)
	assert.Equal(t, "adults", board.Upcoming[0].Audience)
	assert.Equal(t, "Magic Night", board.Upcoming[1].Entertainment.Title)

	require.Len(t, board.Past, 1)
	assert.Equal(t, "Magic Night", board.Past[0].Entertainment.Title)
}

func TestBuildShowBoardTodayIsUpcoming(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	show := models.Entertainment{ID: 1, Title: "Late Show", Schedules: []models.Schedule{
		{Date: &today, StartTime: "21:00"},
	}}

	t.Run("utc evening", func(t *testing.T) {
		now := time.Date(2026, 6, 15, 23, 30, 0, 0, time.UTC)
		board := BuildShowBoard([]models.Entertainment{show}, now)
		assert.Len(t, board.Upcoming, 1)
		assert.Empty(t, board.Past)
	})

	// In a western zone the UTC calendar is already on the next day during
	// the local evening; the split must follow the local date.
	t.Run("western zone evening", func(t *testing.T) {
		cancun := time.FixedZone("UTC-6", -6*3600)
		now := time.Date(2026, 6, 15, 20, 0, 0, 0, cancun)
		board := BuildShowBoard([]models.Entertainment{show}, now)
		assert.Len(t, board.Upcoming, 1)
		assert.Empty(t, board.Past)
	})
}

func TestPrincipalEntertainmentImage(t *testing.T) {
	principal := models.EntertainmentImage{ID: 3, IsPrincipal: true, Image: models.Image{URL: "https://cdn.example/hero.jpg"}}
	older := models.EntertainmentImage{ID: 1, Image: models.Image{URL: "https://cdn.example/first.jpg"}}
	newer := models.EntertainmentImage{ID: 2, Image: models.Image{URL: "https://cdn.example/second.jpg"}}

	assert.Equal(t, "https://cdn.example/hero.jpg",
		PrincipalEntertainmentImage([]models.EntertainmentImage{newer, principal, older}))
	assert.Equal(t, "https://cdn.example/first.jpg",
		PrincipalEntertainmentImage([]models.EntertainmentImage{newer, older}))
	assert.Empty(t, PrincipalEntertainmentImage(nil))
}
