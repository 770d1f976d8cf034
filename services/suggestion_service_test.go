package services

import (
	"testing"

	"guest-companion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionInternalAddressIsCleared(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	sug := models.Suggestion{
		HotelID:      riviera.ID,
		Title:        "Spa",
		LocationType: models.LocationTypeInternal,
		Address:      "should be dropped",
	}
	require.NoError(t, svc.Create(&sug))

	got, err := svc.Get(riviera.ID, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LocationTypeInternal, got.LocationType)
	assert.Empty(t, got.Address)
}

func TestSuggestionExternalKeepsAddress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	sug := models.Suggestion{
		HotelID:      riviera.ID,
		Title:        "Old Town Walk",
		LocationType: models.LocationTypeExternal,
		Address:      "Plaza Mayor 1",
	}
	require.NoError(t, svc.Create(&sug))

	got, err := svc.Get(riviera.ID, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plaza Mayor 1", got.Address)
}

func TestSuggestionUpdateSwitchToInternalClearsAddress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	sug := models.Suggestion{
		HotelID:      riviera.ID,
		Title:        "Tapas Tour",
		LocationType: models.LocationTypeExternal,
		Address:      "Calle Mayor 5",
	}
	require.NoError(t, svc.Create(&sug))

	err := svc.Update(riviera.ID, sug.ID, map[string]interface{}{
		"location_type": models.LocationTypeInternal,
	})
	require.NoError(t, err)

	got, err := svc.Get(riviera.ID, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LocationTypeInternal, got.LocationType)
	assert.Empty(t, got.Address)
}

func TestSuggestionAddressOnlyUpdateKeepsRule(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	internal := models.Suggestion{HotelID: riviera.ID, Title: "Spa", LocationType: models.LocationTypeInternal}
	require.NoError(t, svc.Create(&internal))
	external := models.Suggestion{
		HotelID:      riviera.ID,
		Title:        "Old Town Walk",
		LocationType: models.LocationTypeExternal,
		Address:      "Plaza Mayor 1",
	}
	require.NoError(t, svc.Create(&external))

	// An address-only payload cannot smuggle an address onto an internal
	// suggestion.
	require.NoError(t, svc.Update(riviera.ID, internal.ID, map[string]interface{}{
		"address": "Plaza Mayor 1",
	}))
	got, err := svc.Get(riviera.ID, internal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LocationTypeInternal, got.LocationType)
	assert.Empty(t, got.Address)

	// The same payload on an external suggestion is a plain address change.
	require.NoError(t, svc.Update(riviera.ID, external.ID, map[string]interface{}{
		"address": "Calle Mayor 5",
	}))
	got, err = svc.Get(riviera.ID, external.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calle Mayor 5", got.Address)
}

func TestSuggestionUnknownLocationTypeDefaultsToInternal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	sug := models.Suggestion{HotelID: riviera.ID, Title: "Gym", LocationType: "garbage", Address: "x"}
	require.NoError(t, svc.Create(&sug))

	got, err := svc.Get(riviera.ID, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LocationTypeInternal, got.LocationType)
	assert.Empty(t, got.Address)
}

func TestGroupSuggestionsByCategory(t *testing.T) {
	museums := &models.Category{Name: "Museums"}
	suggestions := []models.Suggestion{
		{Title: "Prado", Category: museums},
		{Title: "Archaeology Museum", Category: museums},
		{Title: "Rooftop Bar"},
	}

	grouped := GroupSuggestionsByCategory(suggestions)

	require.Len(t, grouped["Museums"], 2)
	assert.Equal(t, "Archaeology Museum", grouped["Museums"][0].Title)
	assert.Equal(t, "Prado", grouped["Museums"][1].Title)
	require.Len(t, grouped[UncategorizedBucket], 1)
	assert.Equal(t, "Rooftop Bar", grouped[UncategorizedBucket][0].Title)
}

func TestSuggestionDeleteRemovesImageLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSuggestionService(db)
	riviera := createTenant(t, db, "riviera", "Hotel Riviera")

	sug := models.Suggestion{HotelID: riviera.ID, Title: "Spa"}
	require.NoError(t, svc.Create(&sug))
	img := models.Image{HotelID: riviera.ID, URL: "https://cdn.example/spa.jpg"}
	require.NoError(t, db.Create(&img).Error)
	require.NoError(t, db.Create(&models.SuggestionImage{SuggestionID: sug.ID, ImageID: img.ID}).Error)

	require.NoError(t, svc.Delete(riviera.ID, sug.ID))

	var links int64
	require.NoError(t, db.Model(&models.SuggestionImage{}).Where("suggestion_id = ?", sug.ID).Count(&links).Error)
	assert.Zero(t, links)
}
