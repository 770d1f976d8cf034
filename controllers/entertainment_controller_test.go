package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"guest-companion-backend/models"
	"guest-companion-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListRequiresAuth(t *testing.T) {
	env := setupEnv(t)
	w, _ := env.do(t, http.MethodGet, "/api/admin/entertainments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperAdminMustSelectTenant(t *testing.T) {
	env := setupEnv(t)
	admin := env.createProfile(t, "root@example.com", "pw", models.RoleSuperAdmin, nil)
	token := env.tokenFor(t, admin, models.RoleSuperAdmin)

	w, body := env.do(t, http.MethodGet, "/api/admin/entertainments", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, utils.ErrCodeTenantMissing, body.Error.Code)

	// With an explicit selection the same request succeeds.
	path := fmt.Sprintf("/api/admin/entertainments?hotel_id=%d", env.riviera.ID)
	w, body = env.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
}

func TestManagerListIsTenantScoped(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, env.db.Create(&models.Entertainment{HotelID: env.riviera.ID, Title: "Aquagym", IsDaily: true}).Error)
	require.NoError(t, env.db.Create(&models.Entertainment{HotelID: env.palma.ID, Title: "Aquagym", IsDaily: true}).Error)

	manager := env.createProfile(t, "manager@riviera.example", "pw", models.RoleManager, &env.riviera.ID)
	token := env.tokenFor(t, manager, models.RoleManager)

	w, body := env.do(t, http.MethodGet, "/api/admin/entertainments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Entertainment
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, env.riviera.ID, rows[0].HotelID)
}

func TestManagerSessionHotelWinsOverQuery(t *testing.T) {
	env := setupEnv(t)
	require.NoError(t, env.db.Create(&models.Entertainment{HotelID: env.palma.ID, Title: "Magic Night"}).Error)

	manager := env.createProfile(t, "manager@riviera.example", "pw", models.RoleManager, &env.riviera.ID)
	token := env.tokenFor(t, manager, models.RoleManager)

	// The query parameter cannot widen a fixed-tenant session.
	path := fmt.Sprintf("/api/admin/entertainments?hotel_id=%d", env.palma.ID)
	w, body := env.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Entertainment
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	assert.Empty(t, rows)
}

func TestCreateEntertainment(t *testing.T) {
	env := setupEnv(t)
	manager := env.createProfile(t, "manager@riviera.example", "pw", models.RoleManager, &env.riviera.ID)
	token := env.tokenFor(t, manager, models.RoleManager)

	w, body := env.do(t, http.MethodPost, "/api/admin/entertainments", token, map[string]interface{}{
		"title":    "Pool Party",
		"is_daily": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var row models.Entertainment
	require.NoError(t, json.Unmarshal(body.Data, &row))
	assert.Equal(t, env.riviera.ID, row.HotelID)
	assert.Equal(t, "Pool Party", row.Title)

	w, body = env.do(t, http.MethodPost, "/api/admin/entertainments", token, map[string]interface{}{
		"title": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantRoutesForbiddenForManagers(t *testing.T) {
	env := setupEnv(t)
	manager := env.createProfile(t, "manager@riviera.example", "pw", models.RoleManager, &env.riviera.ID)
	token := env.tokenFor(t, manager, models.RoleManager)

	w, body := env.do(t, http.MethodGet, "/api/admin/hotels", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, utils.ErrCodeForbidden, body.Error.Code)
}

func TestTenantRoutesAllowedForSuperAdmin(t *testing.T) {
	env := setupEnv(t)
	admin := env.createProfile(t, "root@example.com", "pw", models.RoleSuperAdmin, nil)
	token := env.tokenFor(t, admin, models.RoleSuperAdmin)

	w, body := env.do(t, http.MethodGet, "/api/admin/hotels", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Tenant
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	assert.Len(t, rows, 2)
}
