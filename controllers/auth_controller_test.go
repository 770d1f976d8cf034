package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"guest-companion-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := setupEnv(t)
	env.createProfile(t, "manager@riviera.example", "s3cret-pass", models.RoleManager, &env.riviera.ID)

	w, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "manager@riviera.example",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, body.Success)

	var data struct {
		Token   string `json:"token"`
		Profile struct {
			Email   string `json:"email"`
			Role    string `json:"role"`
			HotelID *uint  `json:"hotel_id"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, models.RoleManager, data.Profile.Role)
	require.NotNil(t, data.Profile.HotelID)
	assert.Equal(t, env.riviera.ID, *data.Profile.HotelID)
}

func TestLoginBadCredentials(t *testing.T) {
	env := setupEnv(t)
	env.createProfile(t, "manager@riviera.example", "s3cret-pass", models.RoleManager, &env.riviera.ID)

	w, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "manager@riviera.example",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestMeResolvesTenant(t *testing.T) {
	env := setupEnv(t)
	manager := env.createProfile(t, "manager@riviera.example", "pw", models.RoleManager, &env.riviera.ID)
	token := env.tokenFor(t, manager, models.RoleManager)

	w, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Hotel *models.Tenant `json:"hotel"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotNil(t, data.Hotel)
	assert.Equal(t, env.riviera.ID, data.Hotel.ID)
}

func TestMeSuperAdminHasNoTenant(t *testing.T) {
	env := setupEnv(t)
	admin := env.createProfile(t, "root@example.com", "pw", models.RoleSuperAdmin, nil)
	token := env.tokenFor(t, admin, models.RoleSuperAdmin)

	w, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Hotel *models.Tenant `json:"hotel"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Nil(t, data.Hotel)
}

func TestMeRequiresToken(t *testing.T) {
	env := setupEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodGet, "/api/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
