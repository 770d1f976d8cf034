package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"guest-companion-backend/config"
	"guest-companion-backend/middleware"
	"guest-companion-backend/models"
	"guest-companion-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	tokens  *services.TokenService
	tenants *services.TenantService

	riviera *models.Tenant
	palma   *models.Tenant
}

// setupEnv wires the same middleware and handler chain the real router
// uses, backed by an in-memory database with two tenants and the three
// standard roles.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	for _, name := range []string{models.RoleSuperAdmin, models.RoleManager, models.RoleStaff} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}
	riviera := &models.Tenant{Slug: "riviera", Name: "Hotel Riviera", Active: true}
	require.NoError(t, db.Create(riviera).Error)
	palma := &models.Tenant{Slug: "palma", Name: "Hotel Palma", Active: true}
	require.NoError(t, db.Create(palma).Error)

	log := zap.NewNop()
	tokens := services.NewTokenService(testSecret, time.Hour)
	tenants := services.NewTenantService(db, "riviera")
	profiles := services.NewProfileService(db)
	entertainments := services.NewEntertainmentService(db)
	schedules := services.NewScheduleService(db)
	foodSpots := services.NewFoodSpotService(db)
	suggestions := services.NewSuggestionService(db)
	maps := services.NewMapService(db)
	contacts := services.NewContactService(db)

	tenancy := config.TenancyConfig{
		BaseDomain:        "guestapp.example",
		AdminSubdomain:    "admin",
		DefaultTenantSlug: "riviera",
	}

	auth := NewAuthController(profiles, tokens, log)
	guest := NewGuestController(tenants, entertainments, foodSpots, suggestions, maps, contacts, log)
	entCtl := NewEntertainmentController(entertainments, schedules)
	tenantCtl := NewTenantController(tenants)
	profileCtl := NewProfileController(profiles)

	r := gin.New()
	r.Use(middleware.TenantResolver(db, tenancy, log))

	r.POST("/api/auth/login", auth.Login)
	r.GET("/api/auth/me", middleware.RequireAuth(tokens), auth.Me)

	g := r.Group("/api/guest")
	g.GET("/hotel", guest.Hotel)
	g.GET("/activities", guest.Activities)
	g.GET("/shows", guest.Shows)

	admin := r.Group("/api/admin", middleware.RequireAuth(tokens))
	admin.GET("/entertainments", entCtl.List)
	admin.POST("/entertainments", entCtl.Create)
	admin.GET("/hotels", middleware.RequireRole(models.RoleSuperAdmin), tenantCtl.List)
	admin.POST("/profiles", middleware.RequireRole(models.RoleSuperAdmin, models.RoleManager), profileCtl.Create)

	return &testEnv{
		db:      db,
		router:  r,
		tokens:  tokens,
		tenants: tenants,
		riviera: riviera,
		palma:   palma,
	}
}

func (e *testEnv) createProfile(t *testing.T, email, password, roleName string, hotelID *uint) *models.Profile {
	t.Helper()
	var role models.Role
	require.NoError(t, e.db.Where("name = ?", roleName).First(&role).Error)
	profile := &models.Profile{Email: email, RoleID: role.ID, HotelID: hotelID}
	require.NoError(t, services.NewProfileService(e.db).Create(profile, password))
	return profile
}

func (e *testEnv) tokenFor(t *testing.T, profile *models.Profile, roleName string) string {
	t.Helper()
	token, err := e.tokens.Generate(profile.ID, profile.Email, roleName, profile.HotelID)
	require.NoError(t, err)
	return token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Host = "admin.guestapp.example"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}
