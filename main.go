package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guest-companion-backend/config"
	"guest-companion-backend/controllers"
	"guest-companion-backend/logger"
	"guest-companion-backend/routes"
	"guest-companion-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments pass everything via environment.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("GC_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(&cfg.Database)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	if err := config.SeedDatabase(db, cfg, zl); err != nil {
		zl.Fatal("seed database", zap.Error(err))
	}

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Duration)
	tenants := services.NewTenantService(db, cfg.Tenancy.DefaultTenantSlug)
	profiles := services.NewProfileService(db)
	entertainments := services.NewEntertainmentService(db)
	schedules := services.NewScheduleService(db)
	foodSpots := services.NewFoodSpotService(db)
	suggestions := services.NewSuggestionService(db)
	categories := services.NewCategoryService(db)
	locations := services.NewLocationService(db)
	contacts := services.NewContactService(db)
	maps := services.NewMapService(db)
	uploader := services.NewMediaUploader(cfg.Media.UploadURL, cfg.Media.UploadPreset, cfg.Media.Timeout)
	images := services.NewImageService(db, uploader, zl)

	ctl := routes.Controllers{
		Auth:           controllers.NewAuthController(profiles, tokens, zl),
		Guest:          controllers.NewGuestController(tenants, entertainments, foodSpots, suggestions, maps, contacts, zl),
		Entertainments: controllers.NewEntertainmentController(entertainments, schedules),
		FoodSpots:      controllers.NewFoodSpotController(foodSpots),
		Suggestions:    controllers.NewSuggestionController(suggestions),
		Categories:     controllers.NewCategoryController(categories),
		Locations:      controllers.NewLocationController(locations),
		Contacts:       controllers.NewContactController(contacts),
		Maps:           controllers.NewMapController(maps),
		Settings:       controllers.NewSettingsController(tenants),
		Tenants:        controllers.NewTenantController(tenants),
		Images:         controllers.NewImageController(images, zl),
		Profiles:       controllers.NewProfileController(profiles),
	}

	router := routes.SetupRouter(db, cfg, zl, tokens, ctl)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zl.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
