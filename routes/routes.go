package routes

import (
	"net/http"
	"time"

	"guest-companion-backend/config"
	"guest-companion-backend/controllers"
	"guest-companion-backend/middleware"
	"guest-companion-backend/models"
	"guest-companion-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Controllers bundles everything SetupRouter wires.
type Controllers struct {
	Auth           *controllers.AuthController
	Guest          *controllers.GuestController
	Entertainments *controllers.EntertainmentController
	FoodSpots      *controllers.FoodSpotController
	Suggestions    *controllers.SuggestionController
	Categories     *controllers.CategoryController
	Locations      *controllers.LocationController
	Contacts       *controllers.ContactController
	Maps           *controllers.MapController
	Settings       *controllers.SettingsController
	Tenants        *controllers.TenantController
	Images         *controllers.ImageController
	Profiles       *controllers.ProfileController
}

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter assembles the public guest API (tenant resolved from the
// subdomain) and the authenticated admin API.
func SetupRouter(
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	tokens *services.TokenService,
	ctl Controllers,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
	r.Use(middleware.TenantResolver(db, cfg.Tenancy, log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		guest := api.Group("/guest")
		{
			guest.GET("/hotel", ctl.Guest.Hotel)
			guest.GET("/activities", ctl.Guest.Activities)
			guest.GET("/shows", ctl.Guest.Shows)
			guest.GET("/restaurants", ctl.Guest.Restaurants)
			guest.GET("/restaurants/:id", ctl.Guest.RestaurantDetail)
			guest.GET("/suggestions", ctl.Guest.Suggestions)
			guest.GET("/suggestions/:id", ctl.Guest.SuggestionDetail)
			guest.GET("/map", ctl.Guest.Map)
			guest.GET("/contacts", ctl.Guest.Contacts)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctl.Auth.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), ctl.Auth.Me)
		}

		admin := api.Group("/admin", middleware.RequireAuth(tokens))
		{
			entertainments := admin.Group("/entertainments")
			{
				entertainments.GET("", ctl.Entertainments.List)
				entertainments.GET("/:id", ctl.Entertainments.Get)
				entertainments.POST("", ctl.Entertainments.Create)
				entertainments.PUT("/:id", ctl.Entertainments.Update)
				entertainments.DELETE("/:id", ctl.Entertainments.Delete)
				entertainments.GET("/:id/schedules", ctl.Entertainments.ListSchedules)
				entertainments.POST("/:id/schedules", ctl.Entertainments.AddSchedule)
				entertainments.DELETE("/:id/schedules/:scheduleId", ctl.Entertainments.DeleteSchedule)
			}

			foodSpots := admin.Group("/food-spots")
			{
				foodSpots.GET("", ctl.FoodSpots.List)
				foodSpots.GET("/:id", ctl.FoodSpots.Get)
				foodSpots.POST("", ctl.FoodSpots.Create)
				foodSpots.PUT("/:id", ctl.FoodSpots.Update)
				foodSpots.DELETE("/:id", ctl.FoodSpots.Delete)
			}

			suggestions := admin.Group("/suggestions")
			{
				suggestions.GET("", ctl.Suggestions.List)
				suggestions.GET("/:id", ctl.Suggestions.Get)
				suggestions.POST("", ctl.Suggestions.Create)
				suggestions.PUT("/:id", ctl.Suggestions.Update)
				suggestions.DELETE("/:id", ctl.Suggestions.Delete)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", ctl.Categories.List)
				categories.POST("", ctl.Categories.Create)
				categories.PUT("/:id", ctl.Categories.Update)
				categories.DELETE("/:id", ctl.Categories.Delete)
			}

			locations := admin.Group("/locations")
			{
				locations.GET("", ctl.Locations.List)
				locations.POST("", ctl.Locations.Create)
				locations.PUT("/:id", ctl.Locations.Update)
				locations.DELETE("/:id", ctl.Locations.Delete)
			}

			contacts := admin.Group("/contacts")
			{
				contacts.GET("", ctl.Contacts.List)
				contacts.POST("", ctl.Contacts.Create)
				contacts.PUT("/:id", ctl.Contacts.Update)
				contacts.DELETE("/:id", ctl.Contacts.Delete)
			}

			plans := admin.Group("/plans")
			{
				plans.GET("", ctl.Maps.ListPlans)
				plans.POST("", ctl.Maps.CreatePlan)
				plans.PUT("/:id", ctl.Maps.UpdatePlan)
				plans.DELETE("/:id", ctl.Maps.DeletePlan)
				plans.POST("/:id/points", ctl.Maps.AddPoint)
				plans.PUT("/:id/points/:pointId", ctl.Maps.UpdatePoint)
				plans.DELETE("/:id/points/:pointId", ctl.Maps.DeletePoint)
			}

			poiTypes := admin.Group("/poi-types")
			{
				poiTypes.GET("", ctl.Maps.ListPOITypes)
				poiTypes.POST("", ctl.Maps.CreatePOIType)
				poiTypes.PUT("/:id", ctl.Maps.UpdatePOIType)
				poiTypes.DELETE("/:id", ctl.Maps.DeletePOIType)
			}

			admin.GET("/hotel", ctl.Settings.Get)
			admin.PUT("/hotel/:tab", ctl.Settings.UpdateTab)

			images := admin.Group("/images")
			{
				images.POST("", ctl.Images.Upload)
				images.PUT("/:id/principal", ctl.Images.SetPrincipal)
				images.DELETE("/:id", ctl.Images.Delete)
			}

			profiles := admin.Group("/profiles", middleware.RequireRole(models.RoleSuperAdmin, models.RoleManager))
			{
				profiles.GET("", ctl.Profiles.List)
				profiles.POST("", ctl.Profiles.Create)
				profiles.DELETE("/:id", ctl.Profiles.Delete)
			}

			tenants := admin.Group("/hotels", middleware.RequireRole(models.RoleSuperAdmin))
			{
				tenants.GET("", ctl.Tenants.List)
				tenants.POST("", ctl.Tenants.Create)
				tenants.PUT("/:id", ctl.Tenants.Update)
			}
		}
	}

	return r
}
