package controllers

import (
	"net/http"
	"time"

	"guest-companion-backend/middleware"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GuestController serves the anonymous guest-facing pages. Every handler
// scopes its queries to the tenant resolved from the subdomain, falling
// back to the configured default tenant.
type GuestController struct {
	tenants        *services.TenantService
	entertainments *services.EntertainmentService
	foodSpots      *services.FoodSpotService
	suggestions    *services.SuggestionService
	maps           *services.MapService
	contacts       *services.ContactService
	log            *zap.Logger
}

func NewGuestController(
	tenants *services.TenantService,
	entertainments *services.EntertainmentService,
	foodSpots *services.FoodSpotService,
	suggestions *services.SuggestionService,
	maps *services.MapService,
	contacts *services.ContactService,
	log *zap.Logger,
) *GuestController {
	return &GuestController{
		tenants:        tenants,
		entertainments: entertainments,
		foodSpots:      foodSpots,
		suggestions:    suggestions,
		maps:           maps,
		contacts:       contacts,
		log:            log,
	}
}

// hotelID resolves the acting tenant for a guest request. On failure the
// response is already written.
func (g *GuestController) hotelID(c *gin.Context) (uint, bool) {
	id, err := g.tenants.ResolveGuestHotelID(c.GetHeader(middleware.HotelIDHeader))
	if err != nil {
		g.log.Error("guest tenant resolution failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "tenant resolution failed")
		return 0, false
	}
	return id, true
}

// Hotel returns the tenant's public profile and carousel.
func (g *GuestController) Hotel(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	tenant, err := g.tenants.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// Activities returns the weekly program of daily activities grouped by
// weekday. An empty program is a valid response, not an error.
func (g *GuestController) Activities(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	activities, err := g.entertainments.ListDaily(id)
	if err != nil {
		g.log.Error("list activities failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.GroupActivitiesByWeekday(activities))
}

// Shows returns night shows split into upcoming and past.
func (g *GuestController) Shows(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	shows, err := g.entertainments.ListShows(id)
	if err != nil {
		g.log.Error("list shows failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.BuildShowBoard(shows, time.Now()))
}

// Restaurants returns food spots grouped by kind.
func (g *GuestController) Restaurants(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	spots, err := g.foodSpots.List(id)
	if err != nil {
		g.log.Error("list food spots failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.GroupFoodSpotsByKind(spots))
}

// RestaurantDetail returns one food spot with principal-first images.
func (g *GuestController) RestaurantDetail(c *gin.Context) {
	hotelID, ok := g.hotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	spot, err := g.foodSpots.Get(hotelID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.FoodSpotView{
		FoodSpot: *spot,
		ImageURL: services.PrincipalFoodSpotImage(spot.Images),
	})
}

// Suggestions returns suggestions grouped by category with an explicit
// uncategorized bucket.
func (g *GuestController) Suggestions(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	suggestions, err := g.suggestions.List(id)
	if err != nil {
		g.log.Error("list suggestions failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.GroupSuggestionsByCategory(suggestions))
}

// SuggestionDetail returns one suggestion. The address is only present for
// external suggestions; internal rows were normalized at write time.
func (g *GuestController) SuggestionDetail(c *gin.Context) {
	hotelID, ok := g.hotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sug, err := g.suggestions.Get(hotelID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.SuggestionView{
		Suggestion: *sug,
		ImageURL:   services.PrincipalSuggestionImage(sug.Images),
	})
}

// Map returns the floor plans with their points and the active POI types.
func (g *GuestController) Map(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	plans, err := g.maps.ListPlans(id)
	if err != nil {
		g.log.Error("list plans failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	poiTypes, err := g.maps.ListPOITypes(id, true)
	if err != nil {
		g.log.Error("list poi types failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"plans":     plans,
		"poi_types": poiTypes,
	})
}

// Contacts returns the tenant's contact list.
func (g *GuestController) Contacts(c *gin.Context) {
	id, ok := g.hotelID(c)
	if !ok {
		return
	}
	contacts, err := g.contacts.List(id)
	if err != nil {
		g.log.Error("list contacts failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, contacts)
}
