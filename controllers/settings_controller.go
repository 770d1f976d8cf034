package controllers

import (
	"net/http"

	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// SettingsController backs the tabbed hotel profile screen. The general,
// appearance and contact tabs each update their own field set on the acting
// tenant row; the carousel tab is served by the image endpoints.
type SettingsController struct {
	tenants *services.TenantService
}

func NewSettingsController(tenants *services.TenantService) *SettingsController {
	return &SettingsController{tenants: tenants}
}

// Fields each settings tab may touch. Anything else in the payload is
// dropped before the update.
var settingsTabFields = map[string][]string{
	"general":    {"name", "description", "check_in_time", "check_out_time", "active"},
	"appearance": {"theme"},
	"contact":    {"address", "phone", "email", "website"},
}

func (sc *SettingsController) Get(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	tenant, err := sc.tenants.GetByID(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

func (sc *SettingsController) UpdateTab(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	allowed, known := settingsTabFields[c.Param("tab")]
	if !known {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "unknown settings tab")
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	fields := make(map[string]interface{}, len(allowed))
	for _, name := range allowed {
		if value, present := payload[name]; present {
			fields[name] = value
		}
	}
	if len(fields) == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "no updatable fields in payload")
		return
	}

	if err := sc.tenants.Update(hotelID, fields); err != nil {
		respondServiceError(c, err)
		return
	}

	tenant, err := sc.tenants.GetByID(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}
