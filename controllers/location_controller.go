package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	locations *services.LocationService
}

func NewLocationController(locations *services.LocationService) *LocationController {
	return &LocationController{locations: locations}
}

func (lc *LocationController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := lc.locations.List(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

type locationPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (lc *LocationController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload locationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	loc := models.Location{
		HotelID:     hotelID,
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := lc.locations.Create(&loc); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, loc)
}

func (lc *LocationController) Update(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	if err := lc.locations.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (lc *LocationController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := lc.locations.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
