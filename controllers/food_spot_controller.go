package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodSpotController struct {
	foodSpots *services.FoodSpotService
}

func NewFoodSpotController(foodSpots *services.FoodSpotService) *FoodSpotController {
	return &FoodSpotController{foodSpots: foodSpots}
}

func (fc *FoodSpotController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := fc.foodSpots.List(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (fc *FoodSpotController) Get(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	row, err := fc.foodSpots.Get(hotelID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

type foodSpotPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Kind            string `json:"kind"`
	LocationID      *uint  `json:"location_id"`
	OpeningHours    string `json:"opening_hours"`
	MenuURL         string `json:"menu_url"`
	BookingRequired bool   `json:"booking_required"`
}

func (fc *FoodSpotController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload foodSpotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	spot := models.FoodSpot{
		HotelID:         hotelID,
		Name:            payload.Name,
		Description:     payload.Description,
		Kind:            payload.Kind,
		LocationID:      payload.LocationID,
		OpeningHours:    payload.OpeningHours,
		MenuURL:         payload.MenuURL,
		BookingRequired: payload.BookingRequired,
	}
	if err := fc.foodSpots.Create(&spot); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, spot)
}

func (fc *FoodSpotController) Update(c *gin.Context) {
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
	if name, present := fields["name"]; present {
		s, _ := name.(string)
		if strings.TrimSpace(s) == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
			return
		}
	}

	if err := fc.foodSpots.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (fc *FoodSpotController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := fc.foodSpots.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
