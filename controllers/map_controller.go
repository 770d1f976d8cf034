package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// MapController is the admin surface for the map editor: floor plans, map
// points, and the POI type catalog.
type MapController struct {
	maps *services.MapService
}

func NewMapController(maps *services.MapService) *MapController {
	return &MapController{maps: maps}
}

func (mc *MapController) ListPlans(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	plans, err := mc.maps.ListPlans(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, plans)
}

type planPayload struct {
	Name      string `json:"name"`
	Floor     int    `json:"floor"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
}

func (mc *MapController) CreatePlan(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload planPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	plan := models.Plan{
		HotelID:   hotelID,
		Name:      payload.Name,
		Floor:     payload.Floor,
		ImageURL:  payload.ImageURL,
		SortOrder: payload.SortOrder,
	}
	if err := mc.maps.CreatePlan(&plan); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, plan)
}

func (mc *MapController) UpdatePlan(c *gin.Context) {
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

	if err := mc.maps.UpdatePlan(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (mc *MapController) DeletePlan(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := mc.maps.DeletePlan(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}

type mapPointPayload struct {
	POITypeID uint    `json:"poi_type_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label"`
}

func (mc *MapController) AddPoint(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload mapPointPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	point := models.MapPoint{
		PlanID:    planID,
		POITypeID: payload.POITypeID,
		X:         payload.X,
		Y:         payload.Y,
		Label:     payload.Label,
	}
	if err := mc.maps.AddPoint(hotelID, &point); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, point)
}

func (mc *MapController) UpdatePoint(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	pointID, ok := idParam(c, "pointId")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	if err := mc.maps.UpdatePoint(hotelID, pointID, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (mc *MapController) DeletePoint(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	pointID, ok := idParam(c, "pointId")
	if !ok {
		return
	}
	if err := mc.maps.DeletePoint(hotelID, pointID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}

func (mc *MapController) ListPOITypes(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	types, err := mc.maps.ListPOITypes(hotelID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

type poiTypePayload struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

func (mc *MapController) CreatePOIType(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload poiTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	t := models.POIType{
		HotelID:   hotelID,
		Key:       payload.Key,
		Name:      payload.Name,
		Icon:      payload.Icon,
		Color:     payload.Color,
		SortOrder: payload.SortOrder,
		Active:    true,
	}
	if payload.Active != nil {
		t.Active = *payload.Active
	}
	if err := mc.maps.CreatePOIType(&t); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, t)
}

func (mc *MapController) UpdatePOIType(c *gin.Context) {
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

	if err := mc.maps.UpdatePOIType(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (mc *MapController) DeletePOIType(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := mc.maps.DeletePOIType(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
