package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// List supports an optional ?kind=activity|suggestion filter.
func (cc *CategoryController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := cc.categories.List(hotelID, c.Query("kind"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

type categoryPayload struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

func (cc *CategoryController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	cat := models.Category{
		HotelID:   hotelID,
		Kind:      payload.Kind,
		Name:      payload.Name,
		Icon:      payload.Icon,
		Color:     payload.Color,
		SortOrder: payload.SortOrder,
		Active:    true,
	}
	if payload.Active != nil {
		cat.Active = *payload.Active
	}
	if err := cc.categories.Create(&cat); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cat)
}

func (cc *CategoryController) Update(c *gin.Context) {
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

	if err := cc.categories.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (cc *CategoryController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := cc.categories.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
