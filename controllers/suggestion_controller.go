package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	suggestions *services.SuggestionService
}

func NewSuggestionController(suggestions *services.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestions: suggestions}
}

func (sc *SuggestionController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := sc.suggestions.List(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (sc *SuggestionController) Get(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	row, err := sc.suggestions.Get(hotelID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

type suggestionPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   *uint  `json:"category_id"`
	LocationType string `json:"location_type"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	Phone        string `json:"phone"`
}

func (sc *SuggestionController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload suggestionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "title is required")
		return
	}

	sug := models.Suggestion{
		HotelID:      hotelID,
		Title:        payload.Title,
		Description:  payload.Description,
		CategoryID:   payload.CategoryID,
		LocationType: payload.LocationType,
		Address:      payload.Address,
		Website:      payload.Website,
		Phone:        payload.Phone,
	}
	if err := sc.suggestions.Create(&sug); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sug)
}

func (sc *SuggestionController) Update(c *gin.Context) {
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
	if title, present := fields["title"]; present {
		s, _ := title.(string)
		if strings.TrimSpace(s) == "" {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "title is required")
			return
		}
	}

	if err := sc.suggestions.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (sc *SuggestionController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := sc.suggestions.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
