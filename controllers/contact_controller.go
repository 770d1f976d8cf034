package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

func (cc *ContactController) List(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	rows, err := cc.contacts.List(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

type contactPayload struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	SortOrder  int    `json:"sort_order"`
}

func (cc *ContactController) Create(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}

	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "name is required")
		return
	}

	contact := models.Contact{
		HotelID:    hotelID,
		Name:       payload.Name,
		Phone:      payload.Phone,
		Department: payload.Department,
		SortOrder:  payload.SortOrder,
	}
	if err := cc.contacts.Create(&contact); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, contact)
}

func (cc *ContactController) Update(c *gin.Context) {
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

	if err := cc.contacts.Update(hotelID, id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}

func (cc *ContactController) Delete(c *gin.Context) {
	hotelID, ok := actingHotelID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := cc.contacts.Delete(hotelID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
