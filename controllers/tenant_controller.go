package controllers

import (
	"net/http"
	"strings"

	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// TenantController is the super-admin surface for managing hotels
// themselves. All routes sit behind the super_admin role check.
type TenantController struct {
	tenants *services.TenantService
}

func NewTenantController(tenants *services.TenantService) *TenantController {
	return &TenantController{tenants: tenants}
}

func (tc *TenantController) List(c *gin.Context) {
	tenants, err := tc.tenants.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenants)
}

type tenantPayload struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

func (tc *TenantController) Create(c *gin.Context) {
	var payload tenantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" || strings.TrimSpace(payload.Slug) == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "slug and name are required")
		return
	}

	tenant := models.Tenant{
		Slug:         payload.Slug,
		Name:         payload.Name,
		Description:  payload.Description,
		Address:      payload.Address,
		Phone:        payload.Phone,
		Email:        payload.Email,
		Website:      payload.Website,
		CheckInTime:  payload.CheckInTime,
		CheckOutTime: payload.CheckOutTime,
		Active:       true,
	}
	if err := tc.tenants.Create(&tenant); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tenant)
}

func (tc *TenantController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	if err := tc.tenants.Update(id, fields); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "updated"})
}
