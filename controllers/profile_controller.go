package controllers

import (
	"errors"
	"net/http"
	"strings"

	"guest-companion-backend/middleware"
	"guest-companion-backend/models"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// ProfileController manages back-office staff accounts. Managers see their
// own hotel's staff; super admins see everyone.
type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

func (pc *ProfileController) List(c *gin.Context) {
	var scope *uint
	if id, ok := middleware.SessionHotelID(c); ok {
		scope = &id
	}
	profiles, err := pc.profiles.List(scope)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profiles)
}

type createProfilePayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
	HotelID  *uint  `json:"hotel_id"`
}

func (pc *ProfileController) Create(c *gin.Context) {
	var payload createProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || payload.Password == "" || payload.RoleID == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest,
			"email, password and role_id are required")
		return
	}

	role, err := pc.profiles.RoleByID(payload.RoleID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "unknown role_id")
			return
		}
		respondServiceError(c, err)
		return
	}

	// Only super admins may mint super admins.
	callerRole, _ := middleware.SessionRole(c)
	if role.Name == models.RoleSuperAdmin && callerRole != models.RoleSuperAdmin {
		utils.JSONError(c, http.StatusForbidden, utils.ErrCodeForbidden,
			"cannot assign the super admin role")
		return
	}

	// Managers can only create staff inside their own hotel.
	if id, ok := middleware.SessionHotelID(c); ok {
		payload.HotelID = &id
	}
	if role.Name == models.RoleSuperAdmin {
		// Super admin accounts are never bound to one hotel.
		payload.HotelID = nil
	}

	profile := models.Profile{
		FullName: payload.FullName,
		Email:    payload.Email,
		RoleID:   payload.RoleID,
		HotelID:  payload.HotelID,
	}
	if err := pc.profiles.Create(&profile, payload.Password); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, profile)
}

func (pc *ProfileController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	// A manager may only remove accounts bound to their own hotel.
	if hotelID, scoped := middleware.SessionHotelID(c); scoped {
		target, err := pc.profiles.GetByID(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if target.HotelID == nil || *target.HotelID != hotelID {
			utils.JSONError(c, http.StatusForbidden, utils.ErrCodeForbidden, "profile outside your hotel")
			return
		}
	}

	if err := pc.profiles.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "deleted"})
}
