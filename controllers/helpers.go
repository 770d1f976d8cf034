package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"guest-companion-backend/middleware"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// actingHotelID resolves which tenant the caller acts on. Staff and
// managers carry a fixed hotel id in their session claims; super admins
// have none and must select a tenant explicitly via the hotel_id query
// parameter. On failure the response is already written.
func actingHotelID(c *gin.Context) (uint, bool) {
	if id, ok := middleware.SessionHotelID(c); ok {
		return id, true
	}

	raw := c.Query("hotel_id")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeTenantMissing,
			"select a hotel before acting (hotel_id query parameter)")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid hotel_id")
		return 0, false
	}
	return uint(id), true
}

// idParam parses a numeric :id path parameter. On failure the response is
// already written.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors onto the JSON error envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, utils.ErrCodeNotFound, "not found")
	case errors.Is(err, services.ErrInvalidSchedule),
		errors.Is(err, services.ErrInvalidCoordinate),
		errors.Is(err, services.ErrInvalidSlug),
		errors.Is(err, services.ErrUnknownOwner),
		errors.Is(err, services.ErrEmptyUpdate):
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateSlug):
		utils.JSONError(c, http.StatusConflict, utils.ErrCodeConflict, err.Error())
	case utils.IsDuplicateErr(err):
		utils.JSONError(c, http.StatusConflict, utils.ErrCodeConflict, "already exists")
	default:
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "database error")
	}
}
