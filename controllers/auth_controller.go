package controllers

import (
	"errors"
	"net/http"
	"strings"

	"guest-companion-backend/middleware"
	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	profiles *services.ProfileService
	tokens   *services.TokenService
	log      *zap.Logger
}

func NewAuthController(profiles *services.ProfileService, tokens *services.TokenService, log *zap.Logger) *AuthController {
	return &AuthController{profiles: profiles, tokens: tokens, log: log}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrCodeBadRequest, "email and password required")
		return
	}

	profile, err := a.profiles.Authenticate(email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		a.log.Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "login failed")
		return
	}

	token, err := a.tokens.Generate(profile.ID, profile.Email, profile.Role.Name, profile.HotelID)
	if err != nil {
		a.log.Error("token generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"profile": gin.H{
			"id":        profile.ID,
			"full_name": profile.FullName,
			"email":     profile.Email,
			"role":      profile.Role.Name,
			"hotel_id":  profile.HotelID,
		},
	})
}

// Me returns the caller's profile plus its resolved tenant scope. A nil
// hotel signals multi-tenant mode: the UI prompts for a tenant selection.
func (a *AuthController) Me(c *gin.Context) {
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "not authenticated")
		return
	}

	profile, err := a.profiles.GetByID(profileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	tenant, err := a.profiles.ResolveTenant(profileID)
	if err != nil {
		a.log.Error("tenant resolution failed", zap.Uint("profile_id", profileID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.ErrCodeInternal, "tenant resolution failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"profile": profile,
		"hotel":   tenant,
	})
}
