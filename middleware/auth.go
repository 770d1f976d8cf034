package middleware

import (
	"errors"
	"strings"

	"guest-companion-backend/services"
	"guest-companion-backend/utils"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth.
const (
	ContextKeyProfileID = "profile_id"
	ContextKeyEmail     = "email"
	ContextKeyRole      = "role"
	ContextKeyHotelID   = "hotel_id"
)

// RequireAuth validates the bearer token and injects the caller's claims
// into the gin context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.AbortUnauthorized(c, "authorization header is required")
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			utils.AbortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := tokens.Validate(header[len(prefix):])
		if err != nil {
			if errors.Is(err, services.ErrExpiredToken) {
				utils.AbortUnauthorized(c, "session has expired")
				return
			}
			utils.AbortUnauthorized(c, "invalid session token")
			return
		}

		c.Set(ContextKeyProfileID, claims.ProfileID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)
		if claims.HotelID != nil {
			c.Set(ContextKeyHotelID, *claims.HotelID)
		}
		c.Next()
	}
}

// RequireRole allows only callers whose role matches one of the given names.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextKeyRole)
		if !ok {
			utils.AbortUnauthorized(c, "not authenticated")
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.AbortForbidden(c, "insufficient permissions")
	}
}

// ProfileID extracts the authenticated profile id from the context.
func ProfileID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextKeyProfileID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SessionRole extracts the caller's role name from the context.
func SessionRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyRole)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// SessionHotelID extracts the caller's fixed hotel id, if any. Super admins
// have none.
func SessionHotelID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextKeyHotelID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
