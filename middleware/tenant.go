package middleware

import (
	"net"
	"strconv"
	"strings"

	"guest-companion-backend/config"
	"guest-companion-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HotelIDHeader carries the resolved tenant id to downstream handlers.
// Absence means "use the configured default tenant".
const HotelIDHeader = "X-Hotel-ID"

// TenantResolver maps the request Host to a tenant before page logic runs.
// The label before the first dot is the candidate subdomain; the reserved
// admin subdomain and local hosts pass through untouched, and a slug that
// matches no tenant passes through silently.
func TenantResolver(db *gorm.DB, cfg config.TenancyConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The header is resolver-owned; never trust an inbound value.
		c.Request.Header.Del(HotelIDHeader)

		sub := subdomainFromHost(c.Request.Host)
		if sub == "" || sub == cfg.AdminSubdomain {
			c.Next()
			return
		}

		var tenant models.Tenant
		err := db.Where("slug = ? AND active = ?", sub, true).First(&tenant).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				log.Warn("tenant lookup failed", zap.String("slug", sub), zap.Error(err))
			}
			// Silent pass-through: downstream applies the default tenant.
			c.Next()
			return
		}

		c.Request.Header.Set(HotelIDHeader, strconv.FormatUint(uint64(tenant.ID), 10))
		c.Next()
	}
}

// subdomainFromHost extracts the candidate subdomain, or "" when the host
// has none (bare domain, localhost, raw IP).
func subdomainFromHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	if host == "localhost" || net.ParseIP(host) != nil {
		return ""
	}

	idx := strings.Index(host, ".")
	if idx <= 0 {
		return ""
	}
	return host[:idx]
}
