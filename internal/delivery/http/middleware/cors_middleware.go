package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/logger"
)

// CORSMiddleware gates requests on their declared Origin.
//
// The allowlist is exact-match only: no wildcards, no subdomain matching.
// Requests without an Origin header (same-origin, curl, uptime checks) are
// always allowed. Disallowed origins are rejected here, before any handler
// runs, and the rejection is logged with the offending origin and the
// current allowlist for operational diagnosis.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin (same-origin / non-browser clients) - allow
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Caches must differentiate by Origin
		c.Header("Vary", "Origin")

		if !isAllowed {
			logger.Log.Warn("request from disallowed origin rejected",
				"origin", origin,
				"allowed_origins", allowedOrigins,
			)
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			response.Error(c, http.StatusForbidden, "Not allowed by CORS", nil)
			c.Abort()
			return
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
