package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/ratelimit"
)

// ContactRateLimit bounds submissions per client within the limiter's
// window. Clients are keyed by IP; the limiter only sees an opaque string,
// so a different key scheme (API key, account id) plugs in without changes.
//
// Exceeding the limit answers 429 with a Retry-After header and the bare
// {"error": ...} body the frontend expects. Rate limiting is an expected
// admission outcome, so it logs at INFO, not as an application fault.
func ContactRateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Admit(c.Request.Context(), c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", decision.ResetAt.Format(time.RFC3339))

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
				"retry_after_seconds", retryAfter,
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many submissions from this address. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
