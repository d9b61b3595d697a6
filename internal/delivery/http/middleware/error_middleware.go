package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

// ErrorHandler drains errors attached to the context and renders the
// standard envelope. Every response stays in the same JSON shape so the
// caller never observes a raw internal fault.
//
// includeDetail controls whether the underlying error text is exposed in
// the body; it is true only outside production.
func ErrorHandler(includeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// Log the wrapped cause server-side with full detail
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"message", appErr.Message,
					"error", appErr.Err.Error(),
				)
			}
			var detail interface{}
			if includeDetail && appErr.Err != nil {
				detail = appErr.Err.Error()
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// Never expose unknown internal errors to clients
		logger.Log.Error("unhandled error in request", "error", err.Error())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
