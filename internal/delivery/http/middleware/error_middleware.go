package middleware

import (
	"errors"
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Operator-facing detail stays in the logs; the client
				// sees only the sanitized message.
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				logger.Log.Error("Unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
