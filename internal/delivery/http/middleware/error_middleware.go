package middleware

import (
	"errors"
	"net/http"

	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/logger"

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
				if appErr.Code == http.StatusInternalServerError {
					logger.Log.Error("internal error", "error", appErr.Err, "path", c.Request.URL.Path)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side; send a generic message out.
				logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
