package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/vibe-fitness/backend/internal/errors"
	"github.com/pageza/vibe-fitness/backend/internal/logger"
)

const internalServerError = "Internal server error"

// ErrorHandler renders errors attached with c.Error as JSON and turns
// panics into a 500. Stack traces are logged, never returned.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", map[string]interface{}{
					"panic":      fmt.Sprint(r),
					"path":       c.Request.URL.Path,
					"request_id": c.GetString(RequestIDKey),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   internalServerError,
					"details": fmt.Sprint(r),
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := renderError(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("request failed", map[string]interface{}{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			})
		}
		c.JSON(status, body)
	}
}

// renderError maps an error to its status code and response body.
func renderError(err error) (int, gin.H) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, gin.H{
			"error":   internalServerError,
			"details": err.Error(),
		}
	}

	body := gin.H{"error": appErr.Message}
	for k, v := range appErr.Extra {
		body[k] = v
	}

	if appErr.Kind == apperrors.KindValidation {
		if appErr.Missing != nil {
			body["missing"] = appErr.Missing
		}
		return http.StatusBadRequest, body
	}
	body["details"] = appErr.Details()
	return http.StatusInternalServerError, body
}
