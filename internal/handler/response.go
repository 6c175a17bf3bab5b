// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// sendError writes the JSON error envelope.
func sendError(c *gin.Context, status int, title, message string) {
	c.JSON(status, model.ErrorResponse{
		Status:    status,
		Error:     title,
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// handleError maps domain errors onto HTTP status codes.
func handleError(c *gin.Context, err error) {
	var notFound *model.NotFoundError
	var quotaExceeded *model.QuotaExceededError
	var validation *model.ValidationError
	var remote *googleapi.Error

	switch {
	case errors.As(err, &notFound):
		logger.Log.Warn("resource not found",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		sendError(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.As(err, &quotaExceeded):
		logger.Log.Warn("quota exceeded",
			zap.Int("used", quotaExceeded.Used),
			zap.Int("limit", quotaExceeded.Limit),
			zap.String("path", c.Request.URL.Path),
		)
		sendError(c, http.StatusTooManyRequests, "Too Many Requests", err.Error())
	case errors.As(err, &validation):
		logger.Log.Warn("validation error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		sendError(c, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.As(err, &remote):
		logger.Log.Error("upstream API error",
			zap.Error(err),
			zap.Int("upstream_status", remote.Code),
			zap.String("path", c.Request.URL.Path),
		)
		sendError(c, http.StatusBadGateway, "Bad Gateway", "YouTube API request failed")
	default:
		logger.Log.Error("unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		sendError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}
