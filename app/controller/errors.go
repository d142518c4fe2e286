package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/randomizer"
	"otc-randomizer/repository"
	"otc-randomizer/service"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrTransactionNotFound),
		errors.Is(err, service.ErrHistoryDisabled):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateSKU):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidTarget),
		errors.Is(err, service.ErrNoChanges):
		return http.StatusBadRequest
	case errors.Is(err, randomizer.ErrEmptyCatalog),
		errors.Is(err, randomizer.ErrInvalidPrice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err under op and writes {"error": ...}
func respondError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("❌ "+op+" failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	logger.Warn("⚠️  "+op+" rejected", zap.String("path", c.Request.URL.Path), zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
