package handlers

import (
	"errors"
	"net/http"

	"github.com/01moynul/locify-golang/internal/marketplace"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Market    *marketplace.Service
	Log       *zap.Logger
	UploadDir string // local directory for uploaded images
	BaseURL   string // public base URL used to build upload links
}

// fail maps a marketplace error to an HTTP response. failMsg is the fixed
// message shown for datastore and other unexpected failures.
func (h *Handlers) fail(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, marketplace.ErrNoIdentity):
		// Anonymous writes are silently ignored.
		c.Status(http.StatusNoContent)
	case marketplace.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, marketplace.ErrRequestNotFound),
		errors.Is(err, marketplace.ErrStoreNotFound),
		errors.Is(err, marketplace.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, marketplace.ErrRequestClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, marketplace.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view this"})
	default:
		h.Log.Error(failMsg,
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("userID", c.GetString("userID")),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
