package handlers

import (
	"net/http"

	"github.com/01moynul/locify-golang/internal/marketplace"
	"github.com/01moynul/locify-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SaveMyStore is the handler for PUT /v1/vendor/store
func (h *Handlers) SaveMyStore(c *gin.Context) {
	vendorID := middleware.UserID(c)
	if vendorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	var form marketplace.StoreForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, err := h.Market.SaveStore(c.Request.Context(), vendorID, &form)
	if err != nil {
		h.fail(c, err, "Failed to save store")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store saved",
		"store":   store,
	})
}

// GetMyStore is the handler for GET /v1/vendor/store
func (h *Handlers) GetMyStore(c *gin.Context) {
	vendorID := middleware.UserID(c)
	if vendorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	store, err := h.Market.MyStore(c.Request.Context(), vendorID)
	if err != nil {
		h.fail(c, err, "Failed to load store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"store": store})
}
