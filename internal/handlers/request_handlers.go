package handlers

import (
	"net/http"

	"github.com/01moynul/locify-golang/internal/marketplace"
	"github.com/01moynul/locify-golang/internal/middleware"
	"github.com/01moynul/locify-golang/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateRequest is the handler for POST /v1/requests
// An anonymous caller gets 204 and nothing is stored.
func (h *Handlers) CreateRequest(c *gin.Context) {
	// 1. --- Get User ID ---
	userID := middleware.UserID(c)
	if userID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	// 2. --- Bind & Validate JSON ---
	var form marketplace.RequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Submit ---
	req, err := h.Market.SubmitRequest(c.Request.Context(), userID, &form, func(r *models.ItemRequest) {
		h.Log.Info("item request posted", zap.String("requestID", r.ID), zap.String("userID", r.UserID))
	})
	if err != nil {
		h.fail(c, err, "Failed to create request. Please try again.")
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your item request has been posted!",
		"request": req,
	})
}

// GetOpenRequests is the handler for GET /v1/requests
// It lists open requests, newest first. ?q= filters by description.
func (h *Handlers) GetOpenRequests(c *gin.Context) {
	requests, err := h.Market.OpenRequests(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err, "Failed to load requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
	})
}
