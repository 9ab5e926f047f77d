package handlers

import (
	"net/http"

	"github.com/01moynul/locify-golang/internal/marketplace"
	"github.com/01moynul/locify-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CreateResponse is the handler for POST /v1/requests/:id/responses
// The authenticated user answers request :id as a vendor.
func (h *Handlers) CreateResponse(c *gin.Context) {
	// 1. --- Get User ID ---
	vendorID := middleware.UserID(c)
	if vendorID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	// 2. --- Bind & Validate JSON ---
	var form marketplace.ResponseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	form.RequestID = c.Param("id")

	// 3. --- Submit ---
	resp, err := h.Market.SubmitResponse(c.Request.Context(), vendorID, &form)
	if err != nil {
		h.fail(c, err, "Failed to send response. Please try again.")
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Your response has been sent!",
		"response": resp,
	})
}

// GetRequestResponses is the handler for GET /v1/requests/:id/responses
// Only the user who posted the request may read its responses.
func (h *Handlers) GetRequestResponses(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	responses, err := h.Market.ResponsesForRequest(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to load responses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"responses": responses,
	})
}
