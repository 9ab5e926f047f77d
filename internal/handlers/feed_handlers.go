package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFeed is the handler for GET /v1/feed
// It returns the landing page vendor responses joined with their stores.
func (h *Handlers) GetFeed(c *gin.Context) {
	entries, err := h.Market.AssembleFeed(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to load vendor responses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"responses": entries,
	})
}
