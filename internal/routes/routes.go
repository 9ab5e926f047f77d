package routes

import (
	"net/http"

	"github.com/01moynul/locify-golang/internal/handlers"
	"github.com/01moynul/locify-golang/internal/logger"
	"github.com/01moynul/locify-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Options carries the router settings that are not handler dependencies.
type Options struct {
	JWTSecret  []byte
	CORSOrigin string
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(h.Log))
	router.Use(logger.GinLogger(h.Log))

	// --- APPLY THE CORS GUARD ---
	router.Use(middleware.CORS(opts.CORSOrigin))

	// Uploaded images are served straight from disk.
	router.Static("/uploads", h.UploadDir)

	v1 := router.Group("/v1")

	// Public reads still work when the caller holds a stale token.
	public := v1.Group("", middleware.OptionalIdentify(opts.JWTSecret))
	{
		// --- Ping Route (Public) ---
		public.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Landing Feed (Public) ---
		public.GET("/feed", h.GetFeed)

		// --- Open Item Requests (Public) ---
		public.GET("/requests", h.GetOpenRequests)
	}

	protected := v1.Group("", middleware.Identify(opts.JWTSecret))
	{
		// --- Item Requests ---
		protected.POST("/requests", h.CreateRequest)

		// --- Vendor Responses ---
		protected.POST("/requests/:id/responses", h.CreateResponse)
		protected.GET("/requests/:id/responses", h.GetRequestResponses)

		// --- Vendor Store Profile ---
		protected.GET("/vendor/store", h.GetMyStore)
		protected.PUT("/vendor/store", h.SaveMyStore)

		// --- Images ---
		protected.POST("/upload", h.UploadImage)

		// --- Notification Routes ---
		protected.GET("/notifications", h.GetMyNotifications)
		protected.PATCH("/notifications/:id/read", h.MarkNotificationAsRead)
	}

	return router
}
