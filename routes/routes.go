package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"panditseva/handlers"
	"panditseva/middleware"
)

// RegisterBookingRoutes sets up the search and confirmation endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/booking")
	{
		api.POST("/search", handlers.SearchHandler)
		api.POST("/voice-search", handlers.VoiceSearchHandler)
		api.POST("/confirm", handlers.ConfirmHandler)
	}
}

// RegisterCatalogRoutes registers read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/pujas", handlers.ListPujasHandler)
		api.GET("/pujas/:name/samagri", handlers.SamagriHandler)
		api.GET("/pujas/:name/guide", handlers.GuideHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Namaste, PanditSeva here"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r)
	RegisterCatalogRoutes(r)
}
