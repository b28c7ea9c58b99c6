package routes

import (
	"net/http"
	"strings"
	"time"

	artformsapi "kalakriti/internal/api/artforms"
	artistsapi "kalakriti/internal/api/artists"
	artworksapi "kalakriti/internal/api/artworks"
	authapi "kalakriti/internal/api/auth"
	usersapi "kalakriti/internal/api/users"
	"kalakriti/internal/app/http/middleware"
	"kalakriti/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Traditional Artforms Platform API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.GET("/artforms", artformsapi.ListArtforms)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.SanitizeAndCleanInputMiddleware())
	authGroup.POST("/register", authapi.Register)
	authGroup.POST("/login", authapi.Login)
	authGroup.GET("/google", authapi.GoogleStart)
	authGroup.GET("/google/callback", authapi.GoogleCallback)
	authGroup.GET("/me", middleware.AuthMiddleware(), usersapi.GetCurrentUser)

	// Artworks
	api.GET("/artworks", artworksapi.ListArtworks)
	api.GET("/artworks/featured/list", artworksapi.FeaturedArtworks)
	api.GET("/artworks/:id", artworksapi.GetArtwork)

	artworkAuth := api.Group("/artworks")
	artworkAuth.Use(middleware.AuthMiddleware())
	artworkAuth.POST("", middleware.RequireUserType(users.TypeArtist), middleware.SanitizeAndCleanInputMiddleware(), artworksapi.CreateArtwork)
	artworkAuth.PUT("/:id", middleware.RequireUserType(users.TypeArtist), middleware.SanitizeAndCleanInputMiddleware(), artworksapi.UpdateArtwork)
	artworkAuth.DELETE("/:id", middleware.RequireUserType(users.TypeArtist), artworksapi.DeleteArtwork)
	artworkAuth.POST("/:id/like", artworksapi.ToggleLike)
	artworkAuth.POST("/:id/purchase", artworksapi.PurchaseArtwork)

	// Artists
	api.GET("/artists", artistsapi.ListArtists)
	api.GET("/artists/featured/list", artistsapi.FeaturedArtists)
	api.GET("/artists/search/query", artistsapi.SearchArtists)
	api.GET("/artists/:id", artistsapi.GetArtist)
	api.GET("/artists/:id/artworks", artistsapi.ListArtistArtworks)

	artistAuth := api.Group("/artists")
	artistAuth.Use(middleware.AuthMiddleware())
	artistAuth.PUT("/profile", middleware.RequireUserType(users.TypeArtist), middleware.SanitizeAndCleanInputMiddleware(), artistsapi.UpdateProfile)
	artistAuth.POST("/:id/follow", artistsapi.ToggleFollow)

	// Static frontend
	r.Static("/css", "./public/css")
	r.Static("/js", "./public/js")
	r.StaticFile("/", "./public/index.html")

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "API endpoint not found"})
			return
		}
		c.File("./public/index.html")
	})
}
