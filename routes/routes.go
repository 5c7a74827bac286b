package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wren/handlers"
	"wren/middleware"
)

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Auth endpoints are public but rate limited.
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	auth.POST("/register", handlers.Register)
	auth.POST("/login", handlers.Login)

	authed := auth.Group("")
	authed.Use(middleware.Authed())
	authed.GET("/logout", handlers.Logout)
	authed.GET("/status", handlers.Status)

	// Public profile lookup
	router.GET("/api/users/:id", handlers.GetUser)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.Authed())

	// Posts
	protected.POST("/posts", handlers.CreatePost)
	protected.POST("/posts/quote", handlers.CreateQuote)
	protected.GET("/posts/:id", handlers.GetPost)
	protected.DELETE("/posts/:id", handlers.DeletePost)
	protected.GET("/posts/:id/replies", handlers.GetPostReplies)
	protected.POST("/posts/:id/reply", handlers.ReplyToPost)

	// Timeline
	protected.GET("/home", handlers.GetHome)

	// Users
	protected.GET("/users", handlers.GetAllUsers)
	protected.PATCH("/users/:id/bio", handlers.UpdateBio)
	protected.PUT("/users/:id", handlers.UpdateUser)
	protected.POST("/users/:id/follow", handlers.ToggleFollow)
	protected.GET("/users/:id/isFollowing", handlers.IsFollowing)
	protected.GET("/users/:id/posts", handlers.GetUserPosts)
	protected.GET("/users/:id/followers", handlers.GetUserFollowers)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"message": "Endpoint not found."})
			return
		}
		c.Next()
	})

	return router
}
