package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litshelf-backend/internal/shared/middleware"
	"litshelf-backend/internal/shared/response"
	"litshelf-backend/pkg/container"
)

func setupRouter(engine *gin.Engine, c *container.Container) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.CORS())

	engine.GET("/health", healthHandler(c))

	api := engine.Group("/api/v1")
	auth := middleware.Auth(c.JWTManager)

	setupCatalogRoutes(api, c, auth)
	setupCollectionRoutes(api, c, auth)
	setupReadingListRoutes(api, c, auth)
	setupReviewRoutes(api, c, auth)
	setupProfileRoutes(api, c, auth)
}

func setupCatalogRoutes(api *gin.RouterGroup, c *container.Container, _ gin.HandlerFunc) {
	books := api.Group("/books")
	{
		books.GET("/search", c.CatalogHandler.SearchBooks)
		books.GET("/:id", c.CatalogHandler.GetBook)
		books.GET("/:id/reviews", c.ReviewHandler.ListByBook)
		books.GET("/:id/reviews/stats", c.ReviewHandler.Statistics)
	}
}

func setupCollectionRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	collections := api.Group("/collections")
	{
		collections.POST("/search", c.CollectionHandler.SearchCollections)
		collections.GET("/:id/books", c.CollectionHandler.GetEntries)
	}

	owned := api.Group("/collections", auth)
	{
		owned.POST("", c.CollectionHandler.CreateCollection)
		owned.GET("", c.CollectionHandler.ListCollections)
		owned.DELETE("/:id", c.CollectionHandler.DeleteCollection)
		owned.POST("/:id/books", c.CollectionHandler.AddBook)
		owned.DELETE("/:id/books/:bookId", c.CollectionHandler.RemoveBook)
		owned.PATCH("/:id/books/:bookId/position", c.CollectionHandler.MoveEntry)
	}
}

func setupReadingListRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	readingList := api.Group("/reading-list", auth)
	{
		readingList.GET("", c.ReadingListHandler.ListByStatus)
		readingList.PUT("", c.ReadingListHandler.AddOrMoveBook)
		readingList.DELETE("/:bookId", c.ReadingListHandler.RemoveBook)
	}
}

func setupReviewRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	reviews := api.Group("/reviews", auth)
	{
		reviews.POST("", c.ReviewHandler.SubmitReview)
		reviews.GET("", c.ReviewHandler.ListMine)
		reviews.PUT("/:id", c.ReviewHandler.EditReview)
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}
}

func setupProfileRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("/me", auth, c.ProfileHandler.GetMe)
		profiles.PUT("/me", auth, c.ProfileHandler.UpdateMe)
		profiles.GET("/:username", c.ProfileHandler.GetByUsername)
	}

	users := api.Group("/users")
	{
		users.GET("/:id/followers", c.ProfileHandler.ListFollowers)
		users.GET("/:id/following", c.ProfileHandler.ListFollowing)
		users.POST("/:id/follow", auth, c.ProfileHandler.Follow)
		users.DELETE("/:id/follow", auth, c.ProfileHandler.Unfollow)
	}
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
