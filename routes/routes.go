package routes

import (
	"os"

	"Qishui/controllers"
	"Qishui/services/game"
	utils "Qishui/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, registry *game.RoomRegistry) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/health", controllers.Health(registry))

	// Serve the built client when a dist directory is configured
	if clientDist := os.Getenv("CLIENT_DIST"); clientDist != "" {
		router.Static("/app", clientDist)
	}
}
