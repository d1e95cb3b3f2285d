package main

import (
	"log"
	"os"

	"Qishui/middleware"
	"Qishui/routes"
	"Qishui/services/game"
	socket_io "Qishui/services/socket_io"
	socketio_types "Qishui/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Qishui API
// @version 1.0
// @description Gin-Gonic server for the "Soda Smugglers" game
// @BasePath /
// @paths
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// All game state lives in process memory, keyed by room code
	registry := game.NewRoomRegistry()

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, registry)

	sio := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	sio.Start(r, registry)
	log.Println("Socket server started")

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		if os.Getenv("USE_HTTPS") == "true" {
			port = "443"
		} else {
			port = "8080"
		}
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("TLS_CERT_FILE")
		keyFile := os.Getenv("TLS_KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
