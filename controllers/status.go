package controllers

import (
	"net/http"

	"Qishui/services/game"

	"github.com/gin-gonic/gin"
)

// @Summary Liveness probe
// @Description Responds with pong. Used by deployment health checks.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Server health and room count
// @Description Reports server status along with the number of live game rooms.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func Health(registry *game.RoomRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"rooms":  registry.Count(),
		})
	}
}
