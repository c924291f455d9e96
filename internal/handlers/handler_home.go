package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getStatus answers the hosting platform's root probe.
func getStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "API ayakta"})
}

// getAPIHome godoc
// @Summary API banner
// @Tags root
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func getAPIHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "İzin Yönetim Sistemi API"})
}

// ping godoc
// @Summary Keep-alive probe
// @Tags root
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /ping [get]
func ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"pong": true})
}

// registerHomeRoutes registers the banner and keep-alive routes
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getAPIHome)
	group.GET("/ping", ping)
}
