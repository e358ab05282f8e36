package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome answers the root path with a short identification payload.
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Spendboard API v1"})
}
