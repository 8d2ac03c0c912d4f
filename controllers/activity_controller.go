package controllers

import (
	"net/http"
	"strconv"

	"github.com/ancientastronautunearthed/fiber-app/config"
	"github.com/ancientastronautunearthed/fiber-app/services"

	"github.com/gin-gonic/gin"
)

// ListActivities returns the user's recent activity feed.
func ListActivities(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activities, err := services.ListActivities(config.DB, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}
