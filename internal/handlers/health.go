package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "VG Tracker API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
