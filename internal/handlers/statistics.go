package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/stats"
)

type StatisticsHandler struct {
	DB *gorm.DB
}

func NewStatisticsHandler(database *gorm.DB) *StatisticsHandler {
	return &StatisticsHandler{DB: database}
}

func (h *StatisticsHandler) PopularityByStatus(ctx *gin.Context) {
	status := ctx.Param("status")

	rows, err := stats.PopularityByStatus(h.DB, status)

	if err != nil {
		log.Printf("Failed to compute popularity by status %q: %v", status, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if rows == nil {
		rows = []stats.GamePopularity{}
	}

	ctx.JSON(http.StatusOK, rows)
}

func (h *StatisticsHandler) RatingByGenre(ctx *gin.Context) {
	genre := ctx.Param("genre")

	rows, err := stats.RatingByGenre(h.DB, genre)

	if err != nil {
		log.Printf("Failed to compute ratings by genre %q: %v", genre, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if rows == nil {
		rows = []stats.GameRating{}
	}

	ctx.JSON(http.StatusOK, rows)
}

func (h *StatisticsHandler) DeveloperCounts(ctx *gin.Context) {
	rows, err := stats.DeveloperCounts(h.DB)

	if err != nil {
		log.Printf("Failed to compute developer counts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if rows == nil {
		rows = []stats.DeveloperCount{}
	}

	ctx.JSON(http.StatusOK, rows)
}

func (h *StatisticsHandler) TopCollectors(ctx *gin.Context) {
	rows, err := stats.TopCollectors(h.DB)

	if err != nil {
		log.Printf("Failed to compute top collectors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if rows == nil {
		rows = []stats.Collector{}
	}

	ctx.JSON(http.StatusOK, rows)
}
