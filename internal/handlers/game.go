package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/catalog"
	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/utils"
)

type GameRequest struct {
	Title       string     `json:"title" binding:"required"`
	Platform    string     `json:"platform" binding:"required"`
	Genre       string     `json:"genre"`
	Developer   string     `json:"developer"`
	ReleaseDate *time.Time `json:"release_date"`
}

type GameHandler struct {
	DB *gorm.DB
}

func NewGameHandler(database *gorm.DB) *GameHandler {
	return &GameHandler{DB: database}
}

func (h *GameHandler) ListGames(ctx *gin.Context) {
	var games []models.Game

	if err := h.DB.Order("title").Find(&games).Error; err != nil {
		log.Printf("Failed to list games: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if games == nil {
		games = []models.Game{}
	}

	ctx.JSON(http.StatusOK, games)
}

// GetFilterFacets derives the filter dropdown values from the catalog itself.
func (h *GameHandler) GetFilterFacets(ctx *gin.Context) {
	var games []models.Game

	if err := h.DB.Find(&games).Error; err != nil {
		log.Printf("Failed to load games for facets: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, catalog.Distinct(games))
}

func (h *GameHandler) GetGame(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game

	if err := h.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			log.Printf("Failed to fetch game %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (h *GameHandler) CreateGame(ctx *gin.Context) {
	var req GameRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	game := models.Game{
		Title:       req.Title,
		Platform:    req.Platform,
		Genre:       req.Genre,
		Developer:   req.Developer,
		ReleaseDate: req.ReleaseDate,
	}

	if err := h.DB.Create(&game).Error; err != nil {
		log.Printf("Failed to create game: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, game)
}

// UpdateGame overwrites all five fields; games have no partial update.
func (h *GameHandler) UpdateGame(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var req GameRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var game models.Game

	if err := h.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			log.Printf("Failed to fetch game %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	game.Title = req.Title
	game.Platform = req.Platform
	game.Genre = req.Genre
	game.Developer = req.Developer
	game.ReleaseDate = req.ReleaseDate

	if err := h.DB.Save(&game).Error; err != nil {
		log.Printf("Failed to update game %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, game)
}

// DeleteGame removes a game; the store cascades the delete to library entries
// and reviews.
func (h *GameHandler) DeleteGame(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game

	if err := h.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			log.Printf("Failed to fetch game %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&game).Error; err != nil {
		log.Printf("Failed to delete game %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}
