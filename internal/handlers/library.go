package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/updates"
	"github.com/vgtracker-dev/vgtracker/internal/utils"
)

type CreateLibraryEntryRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	GameID     uint   `json:"game_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	UserRating *int   `json:"user_rating"`
	Notes      string `json:"notes"`
}

type UpdateLibraryEntryRequest struct {
	Status     *string `json:"status"`
	UserRating *int    `json:"user_rating"`
	Notes      *string `json:"notes"`
}

// LibraryEntryView is a library entry joined with the fields of its game.
type LibraryEntryView struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	GameID      uint       `json:"game_id"`
	Status      string     `json:"status"`
	UserRating  *int       `json:"user_rating"`
	Notes       string     `json:"notes"`
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	Genre       string     `json:"genre"`
	Developer   string     `json:"developer"`
	ReleaseDate *time.Time `json:"release_date"`
}

type LibraryHandler struct {
	DB *gorm.DB
}

func NewLibraryHandler(database *gorm.DB) *LibraryHandler {
	return &LibraryHandler{DB: database}
}

func (h *LibraryHandler) ListByUser(ctx *gin.Context) {
	userID, err := utils.IDParam(ctx, "user_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var entries []LibraryEntryView

	err = h.DB.Model(&models.LibraryEntry{}).
		Select("library_entries.id, library_entries.user_id, library_entries.game_id, "+
			"library_entries.status, library_entries.user_rating, library_entries.notes, "+
			"games.title, games.platform, games.genre, games.developer, games.release_date").
		Joins("JOIN games ON games.id = library_entries.game_id").
		Where("library_entries.user_id = ?", userID).
		Order("library_entries.id").
		Scan(&entries).Error

	if err != nil {
		log.Printf("Failed to list library entries for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if entries == nil {
		entries = []LibraryEntryView{}
	}

	ctx.JSON(http.StatusOK, entries)
}

func (h *LibraryHandler) CreateEntry(ctx *gin.Context) {
	var req CreateLibraryEntryRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry := models.LibraryEntry{
		UserID:     req.UserID,
		GameID:     req.GameID,
		Status:     req.Status,
		UserRating: req.UserRating,
		Notes:      req.Notes,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		log.Printf("Failed to create library entry: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

// UpdateEntry applies a partial update to status, rating and notes.
func (h *LibraryHandler) UpdateEntry(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid library entry ID"})
		return
	}

	var req UpdateLibraryEntryRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var fields []updates.Field

	if req.Status != nil {
		fields = append(fields, updates.Field{Column: "status", Value: *req.Status})
	}
	if req.UserRating != nil {
		fields = append(fields, updates.Field{Column: "user_rating", Value: *req.UserRating})
	}
	if req.Notes != nil {
		fields = append(fields, updates.Field{Column: "notes", Value: *req.Notes})
	}

	query, args, err := updates.Statement("library_entries", fields, "id", id,
		[]string{"id", "user_id", "game_id", "status", "user_rating", "notes"})

	if errors.Is(err, updates.ErrNoFields) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var entry models.LibraryEntry
	tx := h.DB.Raw(query, args...).Scan(&entry)

	if tx.Error != nil {
		log.Printf("Failed to update library entry %d: %v", id, tx.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if tx.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Library entry not found"})
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

func (h *LibraryHandler) DeleteEntry(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid library entry ID"})
		return
	}

	var entry models.LibraryEntry

	if err := h.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Library entry not found"})
		} else {
			log.Printf("Failed to fetch library entry %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&entry).Error; err != nil {
		log.Printf("Failed to delete library entry %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Library entry deleted successfully"})
}
