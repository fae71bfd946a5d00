package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/db"
	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/updates"
	"github.com/vgtracker-dev/vgtracker/internal/utils"
)

type CreateReviewRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	GameID  uint   `json:"game_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// GameReviewView is a review joined with its author and game title, for the
// per-game listing.
type GameReviewView struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	GameID     uint      `json:"game_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
	Username   string    `json:"username"`
	Title      string    `json:"title"`
}

// UserReviewView is a review joined with game fields, for the per-user
// listing.
type UserReviewView struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	GameID     uint      `json:"game_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
	Title      string    `json:"title"`
	Platform   string    `json:"platform"`
}

type ReviewHandler struct {
	DB *gorm.DB
}

func NewReviewHandler(database *gorm.DB) *ReviewHandler {
	return &ReviewHandler{DB: database}
}

func (h *ReviewHandler) ListByGame(ctx *gin.Context) {
	gameID, err := utils.IDParam(ctx, "game_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var reviews []GameReviewView

	err = h.DB.Model(&models.Review{}).
		Select("reviews.id, reviews.user_id, reviews.game_id, reviews.rating, "+
			"reviews.comment, reviews.review_date, users.username, games.title").
		Joins("JOIN users ON users.id = reviews.user_id").
		Joins("JOIN games ON games.id = reviews.game_id").
		Where("reviews.game_id = ?", gameID).
		Order("reviews.review_date DESC").
		Scan(&reviews).Error

	if err != nil {
		log.Printf("Failed to list reviews for game %d: %v", gameID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if reviews == nil {
		reviews = []GameReviewView{}
	}

	ctx.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListByUser(ctx *gin.Context) {
	userID, err := utils.IDParam(ctx, "user_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var reviews []UserReviewView

	err = h.DB.Model(&models.Review{}).
		Select("reviews.id, reviews.user_id, reviews.game_id, reviews.rating, "+
			"reviews.comment, reviews.review_date, games.title, games.platform").
		Joins("JOIN games ON games.id = reviews.game_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.review_date DESC").
		Scan(&reviews).Error

	if err != nil {
		log.Printf("Failed to list reviews for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if reviews == nil {
		reviews = []UserReviewView{}
	}

	ctx.JSON(http.StatusOK, reviews)
}

// CreateReview stamps the creation date server-side. The store's composite
// unique index rejects a second review for the same (user, game) pair.
func (h *ReviewHandler) CreateReview(ctx *gin.Context) {
	var req CreateReviewRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	review := models.Review{
		UserID:     req.UserID,
		GameID:     req.GameID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Now(),
	}

	if err := h.DB.Create(&review).Error; err != nil {
		if db.IsUniqueViolation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this game"})
			return
		}
		log.Printf("Failed to create review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// UpdateReview applies a partial update to rating and comment.
func (h *ReviewHandler) UpdateReview(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var req UpdateReviewRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var fields []updates.Field

	if req.Rating != nil {
		fields = append(fields, updates.Field{Column: "rating", Value: *req.Rating})
	}
	if req.Comment != nil {
		fields = append(fields, updates.Field{Column: "comment", Value: *req.Comment})
	}

	query, args, err := updates.Statement("reviews", fields, "id", id,
		[]string{"id", "user_id", "game_id", "rating", "comment", "review_date"})

	if errors.Is(err, updates.ErrNoFields) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var review models.Review
	tx := h.DB.Raw(query, args...).Scan(&review)

	if tx.Error != nil {
		log.Printf("Failed to update review %d: %v", id, tx.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if tx.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	ctx.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.Review

	if err := h.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		} else {
			log.Printf("Failed to fetch review %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&review).Error; err != nil {
		log.Printf("Failed to delete review %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
