package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/db"
	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/stats"
	"github.com/vgtracker-dev/vgtracker/internal/updates"
	"github.com/vgtracker-dev/vgtracker/internal/utils"
)

// UpdateUserRequest carries the optional profile fields. Pointers distinguish
// an omitted field from one explicitly set to the empty string.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(database *gorm.DB) *UserHandler {
	return &UserHandler{DB: database}
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	var users []models.User

	if err := h.DB.Order("id").Find(&users).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if users == nil {
		users = []models.User{}
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User

	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserStats(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	libraryStats, err := stats.ForUser(h.DB, id)

	if err != nil {
		log.Printf("Failed to aggregate stats for user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, libraryStats)
}

// UpdateUser applies a partial profile update: only the supplied fields reach
// the statement, a supplied password is stored as a bcrypt hash, and a
// username/email collision is reported as a conflict rather than a generic
// failure.
func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	id, err := utils.IDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var fields []updates.Field

	if req.Username != nil {
		fields = append(fields, updates.Field{Column: "username", Value: strings.TrimSpace(*req.Username)})
	}
	if req.Email != nil {
		fields = append(fields, updates.Field{Column: "email", Value: strings.ToLower(strings.TrimSpace(*req.Email))})
	}
	if req.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		fields = append(fields, updates.Field{Column: "password_hash", Value: string(passwordHash)})
	}

	query, args, err := updates.Statement("users", fields, "id", id,
		[]string{"id", "username", "email", "is_admin"})

	if errors.Is(err, updates.ErrNoFields) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var user models.User
	tx := h.DB.Raw(query, args...).Scan(&user)

	if tx.Error != nil {
		if db.IsUniqueViolation(tx.Error) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		log.Printf("Failed to update user %d: %v", id, tx.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if tx.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
