package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/config"
	"github.com/vgtracker-dev/vgtracker/internal/handlers"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := handlers.NewUserHandler(database)
	gameHandler := handlers.NewGameHandler(database)
	libraryHandler := handlers.NewLibraryHandler(database)
	reviewHandler := handlers.NewReviewHandler(database)
	statisticsHandler := handlers.NewStatisticsHandler(database)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/stats", userHandler.GetUserStats)
			users.PUT("/:id", userHandler.UpdateUser)
		}

		games := api.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.GET("/filters", gameHandler.GetFilterFacets)
			games.GET("/:id", gameHandler.GetGame)
			games.POST("", gameHandler.CreateGame)
			games.PUT("/:id", gameHandler.UpdateGame)
			games.DELETE("/:id", gameHandler.DeleteGame)
		}

		library := api.Group("/library")
		{
			library.GET("/user/:user_id", libraryHandler.ListByUser)
			library.POST("", libraryHandler.CreateEntry)
			library.PUT("/:id", libraryHandler.UpdateEntry)
			library.DELETE("/:id", libraryHandler.DeleteEntry)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/game/:game_id", reviewHandler.ListByGame)
			reviews.GET("/user/:user_id", reviewHandler.ListByUser)
			reviews.POST("", reviewHandler.CreateReview)
			reviews.PUT("/:id", reviewHandler.UpdateReview)
			reviews.DELETE("/:id", reviewHandler.DeleteReview)
		}

		statistics := api.Group("/statistics")
		{
			statistics.GET("/popularity/:status", statisticsHandler.PopularityByStatus)
			statistics.GET("/rating/:genre", statisticsHandler.RatingByGenre)
			statistics.GET("/developers", statisticsHandler.DeveloperCounts)
			statistics.GET("/collectors", statisticsHandler.TopCollectors)
		}
	}

	return r
}
