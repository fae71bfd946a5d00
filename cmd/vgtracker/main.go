package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vgtracker-dev/vgtracker/db"
	"github.com/vgtracker-dev/vgtracker/internal/config"
	"github.com/vgtracker-dev/vgtracker/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	database, err := db.Connect(cfg.DSN())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(database)

	log.Printf("Server running on port %s", cfg.ServerPort)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
