package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hauldesk/haulcycle-backend-go/internal/api"
	"github.com/hauldesk/haulcycle-backend-go/internal/config"
	"github.com/hauldesk/haulcycle-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	router := api.SetupRouter(cfg, db)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
