package main

import (
	"log"
	"net/http"

	"github.com/perceptlab/sensegrid/internal/analysis"
	"github.com/perceptlab/sensegrid/internal/api"
	"github.com/perceptlab/sensegrid/internal/config"
	"github.com/perceptlab/sensegrid/internal/database"
	"github.com/perceptlab/sensegrid/internal/storage"
)

func main() {
	cfg := config.Load()

	logStorage, err := storage.NewLocalStorage(cfg.LogDir)
	if err != nil {
		log.Fatal("Failed to initialize log storage:", err)
	}

	imageStorage, err := storage.NewLocalStorage(cfg.ImageDir)
	if err != nil {
		log.Fatal("Failed to initialize image storage:", err)
	}

	dbConfig := database.Config{
		Type:       cfg.DBType,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		Name:       cfg.DBName,
		SQLitePath: cfg.DBPath,
	}

	db, err := database.NewDB(dbConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	migrator := database.NewMigrator(db.Conn(), cfg.DBType)
	if err := migrator.Run(cfg.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	logRepo := database.NewLogRepository(db)
	analysisService := analysis.NewService(logStorage, analysis.Config{
		MaxCombinations: cfg.MaxCombinations,
	})

	app := &api.App{
		LogStorage:    logStorage,
		ImageStorage:  imageStorage,
		DB:            db,
		LogRepo:       logRepo,
		Analysis:      analysisService,
		MaxUploadSize: cfg.MaxUploadSize,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Log directory: %s", cfg.LogDir)
	log.Printf("Image directory: %s", cfg.ImageDir)
	log.Printf("Database type: %s", cfg.DBType)
	if cfg.DBType == "postgres" {
		log.Printf("Database connection: %s@%s:%d/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	} else {
		log.Printf("Database path: %s", cfg.DBPath)
	}

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
