package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brickfolio/figure-catalog/app/catalog"
	"github.com/brickfolio/figure-catalog/app/categories"
	"github.com/brickfolio/figure-catalog/app/importer"
	"github.com/brickfolio/figure-catalog/app/seed"
	"github.com/brickfolio/figure-catalog/config"
	"github.com/brickfolio/figure-catalog/models"
)

func main() {
	// Optional in production, where the environment is set externally.
	_ = godotenv.Load()

	log, err := config.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := config.ConnectToDB()
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}

	figuresRepo := models.NewFiguresRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)

	importService := importer.NewService(figuresRepo, categoriesRepo)
	catalogService := catalog.NewService(figuresRepo, categoriesRepo)

	ctx := context.Background()
	if err := seed.Run(ctx, log, os.Getenv("SEED_DATA_PATH"), figuresRepo, importService); err != nil {
		log.Fatal("startup seed import failed", zap.Error(err))
	}
	if count, err := figuresRepo.Count(ctx); err == nil {
		log.Info("catalog ready", zap.Int64("figures", count))
	}

	catalogHandler := catalog.NewCatalogHandler(catalogService)
	categoryHandler := categories.NewCategoryHandler(catalogService)
	importHandler := importer.NewHandler(importService, os.Getenv("IMPORT_TOKEN"), log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetFigure)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /import", importHandler.HandleUpload)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
