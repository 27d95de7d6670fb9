package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"holdings-backend/internal/config"
	"holdings-backend/internal/db"
	"holdings-backend/internal/handlers"
	"holdings-backend/internal/logger"
	"holdings-backend/internal/repositories"
	"holdings-backend/internal/services"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Database connection
	database, err := db.Connect(cfg.DB)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zapLogger.Fatal("Database health check failed", zap.Error(err))
	}
	zapLogger.Info("Database connection established",
		zap.String("table", cfg.HoldingsTable))

	if err := repositories.AutoMigrate(database, cfg.HoldingsTable); err != nil {
		zapLogger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Initialize services
	holdingRepo := repositories.NewHoldingRepository(database, cfg.HoldingsTable)
	holdingService := services.NewHoldingService(holdingRepo)
	priceProvider := services.NewNinjasPriceProvider(cfg.PriceAPI.APIKey, cfg.PriceAPI.BaseURL)
	valuationService := services.NewValuationService(holdingService, priceProvider)

	// Initialize handlers and routes
	router := handlers.NewRouter(
		handlers.NewHoldingHandler(holdingService, zapLogger),
		handlers.NewValuationHandler(valuationService, zapLogger),
		handlers.NewOpsHandler(zapLogger),
		cfg.EnableKill,
	)

	if cfg.EnableKill {
		zapLogger.Warn("Kill endpoint is enabled; GET /kill will terminate the process")
	}

	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
