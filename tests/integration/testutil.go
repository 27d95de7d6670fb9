package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"holdings-backend/internal/db"
	"holdings-backend/internal/handlers"
	"holdings-backend/internal/repositories"
	"holdings-backend/internal/services"
)

const holdingsTable = "holdings"

type testEnv struct {
	container testcontainers.Container
	api       *httptest.Server
	prices    *httptest.Server
	quotes    map[string]decimal.Decimal
}

// setupEnv starts a PostgreSQL container, a stub pricing API and the
// full handler stack wired the same way as cmd/server.
func setupEnv(t *testing.T) *testEnv {
	if testing.Short() {
		t.Skip("skipping container-based tests in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	database := &db.DB{DB: gormDB}
	if err := repositories.AutoMigrate(database, holdingsTable); err != nil {
		t.Fatalf("Failed to migrate holdings table: %v", err)
	}

	env := &testEnv{
		container: pgContainer,
		quotes:    map[string]decimal.Decimal{},
	}

	// Stub pricing API in api-ninjas response shape.
	env.prices = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			http.Error(w, "missing api key", http.StatusUnauthorized)
			return
		}
		ticker := r.URL.Query().Get("ticker")
		quote, ok := env.quotes[ticker]
		if !ok {
			http.Error(w, "unknown ticker", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ticker": ticker,
			"price":  quote,
		})
	}))

	logger := zap.NewNop()
	holdingService := services.NewHoldingService(
		repositories.NewHoldingRepository(database, holdingsTable))
	valuationService := services.NewValuationService(holdingService,
		services.NewNinjasPriceProvider("test-key", env.prices.URL))

	router := handlers.NewRouter(
		handlers.NewHoldingHandler(holdingService, logger),
		handlers.NewValuationHandler(valuationService, logger),
		handlers.NewOpsHandler(logger),
		false,
	)
	env.api = httptest.NewServer(router)

	t.Cleanup(func() {
		env.api.Close()
		env.prices.Close()
		_ = pgContainer.Terminate(context.Background())
	})

	return env
}
