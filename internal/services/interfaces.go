package services

import (
	"context"

	"github.com/shopspring/decimal"

	"holdings-backend/internal/models"
)

// HoldingService defines the interface for holding record operations
type HoldingService interface {
	CreateHolding(ctx context.Context, h *models.Holding) (string, error)
	GetHolding(ctx context.Context, id string) (*models.Holding, error)
	ListHoldings(ctx context.Context) ([]*models.Holding, error)
	ListHoldingsWithFilter(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error)
	UpdateHolding(ctx context.Context, h *models.Holding) error
	DeleteHolding(ctx context.Context, id string) error
}

// ValuationService defines the interface for holding valuation operations
type ValuationService interface {
	GetStockValue(ctx context.Context, id string) (*models.StockValue, error)
	GetPortfolioValue(ctx context.Context) (*models.PortfolioValue, error)
}

// PriceProvider defines the interface for external stock quote providers
type PriceProvider interface {
	GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error)
}
