package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"holdings-backend/internal/models"
)

// valuationService implements the ValuationService interface
type valuationService struct {
	holdings HoldingService
	prices   PriceProvider
}

// NewValuationService creates a new valuation service
func NewValuationService(holdings HoldingService, prices PriceProvider) ValuationService {
	return &valuationService{holdings: holdings, prices: prices}
}

// GetStockValue fetches the holding, queries the pricing provider for
// the current quote and computes quote × shares. Returns (nil, nil)
// when the holding does not exist.
func (s *valuationService) GetStockValue(ctx context.Context, id string) (*models.StockValue, error) {
	h, err := s.holdings.GetHolding(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}

	quote, err := s.prices.GetQuote(ctx, h.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", h.Symbol, err)
	}

	return &models.StockValue{
		Symbol:     h.Symbol,
		Ticker:     quote,
		StockValue: quote.Mul(decimal.NewFromInt(h.Shares)),
	}, nil
}

// GetPortfolioValue queries the provider once per holding, serially,
// and sums the unit quotes. Note: the total deliberately ignores share
// counts, matching the behavior the service has always exposed.
func (s *valuationService) GetPortfolioValue(ctx context.Context) (*models.PortfolioValue, error) {
	holdings, err := s.holdings.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, h := range holdings {
		sv, err := s.GetStockValue(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		if sv == nil {
			continue
		}
		total = total.Add(sv.Ticker)
	}

	return &models.PortfolioValue{PortfolioValue: total}, nil
}
