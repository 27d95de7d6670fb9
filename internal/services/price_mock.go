package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// MockPriceProvider serves fixed quotes for tests.
type MockPriceProvider struct {
	Quotes map[string]decimal.Decimal
	Err    error
	Calls  int
}

func (m *MockPriceProvider) GetQuote(_ context.Context, symbol string) (decimal.Decimal, error) {
	m.Calls++
	if m.Err != nil {
		return decimal.Zero, m.Err
	}
	q, ok := m.Quotes[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no quote for symbol %s", symbol)
	}
	return q, nil
}
