package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHolding_IsPostValid(t *testing.T) {
	tests := []struct {
		name    string
		holding Holding
		want    bool
	}{
		{
			name:    "symbol present",
			holding: Holding{Symbol: "AAPL"},
			want:    true,
		},
		{
			name:    "symbol missing",
			holding: Holding{Name: "Apple Inc."},
			want:    false,
		},
		{
			name:    "symbol blank",
			holding: Holding{Symbol: "   "},
			want:    false,
		},
		{
			name:    "only symbol is required",
			holding: Holding{Symbol: "AAPL"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.holding.IsPostValid())
		})
	}
}

func TestHolding_IsStockValid(t *testing.T) {
	full := Holding{
		ID:           "id-1",
		Symbol:       "AAPL",
		Name:         "Apple Inc.",
		PurchaseDate: "22-02-2024",
	}

	tests := []struct {
		name   string
		mutate func(h *Holding)
		want   bool
	}{
		{name: "all required fields present", mutate: func(h *Holding) {}, want: true},
		{name: "missing id", mutate: func(h *Holding) { h.ID = "" }, want: false},
		{name: "missing symbol", mutate: func(h *Holding) { h.Symbol = "" }, want: false},
		{name: "missing name", mutate: func(h *Holding) { h.Name = "" }, want: false},
		{name: "missing purchase date", mutate: func(h *Holding) { h.PurchaseDate = "" }, want: false},
		{name: "blank name", mutate: func(h *Holding) { h.Name = "  " }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := full
			tt.mutate(&h)
			assert.Equal(t, tt.want, h.IsStockValid())
		})
	}
}

func TestHolding_ApplyDefaults(t *testing.T) {
	h := Holding{Symbol: "AAPL"}
	h.ApplyDefaults()
	assert.Equal(t, "NA", h.Name)
	assert.Equal(t, "NA", h.PurchaseDate)

	h = Holding{Symbol: "AAPL", Name: "Apple Inc.", PurchaseDate: "22-02-2024"}
	h.ApplyDefaults()
	assert.Equal(t, "Apple Inc.", h.Name)
	assert.Equal(t, "22-02-2024", h.PurchaseDate)
}

func TestHoldingFilter_Matches(t *testing.T) {
	h := &Holding{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		PurchasePrice: decimal.NewFromFloat(183.63),
		PurchaseDate:  "22-02-2024",
		Shares:        19,
	}

	symbol := "AAPL"
	otherSymbol := "MSFT"
	shares := int64(19)
	price := decimal.NewFromFloat(183.63)
	nearPrice := decimal.NewFromFloat(183.64)

	tests := []struct {
		name   string
		filter HoldingFilter
		want   bool
	}{
		{name: "empty filter matches", filter: HoldingFilter{}, want: true},
		{name: "matching symbol", filter: HoldingFilter{Symbol: &symbol}, want: true},
		{name: "non-matching symbol", filter: HoldingFilter{Symbol: &otherSymbol}, want: false},
		{name: "all criteria must hold", filter: HoldingFilter{Symbol: &symbol, Shares: &shares}, want: true},
		{name: "one mismatch fails", filter: HoldingFilter{Symbol: &otherSymbol, Shares: &shares}, want: false},
		{name: "exact price match", filter: HoldingFilter{PurchasePrice: &price}, want: true},
		{name: "near price is no match", filter: HoldingFilter{PurchasePrice: &nearPrice}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(h))
		})
	}
}

func TestHoldingFilter_IsEmpty(t *testing.T) {
	assert.True(t, (&HoldingFilter{}).IsEmpty())

	name := "Apple Inc."
	assert.False(t, (&HoldingFilter{Name: &name}).IsEmpty())
}
