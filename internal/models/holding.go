package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// API clients expect plain JSON numbers for prices and valuations.
	decimal.MarshalJSONWithoutQuotes = true
}

// Holding represents a single tracked stock position.
type Holding struct {
	ID            string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Symbol        string          `json:"symbol" gorm:"column:symbol;type:varchar(50);not null;index"`
	Name          string          `json:"name" gorm:"column:name;type:varchar(255)"`
	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"column:purchase_price;type:decimal(20,8)"`
	PurchaseDate  string          `json:"purchase_date" gorm:"column:purchase_date;type:varchar(64)"`
	Shares        int64           `json:"shares" gorm:"column:shares;type:bigint"`

	CreatedAt time.Time `json:"-" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"-" gorm:"column:updated_at;autoUpdateTime"`
}

// IsPostValid reports whether the holding is acceptable for creation.
// Only the symbol is required at create time.
func (h *Holding) IsPostValid() bool {
	return strings.TrimSpace(h.Symbol) != ""
}

// IsStockValid reports whether the holding is acceptable for a full update.
// Stricter than IsPostValid: updates carry the whole document, so the id,
// symbol, name and purchase date must all be present. The two predicates
// are intentionally kept separate.
func (h *Holding) IsStockValid() bool {
	return strings.TrimSpace(h.ID) != "" &&
		strings.TrimSpace(h.Symbol) != "" &&
		strings.TrimSpace(h.Name) != "" &&
		strings.TrimSpace(h.PurchaseDate) != ""
}

// ApplyDefaults fills optional free-form fields with the literal "NA"
// when they are blank.
func (h *Holding) ApplyDefaults() {
	if strings.TrimSpace(h.Name) == "" {
		h.Name = "NA"
	}
	if strings.TrimSpace(h.PurchaseDate) == "" {
		h.PurchaseDate = "NA"
	}
}

// HoldingFilter represents exact-match criteria for querying holdings.
// Nil fields are not applied; a holding matches only if every supplied
// criterion matches exactly.
type HoldingFilter struct {
	Symbol        *string
	Name          *string
	PurchasePrice *decimal.Decimal
	PurchaseDate  *string
	Shares        *int64
}

// IsEmpty reports whether no criteria were supplied.
func (f *HoldingFilter) IsEmpty() bool {
	return f.Symbol == nil && f.Name == nil && f.PurchasePrice == nil &&
		f.PurchaseDate == nil && f.Shares == nil
}

// Matches reports whether the holding satisfies every supplied criterion.
func (f *HoldingFilter) Matches(h *Holding) bool {
	if f.Symbol != nil && h.Symbol != *f.Symbol {
		return false
	}
	if f.Name != nil && h.Name != *f.Name {
		return false
	}
	if f.PurchasePrice != nil && !h.PurchasePrice.Equal(*f.PurchasePrice) {
		return false
	}
	if f.PurchaseDate != nil && h.PurchaseDate != *f.PurchaseDate {
		return false
	}
	if f.Shares != nil && h.Shares != *f.Shares {
		return false
	}
	return true
}

// StockValue is the valuation of a single holding at the current quote.
type StockValue struct {
	Symbol     string          `json:"symbol"`
	Ticker     decimal.Decimal `json:"ticker"`
	StockValue decimal.Decimal `json:"stock value"`
}

// PortfolioValue is the aggregate valuation across all holdings.
type PortfolioValue struct {
	PortfolioValue decimal.Decimal `json:"portfolio value"`
}
