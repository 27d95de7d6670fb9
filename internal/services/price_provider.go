package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	apperrors "holdings-backend/internal/errors"
)

const defaultNinjasBaseURL = "https://api.api-ninjas.com/v1/stockprice"

// NinjasPriceProvider fetches current stock quotes from api-ninjas.
// Authentication uses a static key sent with every request; the key is
// supplied through configuration, never compiled in.
type NinjasPriceProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNinjasPriceProvider creates a new api-ninjas quote provider. An
// empty baseURL falls back to the public endpoint; tests point it at a
// local server.
func NewNinjasPriceProvider(apiKey, baseURL string) PriceProvider {
	if baseURL == "" {
		baseURL = defaultNinjasBaseURL
	}
	return &NinjasPriceProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetQuote returns the current unit price for the ticker symbol.
func (p *NinjasPriceProvider) GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	reqURL := p.baseURL + "?ticker=" + url.QueryEscape(symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, &apperrors.ErrUpstream{Provider: "api-ninjas", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &apperrors.ErrUpstream{Provider: "api-ninjas", Status: resp.StatusCode}
	}

	var payload struct {
		Ticker string          `json:"ticker"`
		Price  decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, &apperrors.ErrUpstream{Provider: "api-ninjas", Err: err}
	}

	return payload.Price, nil
}
