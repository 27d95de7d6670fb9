package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("STOCK_PRICE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STOCK_PRICE_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STOCK_PRICE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "holdings", cfg.HoldingsTable)
	assert.Equal(t, "https://api.api-ninjas.com/v1/stockprice", cfg.PriceAPI.BaseURL)
	assert.False(t, cfg.EnableKill, "kill endpoint must be off unless opted in")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOCK_PRICE_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HOLDINGS_TABLE", "stocks1")
	t.Setenv("STOCK_PRICE_API_URL", "http://localhost:1234/prices")
	t.Setenv("ENABLE_KILL_ENDPOINT", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "stocks1", cfg.HoldingsTable)
	assert.Equal(t, "http://localhost:1234/prices", cfg.PriceAPI.BaseURL)
	assert.True(t, cfg.EnableKill)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestDBConfigDSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "holdings_user",
		Password: "secret",
		Name:     "holdings",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=holdings_user password=secret dbname=holdings sslmode=disable",
		cfg.DSN())
}
