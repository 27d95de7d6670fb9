package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment
// and an optional .env file.
type Config struct {
	Env  string
	Port string

	DB DBConfig

	// HoldingsTable is the table holding the stock records. Externally
	// supplied so multiple deployments can share one database.
	HoldingsTable string

	PriceAPI PriceAPIConfig

	// EnableKill exposes GET /kill, which terminates the process on
	// every invocation. Off unless explicitly opted in.
	EnableKill bool
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// PriceAPIConfig holds settings for the external stock pricing API.
type PriceAPIConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads configuration from the environment. The pricing API key is
// required; everything else falls back to development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "holdings_user")
	v.SetDefault("DB_PASSWORD", "holdings_password")
	v.SetDefault("DB_NAME", "holdings")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("HOLDINGS_TABLE", "holdings")
	v.SetDefault("STOCK_PRICE_API_URL", "https://api.api-ninjas.com/v1/stockprice")
	v.SetDefault("ENABLE_KILL_ENDPOINT", false)

	cfg := &Config{
		Env:  v.GetString("APP_ENV"),
		Port: v.GetString("SERVER_PORT"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		HoldingsTable: v.GetString("HOLDINGS_TABLE"),
		PriceAPI: PriceAPIConfig{
			BaseURL: v.GetString("STOCK_PRICE_API_URL"),
			APIKey:  v.GetString("STOCK_PRICE_API_KEY"),
		},
		EnableKill: v.GetBool("ENABLE_KILL_ENDPOINT"),
	}

	if cfg.PriceAPI.APIKey == "" {
		return nil, fmt.Errorf("STOCK_PRICE_API_KEY is required")
	}

	return cfg, nil
}

// DSN builds a postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
