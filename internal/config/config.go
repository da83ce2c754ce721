package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"shopassist/internal/currency"
)

type Server struct {
	Port              string `json:"port" env:"PORT"`
	RequestTimeoutSec int    `json:"request_timeout_sec" env:"REQUEST_TIMEOUT_SEC" validate:"gt=0"`
}

type Serper struct {
	APIKey   string `json:"api_key" env:"SERPER_API_KEY"`
	Endpoint string `json:"endpoint" env:"SERPER_ENDPOINT"`
	// QuerySuffix is appended to the user query before searching.
	QuerySuffix           string `json:"query_suffix" env:"SERPER_QUERY_SUFFIX"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute" env:"SERPER_MAX_RPM" validate:"gte=0"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec" env:"SERPER_MIN_INTERVAL_SEC" validate:"gte=0"`
	Burst                 int    `json:"burst" env:"SERPER_BURST" validate:"gte=0"`
	CacheTTLSeconds       int    `json:"cache_ttl_sec" env:"SERPER_CACHE_TTL_SEC" validate:"gte=0"`
	CacheMaxItems         int    `json:"cache_max_items" env:"SERPER_CACHE_MAX_ITEMS" validate:"gte=0"`
}

type Groq struct {
	APIKey   string `json:"api_key" env:"GROQ_API_KEY"`
	Model    string `json:"model" env:"GROQ_MODEL"`
	Endpoint string `json:"endpoint" env:"GROQ_ENDPOINT"`
}

type Pricing struct {
	TopN     int     `json:"top_n" env:"TOP_N" validate:"gte=3,lte=20"`
	USDToINR float64 `json:"usd_to_inr" env:"USD_INR_RATE" validate:"gt=0"`
	EURToINR float64 `json:"eur_to_inr" env:"EUR_INR_RATE" validate:"gt=0"`
	GBPToINR float64 `json:"gbp_to_inr" env:"GBP_INR_RATE" validate:"gt=0"`
	// StrictCurrency stops unmarked price strings from being treated as USD.
	StrictCurrency bool `json:"strict_currency" env:"STRICT_CURRENCY"`
}

type Config struct {
	Server  Server  `json:"server"`
	Serper  Serper  `json:"serper"`
	Groq    Groq    `json:"groq"`
	Pricing Pricing `json:"pricing"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 30},
		Serper: Serper{
			QuerySuffix:          "best price",
			MaxRequestsPerMinute: 30,
			Burst:                5,
			CacheTTLSeconds:      300,
			CacheMaxItems:        1000,
		},
		Groq: Groq{Model: "llama3-70b-8192"},
		Pricing: Pricing{
			TopN:     8,
			USDToINR: 83.0,
			EURToINR: 90.0,
			GBPToINR: 105.0,
		},
	}
}

// Rates builds the INR conversion table from the configured multipliers.
func (p Pricing) Rates() currency.RateTable {
	return currency.RateTable{
		currency.USD: p.USDToINR,
		currency.EUR: p.EURToINR,
		currency.GBP: p.GBPToINR,
	}
}

// Load reads JSON config from path. If path is empty or the file is absent,
// defaults are used. Environment variables (including a local .env) override
// individual fields, which keeps the API keys out of the config file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env overrides: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
