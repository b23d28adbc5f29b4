// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cediwise/backend/internal/types"
	"github.com/joho/godotenv"
)

const (
	RateSourceExchangeRateAPI = "exchangerate-api"
	RateSourceECB             = "ecb"
)

// Config holds the application configuration.
type Config struct {
	APIURL           *url.URL
	Port             string
	DataDir          string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool
	Advisor          Advisor
	Market           Market
}

// Advisor configures the language model and the retrying client.
type Advisor struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
	MaxAttempts int
	Fallback    bool
}

// Market configures market data sources and the refresh schedule.
type Market struct {
	RateSource      string
	RateURL         string
	CacheTTL        time.Duration
	RefreshSchedule string
	BaseCurrency    string
	Country         string
}

// Load reads environment variables from the file at path. A missing
// file is not an error. Variables that are already set are not overwritten.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return nil, errors.New("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	p := parser{}
	cfg := &Config{
		APIURL:           u,
		Port:             getEnv("PORT", "8080"),
		DataDir:          getEnv("DATA_DIR", "data"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      p.bool("ENABLE_PPROF", false),
		Advisor: Advisor{
			APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:     getEnv("ANTHROPIC_BASE_URL", ""),
			Model:       getEnv("ADVISOR_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens:   int64(p.int("ADVISOR_MAX_TOKENS", 1500)),
			Temperature: 0.7,
			Timeout:     p.duration("ADVISOR_TIMEOUT", 30*time.Second),
			MaxAttempts: p.int("ADVISOR_MAX_ATTEMPTS", 3),
			Fallback:    p.bool("ADVISOR_FALLBACK", true),
		},
		Market: Market{
			RateSource:      getEnv("EXCHANGE_RATE_SOURCE", RateSourceExchangeRateAPI),
			RateURL:         getEnv("EXCHANGE_RATE_URL", ""),
			CacheTTL:        p.duration("EXCHANGE_RATE_CACHE_TTL", time.Hour),
			RefreshSchedule: getEnv("MARKET_REFRESH_SCHEDULE", ""),
			BaseCurrency:    getEnv("MARKET_BASE_CURRENCY", "USD"),
			Country:         getEnv("MARKET_COUNTRY", "Ghana"),
		},
	}

	if p.err != nil {
		return nil, p.err
	}

	if cfg.Advisor.MaxAttempts < 1 {
		return nil, errors.New("ADVISOR_MAX_ATTEMPTS must be at least 1")
	}

	if cfg.Market.RateSource != RateSourceExchangeRateAPI && cfg.Market.RateSource != RateSourceECB {
		return nil, fmt.Errorf("EXCHANGE_RATE_SOURCE must be %s or %s", RateSourceExchangeRateAPI, RateSourceECB)
	}

	if !types.ValidCurrency(cfg.Market.BaseCurrency) {
		return nil, fmt.Errorf("MARKET_BASE_CURRENCY %s is not a valid ISO 4217 currency code", cfg.Market.BaseCurrency)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// parser parses typed environment variables and keeps the first error.
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("could not parse %s=%q: %w", key, value, err)
	}
}

func (p *parser) int(key string, defaultVal int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultVal
	}

	return i
}

func (p *parser) bool(key string, defaultVal bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultVal
	}

	return b
}

func (p *parser) duration(key string, defaultVal time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultVal
	}

	return d
}
