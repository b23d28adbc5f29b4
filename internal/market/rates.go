package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TargetCurrencies are the currencies that rates are recorded for.
var TargetCurrencies = []string{"USD", "GHS", "EUR", "GBP", "NGN", "CAD", "JPY", "AUD"}

// ErrUnsupportedCurrency is returned when a source has no rates for a base currency.
var ErrUnsupportedCurrency = errors.New("no exchange rates available for base currency")

// Rates are the exchange rates from a base currency.
type Rates struct {
	Base   string
	Date   string
	Source string
	Rates  map[string]decimal.Decimal
}

// RateSource provides the latest exchange rates.
type RateSource interface {
	Latest(ctx context.Context, base string) (Rates, error)
}

// DefaultExchangeRateURL is the endpoint of exchangerate-api.com. The
// base currency is appended to it.
const DefaultExchangeRateURL = "https://api.exchangerate-api.com/v4/latest/"

// ExchangeRateAPI reads rates from exchangerate-api.com.
type ExchangeRateAPI struct {
	url    string
	client *http.Client
}

// NewExchangeRateAPI creates a source for the given endpoint.
func NewExchangeRateAPI(url string, timeout time.Duration) *ExchangeRateAPI {
	if url == "" {
		url = DefaultExchangeRateURL
	}

	if !strings.HasSuffix(url, "/") {
		url += "/"
	}

	return &ExchangeRateAPI{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type exchangeRateAPIResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (s *ExchangeRateAPI) Latest(ctx context.Context, base string) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+base, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Rates{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Rates{}, fmt.Errorf("%w %s", ErrUnsupportedCurrency, base)
	}

	if resp.StatusCode != http.StatusOK {
		return Rates{}, fmt.Errorf("exchange rate API error: %d", resp.StatusCode)
	}

	var body exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Rates{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return Rates{
		Base:   base,
		Date:   body.Date,
		Source: "exchangerate-api",
		Rates:  body.Rates,
	}, nil
}
