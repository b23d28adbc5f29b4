package market

import (
	"context"
	"time"

	"github.com/cediwise/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Service fetches market data and records it to the history.
type Service struct {
	Prices       *Prices
	Rates        RateSource
	Country      string
	BaseCurrency string
	Now          func() time.Time
}

// RefreshPrices generates quotes and records them. Recording errors are
// returned together with the quotes.
func (s *Service) RefreshPrices(ctx context.Context, country string, priceType PriceType, pattern string) ([]Quote, error) {
	if country == "" {
		country = s.Country
	}

	quotes := s.Prices.Quotes(country, priceType, pattern)
	_, err := RecordQuotes(models.DB.WithContext(ctx), quotes)
	return quotes, err
}

// RefreshRates fetches the latest rates and records them.
func (s *Service) RefreshRates(ctx context.Context, base string) ([]models.ExchangeRate, error) {
	if base == "" {
		base = s.BaseCurrency
	}

	rates, err := s.Rates.Latest(ctx, base)
	if err != nil {
		return nil, err
	}

	return RecordRates(models.DB.WithContext(ctx), rates, s.Now())
}

// Refresh records prices and rates for the default country and base currency.
func (s *Service) Refresh(ctx context.Context) error {
	quotes, err := s.RefreshPrices(ctx, "", PriceTypeRetail, "")
	if err != nil {
		return err
	}

	rates, err := s.RefreshRates(ctx, "")
	if err != nil {
		return err
	}

	log.Info().Int("prices", len(quotes)).Int("rates", len(rates)).Msg("Market")
	return nil
}
