package market

import (
	"errors"
	"time"

	"github.com/cediwise/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const priceSource = "internal-data"

// RecordQuotes stores the quotes in the price history.
func RecordQuotes(db *gorm.DB, quotes []Quote) ([]models.PriceRecord, error) {
	records := make([]models.PriceRecord, 0, len(quotes))
	for _, q := range quotes {
		records = append(records, models.PriceRecord{
			Country:       q.Country,
			ItemName:      q.Item,
			Category:      q.Category,
			Price:         q.Price,
			PriceType:     string(q.PriceType),
			Currency:      q.Currency,
			Unit:          q.Unit,
			ChangePercent: decimal.NewNullDecimal(q.ChangePercent),
			Source:        priceSource,
			Timestamp:     q.Timestamp,
		})
	}

	if len(records) == 0 {
		return records, nil
	}

	if err := db.Create(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// changePercent returns the change from previous to current in percent,
// rounded to four decimal places.
func changePercent(previous, current decimal.Decimal) decimal.NullDecimal {
	if previous.IsZero() {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(current.Sub(previous).Mul(decimal.NewFromInt(100)).Div(previous).Round(4))
}

// RecordRates stores the rates for all target currencies except the base
// currency in the exchange rate history.
//
// The change of each rate is computed against the last recorded rate of
// the same currency pair. It is null for the first record of a pair.
func RecordRates(db *gorm.DB, rates Rates, now time.Time) ([]models.ExchangeRate, error) {
	var records []models.ExchangeRate

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, target := range TargetCurrencies {
			rate, ok := rates.Rates[target]
			if target == rates.Base || !ok {
				continue
			}

			record := models.ExchangeRate{
				BaseCurrency:   rates.Base,
				TargetCurrency: target,
				Rate:           rate,
				Source:         rates.Source,
				Timestamp:      now.UTC(),
			}

			var previous models.ExchangeRate
			err := tx.
				Where(&models.ExchangeRate{BaseCurrency: rates.Base, TargetCurrency: target}).
				Order("timestamp DESC").
				First(&previous).Error

			switch {
			case err == nil:
				record.ChangePercent = changePercent(previous.Rate, rate)
			case !errors.Is(err, models.ErrResourceNotFound):
				return err
			}

			if err := tx.Create(&record).Error; err != nil {
				return err
			}

			records = append(records, record)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
