package market

import (
	"time"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/models"
	"gorm.io/gorm"
)

const (
	priceWindow = 30 * 24 * time.Hour
	priceLimit  = 100
	rateWindow  = 7 * 24 * time.Hour
	rateLimit   = 50
)

// RecentPrices returns the price history of the last 30 days, newest first.
func RecentPrices(db *gorm.DB, now time.Time) ([]models.PriceRecord, error) {
	var records []models.PriceRecord
	err := db.
		Where("timestamp >= ?", now.Add(-priceWindow).UTC()).
		Order("timestamp DESC").
		Limit(priceLimit).
		Find(&records).Error

	return records, err
}

// RecentRates returns the exchange rate history of the last 7 days, newest first.
func RecentRates(db *gorm.DB, now time.Time) ([]models.ExchangeRate, error) {
	var records []models.ExchangeRate
	err := db.
		Where("timestamp >= ?", now.Add(-rateWindow).UTC()).
		Order("timestamp DESC").
		Limit(rateLimit).
		Find(&records).Error

	return records, err
}

// RecentInsights summarizes the recent price and exchange rate history.
//
// If one of the histories cannot be read, the insights that could be
// computed are returned together with the error.
func RecentInsights(db *gorm.DB, now time.Time) (prices string, rates string, err error) {
	priceRecords, priceErr := RecentPrices(db, now)
	if priceErr == nil {
		points := make([]advisor.PricePoint, 0, len(priceRecords))
		for _, r := range priceRecords {
			points = append(points, advisor.PricePoint{Category: r.Category, Price: r.Price, ChangePercent: r.ChangePercent})
		}
		prices = advisor.MarketInsights(points)
	}

	rateRecords, rateErr := RecentRates(db, now)
	if rateErr == nil {
		points := make([]advisor.RatePoint, 0, len(rateRecords))
		for _, r := range rateRecords {
			points = append(points, advisor.RatePoint{
				BaseCurrency:   r.BaseCurrency,
				TargetCurrency: r.TargetCurrency,
				Rate:           r.Rate,
				ChangePercent:  r.ChangePercent,
			})
		}
		rates = advisor.ExchangeInsights(points)
	}

	if priceErr != nil {
		return prices, rates, priceErr
	}

	return prices, rates, rateErr
}
