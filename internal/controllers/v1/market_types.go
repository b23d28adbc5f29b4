package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/cediwise/backend/internal/market"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PriceQuery struct {
	Country string `form:"country"` // Country to quote prices for. Defaults to Ghana.
	Type    string `form:"type"`    // retail or wholesale. Defaults to retail.
	Item    string `form:"item"`    // Glob pattern for item names, e.g. "Rice*"
}

func (q PriceQuery) priceType() (market.PriceType, error) {
	switch strings.ToLower(q.Type) {
	case "", string(market.PriceTypeRetail):
		return market.PriceTypeRetail, nil
	case string(market.PriceTypeWholesale):
		return market.PriceTypeWholesale, nil
	}

	return "", errInvalidPriceType
}

type QuoteListResponse struct {
	Data  []market.Quote `json:"data"`                                                       // Current prices
	Error *string        `json:"error" example:"the price type must be retail or wholesale"` // The error, if any occurred
}

// PriceRecord is the API v1 representation of a recorded price.
type PriceRecord struct {
	models.DefaultModel
	Country       string              `json:"country" example:"Ghana"`                                     // Country of the price
	Item          string              `json:"item" example:"Rice (1kg)"`                                   // Name of the item
	Category      string              `json:"category" example:"Food & Beverages"`                         // Category of the item
	Price         decimal.Decimal     `json:"price" example:"8.5"`                                         // Price per unit
	PriceType     string              `json:"priceType" example:"retail"`                                  // Retail or wholesale
	Currency      string              `json:"currency" example:"GHS"`                                      // Currency of the price
	Unit          string              `json:"unit" example:"kg"`                                           // Unit the price is for
	ChangePercent decimal.NullDecimal `json:"changePercent" example:"1.2"`                                 // Change of the price in percent
	Source        string              `json:"source" example:"internal-data"`                              // Source of the price
	Timestamp     time.Time           `json:"timestamp" example:"2024-03-01T10:15:00Z" format:"date-time"` // Time of the observation
	Links         struct {
		Self string `json:"self" example:"https://example.com/api/v1/prices/history?country=Ghana"` // Price history of the country
	} `json:"links"`
}

func newPriceRecord(c *gin.Context, model models.PriceRecord) PriceRecord {
	p := PriceRecord{
		DefaultModel:  model.DefaultModel,
		Country:       model.Country,
		Item:          model.ItemName,
		Category:      model.Category,
		Price:         model.Price,
		PriceType:     model.PriceType,
		Currency:      model.Currency,
		Unit:          model.Unit,
		ChangePercent: model.ChangePercent,
		Source:        model.Source,
		Timestamp:     model.Timestamp.UTC(),
	}

	p.Links.Self = fmt.Sprintf("%s/v1/prices/history?country=%s", c.GetString(string(models.DBContextURL)), model.Country)
	return p
}

type PriceRecordListResponse struct {
	Data       []PriceRecord `json:"data"`                                                          // Recorded prices
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type PriceRecordQueryFilter struct {
	Country   string `form:"country"`                    // By country
	Category  string `form:"category"`                   // By category
	PriceType string `form:"type"`                       // By price type
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first price returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of prices to return. Defaults to 50.
}

func (f PriceRecordQueryFilter) model() models.PriceRecord {
	return models.PriceRecord{
		Country:   f.Country,
		Category:  f.Category,
		PriceType: strings.ToLower(f.PriceType),
	}
}

type RateQuery struct {
	Base string `form:"base"` // Base currency. Defaults to the configured base currency.
}

// ExchangeRate is the API v1 representation of a recorded exchange rate.
type ExchangeRate struct {
	models.DefaultModel
	BaseCurrency   string              `json:"baseCurrency" example:"USD"`                                  // Currency converted from
	TargetCurrency string              `json:"targetCurrency" example:"GHS"`                                // Currency converted to
	Rate           decimal.Decimal     `json:"rate" example:"15.12"`                                        // Units of the target currency per unit of the base currency
	ChangePercent  decimal.NullDecimal `json:"changePercent" example:"0.42"`                                // Change since the previous record of the pair. null for the first record.
	Source         string              `json:"source" example:"exchangerate-api"`                           // Source of the rate
	Timestamp      time.Time           `json:"timestamp" example:"2024-03-01T10:15:00Z" format:"date-time"` // Time of the observation
}

func newExchangeRate(model models.ExchangeRate) ExchangeRate {
	return ExchangeRate{
		DefaultModel:   model.DefaultModel,
		BaseCurrency:   model.BaseCurrency,
		TargetCurrency: model.TargetCurrency,
		Rate:           model.Rate,
		ChangePercent:  model.ChangePercent,
		Source:         model.Source,
		Timestamp:      model.Timestamp.UTC(),
	}
}

type ExchangeRateListResponse struct {
	Data       []ExchangeRate `json:"data"`                                                     // Exchange rates
	Error      *string        `json:"error" example:"exchange rates are currently unavailable"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination,omitempty"`                                     // Pagination information, only set for the history
}

type ExchangeRateQueryFilter struct {
	BaseCurrency   string `form:"base"`                       // By base currency
	TargetCurrency string `form:"target"`                     // By target currency
	Offset         uint   `form:"offset" filterField:"false"` // The offset of the first rate returned. Defaults to 0.
	Limit          int    `form:"limit" filterField:"false"`  // Maximum number of rates to return. Defaults to 50.
}

func (f ExchangeRateQueryFilter) model() models.ExchangeRate {
	return models.ExchangeRate{
		BaseCurrency:   strings.ToUpper(f.BaseCurrency),
		TargetCurrency: strings.ToUpper(f.TargetCurrency),
	}
}

// Insights summarize the market history of the last days.
type Insights struct {
	MarketInsights   string `json:"marketInsights" example:"Food & Beverages: Average price 8.50, trending upward (1.2% change)"` // Price trends per category
	ExchangeInsights string `json:"exchangeInsights" example:"USD/GHS: 15.1200 (+0.42% change)"`                                  // Latest rate per currency pair
}

type InsightsResponse struct {
	Data  *Insights `json:"data"`                                     // Market insights
	Error *string   `json:"error" example:"there is no Price Record"` // The error, if any occurred
}
