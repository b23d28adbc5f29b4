// Package market provides commodity prices and exchange rates, records
// them to the history tables and summarizes the history for the advisor.
package market

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// DefaultCountry is used for countries without a price catalog.
const DefaultCountry = "Ghana"

// PriceType distinguishes retail from wholesale prices.
type PriceType string

const (
	PriceTypeRetail    PriceType = "retail"
	PriceTypeWholesale PriceType = "wholesale"
)

// Item is a commodity in the price catalog of a country.
type Item struct {
	Name      string
	Category  string
	Retail    decimal.Decimal
	Wholesale decimal.Decimal
	Currency  string
	Unit      string
}

func item(name, category, retail, wholesale, currency, unit string) Item {
	return Item{
		Name:      name,
		Category:  category,
		Retail:    decimal.RequireFromString(retail),
		Wholesale: decimal.RequireFromString(wholesale),
		Currency:  currency,
		Unit:      unit,
	}
}

const (
	food           = "Food & Beverages"
	transportation = "Transportation"
	utilities      = "Utilities"
	construction   = "Construction"
)

// Catalog contains the reference prices per country.
var Catalog = map[string][]Item{
	"Ghana": {
		item("Rice (1kg)", food, "8.50", "6.80", "GHS", "kg"),
		item("Bread (Local)", food, "3.00", "2.20", "GHS", "loaf"),
		item("Chicken (1kg)", food, "25.00", "20.00", "GHS", "kg"),
		item("Tomatoes (1kg)", food, "4.50", "3.20", "GHS", "kg"),
		item("Cooking Oil (1L)", food, "12.00", "9.50", "GHS", "liter"),
		item("Gasoline", transportation, "13.50", "12.80", "GHS", "liter"),
		item("Taxi (Local)", transportation, "2.50", "2.00", "GHS", "per km"),
		item("Electricity", utilities, "0.95", "0.78", "GHS", "kWh"),
		item("Water", utilities, "0.45", "0.32", "GHS", "cubic meter"),
		item("Cement (50kg)", construction, "28.00", "24.50", "GHS", "50kg bag"),
	},
	"Nigeria": {
		item("Rice (1kg)", food, "450", "380", "NGN", "kg"),
		item("Bread (Local)", food, "200", "150", "NGN", "loaf"),
		item("Chicken (1kg)", food, "1200", "1000", "NGN", "kg"),
		item("Tomatoes (1kg)", food, "300", "220", "NGN", "kg"),
		item("Cooking Oil (1L)", food, "650", "520", "NGN", "liter"),
		item("Gasoline", transportation, "617", "590", "NGN", "liter"),
		item("Electricity", utilities, "45", "38", "NGN", "kWh"),
		item("Cement (50kg)", construction, "3500", "3100", "NGN", "50kg bag"),
	},
	"United States": {
		item("Rice (1kg)", food, "3.50", "2.80", "USD", "kg"),
		item("Bread (Local)", food, "2.80", "2.20", "USD", "loaf"),
		item("Chicken (1kg)", food, "6.50", "5.20", "USD", "kg"),
		item("Gasoline", transportation, "3.45", "3.20", "USD", "gallon"),
		item("Electricity", utilities, "0.13", "0.10", "USD", "kWh"),
	},
	"United Kingdom": {
		item("Rice (1kg)", food, "2.20", "1.80", "GBP", "kg"),
		item("Bread (Local)", food, "1.50", "1.20", "GBP", "loaf"),
		item("Chicken (1kg)", food, "4.80", "4.00", "GBP", "kg"),
		item("Gasoline", transportation, "1.45", "1.35", "GBP", "liter"),
		item("Electricity", utilities, "0.28", "0.24", "GBP", "kWh"),
	},
}

// ResolveCountry returns the catalog country for the given name.
func ResolveCountry(country string) string {
	for c := range Catalog {
		if strings.EqualFold(c, country) {
			return c
		}
	}

	return DefaultCountry
}

// Quote is the current price of an item.
type Quote struct {
	Item          string          `json:"item" example:"Rice (1kg)"`                                   // Name of the item
	Category      string          `json:"category" example:"Food & Beverages"`                         // Category of the item
	Country       string          `json:"country" example:"Ghana"`                                     // Country the price applies to
	Price         decimal.Decimal `json:"price" example:"8.5"`                                         // Price per unit
	Currency      string          `json:"currency" example:"GHS"`                                      // Currency of the price
	PriceType     PriceType       `json:"priceType" example:"retail" enums:"retail,wholesale"`         // Retail or wholesale price
	Unit          string          `json:"unit" example:"kg"`                                           // Unit the price is for
	ChangePercent decimal.Decimal `json:"changePercent" example:"-1.25"`                               // Change of the price in percent
	Timestamp     time.Time       `json:"timestamp" example:"2024-03-01T10:15:00Z" format:"date-time"` // Time of the quote
}

// maxDrift is the maximum change of a quote in percent, in either direction.
const maxDrift = 3.0

// Prices generates quotes from the catalog with a random change of up
// to 3% in either direction.
type Prices struct {
	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

// NewPrices creates a price generator using the given source of randomness.
func NewPrices(src rand.Source, now func() time.Time) *Prices {
	return &Prices{
		rand: rand.New(src),
		now:  now,
	}
}

func (p *Prices) drift() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return decimal.NewFromFloat((p.rand.Float64() - 0.5) * 2 * maxDrift).Round(2)
}

// Quotes returns the quotes for all items of a country. If pattern is
// not empty, only items whose name matches the glob pattern are
// returned. Matching ignores case.
func (p *Prices) Quotes(country string, priceType PriceType, pattern string) []Quote {
	country = ResolveCountry(country)
	if priceType != PriceTypeWholesale {
		priceType = PriceTypeRetail
	}

	now := p.now().UTC()
	quotes := make([]Quote, 0, len(Catalog[country]))
	for _, i := range Catalog[country] {
		if pattern != "" && !glob.Glob(strings.ToLower(pattern), strings.ToLower(i.Name)) {
			continue
		}

		price := i.Retail
		if priceType == PriceTypeWholesale {
			price = i.Wholesale
		}

		quotes = append(quotes, Quote{
			Item:          i.Name,
			Category:      i.Category,
			Country:       country,
			Price:         price,
			Currency:      i.Currency,
			PriceType:     priceType,
			Unit:          i.Unit,
			ChangePercent: p.drift(),
			Timestamp:     now,
		})
	}

	return quotes
}
