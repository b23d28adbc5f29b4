package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is an observed commodity price.
type PriceRecord struct {
	DefaultModel
	Country       string              `gorm:"index"`
	ItemName      string
	Category      string              `gorm:"index"`
	Price         decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	PriceType     string
	Currency      string
	Unit          string
	ChangePercent decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Source        string
	Timestamp     time.Time           `gorm:"index"`
}

func (PriceRecord) Self() string {
	return "Price Record"
}

// ExchangeRate is an observed exchange rate from BaseCurrency to TargetCurrency.
type ExchangeRate struct {
	DefaultModel
	BaseCurrency   string              `gorm:"index:idx_exchange_rate_pair"`
	TargetCurrency string              `gorm:"index:idx_exchange_rate_pair"`
	Rate           decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	ChangePercent  decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Source         string
	Timestamp      time.Time           `gorm:"index"`
}

func (ExchangeRate) Self() string {
	return "Exchange Rate"
}
