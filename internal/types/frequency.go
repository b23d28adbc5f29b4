// Package types implements the column and wire types shared by the
// models and the advisor.
package types

import (
	"github.com/shopspring/decimal"
)

// Frequency is the cadence at which an income or expense recurs.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Frequencies lists all valid frequencies.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly}

var multipliers = map[Frequency]decimal.Decimal{
	FrequencyDaily:    decimal.NewFromInt(30),
	FrequencyWeekly:   decimal.RequireFromString("4.33"),
	FrequencyBiWeekly: decimal.RequireFromString("2.17"),
	FrequencyMonthly:  decimal.NewFromInt(1),
}

// Multiplier returns the factor that converts an amount at this
// frequency to a monthly amount.
//
// The empty frequency is treated as monthly.
func (f Frequency) Multiplier() decimal.Decimal {
	m, ok := multipliers[f]
	if !ok {
		return multipliers[FrequencyMonthly]
	}

	return m
}

// Valid reports if f is one of the known frequencies.
func (f Frequency) Valid() bool {
	_, ok := multipliers[f]
	return ok
}

// Income is the income of a budget.
type Income struct {
	Amount    decimal.Decimal `json:"amount" example:"3500" minimum:"0" gorm:"type:DECIMAL(20,8)"`                          // Amount per period
	Frequency Frequency       `json:"frequency" example:"monthly" enums:"daily,weekly,bi-weekly,monthly" default:"monthly"` // Period of the amount
	Currency  string          `json:"currency" example:"GHS" default:"GHS"`                                                 // ISO 4217 currency code
}
