package types

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Expense is a single recurring expense.
type Expense struct {
	ID        string          `json:"id" example:"6e4b8a1c-2f0d-4a4f-9a55-1d5e2a3b4c5d"`                                    // Unique identifier of the expense within its budget
	Category  string          `json:"category" example:"Housing"`                                                           // Category label
	Amount    decimal.Decimal `json:"amount" example:"1200" minimum:"0"`                                                    // Amount per period
	Frequency Frequency       `json:"frequency" example:"monthly" enums:"daily,weekly,bi-weekly,monthly" default:"monthly"` // Period of the amount
}

// Expenses is the ordered list of expenses of a budget, stored as JSON.
type Expenses []Expense

// Scan writes the value from the database.
func (e *Expenses) Scan(value any) error {
	return scanJSON(value, e)
}

// Value returns the value for the SQL driver to write to the database.
func (e Expenses) Value() (driver.Value, error) {
	if e == nil {
		return valueJSON([]Expense{})
	}

	return valueJSON([]Expense(e))
}

// GormDataType defines the data type used by gorm for the type.
func (Expenses) GormDataType() string {
	return "text"
}
