package types

import "database/sql/driver"

// ScoreFactors explains a health score.
type ScoreFactors struct {
	IncomeUtilization    int  `json:"incomeUtilization" example:"55"`       // Expenses as percent of income
	SavingsRate          int  `json:"savingsRate" example:"45"`             // Surplus as percent of income
	ExpenseCategories    int  `json:"expenseCategories" example:"2"`        // Number of expense entries of the budget, before grouping by category
	EmergencyFundPresent bool `json:"emergencyFundPresent" example:"false"` // Is there an emergency fund or savings category?
}

// Scan writes the value from the database.
func (f *ScoreFactors) Scan(value any) error {
	return scanJSON(value, f)
}

// Value returns the value for the SQL driver to write to the database.
func (f ScoreFactors) Value() (driver.Value, error) {
	return valueJSON(f)
}

// GormDataType defines the data type used by gorm for the type.
func (ScoreFactors) GormDataType() string {
	return "text"
}
