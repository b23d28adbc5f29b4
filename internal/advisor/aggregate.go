// Package advisor implements the financial health analysis: monthly
// aggregation, health scoring, recommendations, market insight summaries
// and the fallback responder used when the language model is unavailable.
//
// All functions in this package are pure.
package advisor

import (
	"strings"

	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is the monthly total of all expenses in a category.
type CategoryAmount struct {
	Category string          `json:"category" example:"Housing"` // Category label
	Amount   decimal.Decimal `json:"amount" example:"1200"`      // Monthly amount
}

// BudgetData is the input of the scorer and the recommendation engine.
//
// Income.Amount is a monthly amount and every expense amount is a
// monthly total per category.
type BudgetData struct {
	Income   types.Income     `json:"income"`
	Expenses []CategoryAmount `json:"expenses"`

	// entries is the number of expenses grouped into Expenses
	entries int
}

// EntryCount returns the number of expense entries d was built from.
func (d BudgetData) EntryCount() int {
	return max(d.entries, len(d.Expenses))
}

// NormalizeMonthly converts an amount at the given frequency to a monthly amount.
func NormalizeMonthly(amount decimal.Decimal, frequency types.Frequency) decimal.Decimal {
	return amount.Mul(frequency.Multiplier())
}

// TotalMonthlyExpenses is the sum of all expenses converted to monthly amounts.
func TotalMonthlyExpenses(expenses []types.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(NormalizeMonthly(e.Amount, e.Frequency))
	}

	return total
}

// NewBudgetData normalizes income and expenses into BudgetData.
//
// Expenses are grouped by category in order of first appearance.
// Categories are compared after trimming surrounding whitespace, an
// empty category is grouped as "Other".
func NewBudgetData(income types.Income, expenses []types.Expense) BudgetData {
	data := BudgetData{
		Income: types.Income{
			Amount:    NormalizeMonthly(income.Amount, income.Frequency),
			Frequency: types.FrequencyMonthly,
			Currency:  income.Currency,
		},
		Expenses: make([]CategoryAmount, 0, len(expenses)),
		entries:  len(expenses),
	}

	index := make(map[string]int)
	for _, e := range expenses {
		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = "Other"
		}

		amount := NormalizeMonthly(e.Amount, e.Frequency)
		if i, ok := index[category]; ok {
			data.Expenses[i].Amount = data.Expenses[i].Amount.Add(amount)
			continue
		}

		index[category] = len(data.Expenses)
		data.Expenses = append(data.Expenses, CategoryAmount{Category: category, Amount: amount})
	}

	return data
}

// Totals returns the income and the sum of all expenses.
func (d BudgetData) Totals() (income, expenses decimal.Decimal) {
	expenses = decimal.Zero
	for _, e := range d.Expenses {
		expenses = expenses.Add(e.Amount)
	}

	return d.Income.Amount, expenses
}

// Summary is the monthly overview of a budget.
type Summary struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"1000"`  // Income per month
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" example:"550"` // Sum of all expenses per month
	Remaining       decimal.Decimal `json:"remaining" example:"450"`       // Income minus expenses
	SavingsRate     decimal.Decimal `json:"savingsRate" example:"45"`      // Remaining as percent of income, rounded to one decimal. 0 if there is no income
	Currency        string          `json:"currency" example:"GHS"`        // Currency of all amounts
	Tier            Tier            `json:"tier" example:"Excellent"`      // Qualitative rating of the savings rate
}

// Summarize computes the monthly overview of d.
func Summarize(d BudgetData) Summary {
	income, expenses := d.Totals()
	remaining := income.Sub(expenses)

	rate := decimal.Zero
	if income.IsPositive() {
		rate = remaining.Mul(hundred).Div(income).Round(1)
	}

	return Summary{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		Remaining:       remaining,
		SavingsRate:     rate,
		Currency:        d.Income.Currency,
		Tier:            SavingsTier(rate),
	}
}
