package advisor

import (
	"strings"

	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	half   = decimal.RequireFromString("0.5")
	twenty = decimal.NewFromInt(20)
	ten    = decimal.NewFromInt(10)
)

// expenseBands are the deductions for the expense ratio. Only the first
// band that the ratio exceeds applies.
var expenseBands = []struct {
	above     decimal.Decimal
	deduction int
}{
	{decimal.NewFromInt(90), 40},
	{decimal.NewFromInt(80), 30},
	{decimal.NewFromInt(70), 20},
	{decimal.NewFromInt(60), 10},
}

const emergencyFundDeduction = 15

// ratios returns expenses and the remaining income as percent of income.
//
// ok is false if there is no income.
func ratios(d BudgetData) (expenseRatio, savingsRate decimal.Decimal, ok bool) {
	income, expenses := d.Totals()
	if !income.IsPositive() {
		return decimal.Zero, decimal.Zero, false
	}

	expenseRatio = expenses.Mul(hundred).Div(income)
	savingsRate = income.Sub(expenses).Mul(hundred).Div(income)
	return expenseRatio, savingsRate, true
}

// HasEmergencyFund reports if any category label contains "emergency"
// or "savings", ignoring case.
func HasEmergencyFund(expenses []CategoryAmount) bool {
	for _, e := range expenses {
		label := strings.ToLower(e.Category)
		if strings.Contains(label, "emergency") || strings.Contains(label, "savings") {
			return true
		}
	}

	return false
}

// Score computes the health score of d, an integer from 0 to 100.
//
// A budget without income scores 0.
func Score(d BudgetData) int {
	expenseRatio, savingsRate, ok := ratios(d)
	if !ok {
		return 0
	}

	score := 100
	for _, band := range expenseBands {
		if expenseRatio.GreaterThan(band.above) {
			score -= band.deduction
			break
		}
	}

	switch {
	case savingsRate.GreaterThanOrEqual(twenty):
		score += 10
	case savingsRate.GreaterThanOrEqual(ten):
		score += 5
	}

	if !HasEmergencyFund(d.Expenses) {
		score -= emergencyFundDeduction
	}

	return min(max(score, 0), 100)
}

// Factors computes the factors that explain the health score of d.
//
// The percentages are rounded half up. Both are 0 if there is no income.
// ExpenseCategories counts the expense entries before grouping.
func Factors(d BudgetData) types.ScoreFactors {
	factors := types.ScoreFactors{
		ExpenseCategories:    d.EntryCount(),
		EmergencyFundPresent: HasEmergencyFund(d.Expenses),
	}

	expenseRatio, savingsRate, ok := ratios(d)
	if ok {
		factors.IncomeUtilization = roundHalfUp(expenseRatio)
		factors.SavingsRate = roundHalfUp(savingsRate)
	}

	return factors
}

func roundHalfUp(d decimal.Decimal) int {
	return int(d.Add(half).Floor().IntPart())
}

// Label is the qualitative rating of a health score.
type Label string

const (
	LabelExcellent Label = "excellent"
	LabelGood      Label = "good"
	LabelFair      Label = "fair"
	LabelPoor      Label = "poor"
)

// LabelFor returns the label for a health score.
func LabelFor(score int) Label {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelFair
	default:
		return LabelPoor
	}
}

// Tier is the qualitative rating of a savings rate.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierFair      Tier = "Fair"
	TierPoor      Tier = "Poor"
)

// SavingsTier returns the tier for a savings rate in percent.
func SavingsTier(rate decimal.Decimal) Tier {
	switch {
	case rate.GreaterThanOrEqual(twenty):
		return TierExcellent
	case rate.GreaterThanOrEqual(ten):
		return TierGood
	case !rate.IsNegative():
		return TierFair
	default:
		return TierPoor
	}
}
