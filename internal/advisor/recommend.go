package advisor

import (
	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

const (
	RecommendEmergencyFund   = "Build an emergency fund covering 3-6 months of expenses"
	RecommendReduceExpenses  = "Look for ways to reduce non-essential expenses"
	RecommendOptimize        = "Your expenses are high relative to income - consider budget optimization"
	RecommendSustainablePlan = "Focus on creating a sustainable budget plan"
	RecommendIncomeSources   = "Consider additional income sources or expense reduction"
	RecommendReviewMonthly   = "Review and categorize all expenses monthly"
	RecommendSavingsGoals    = "Set specific savings goals for the next 6 months"
)

var highExpenseRatio = decimal.NewFromInt(80)

// Recommendations returns the recommendations for d and its health score.
//
// The list has at least two entries and always ends with the
// monthly review and savings goal recommendations. The savings rate rule
// is skipped if there is no income. Any expenses without income count
// as a high expense ratio.
func Recommendations(d BudgetData, score int) []string {
	recommendations := make([]string, 0, 7)

	expenseRatio, savingsRate, ok := ratios(d)
	if ok && savingsRate.LessThan(ten) {
		recommendations = append(recommendations, RecommendEmergencyFund, RecommendReduceExpenses)
	}

	if ok && expenseRatio.GreaterThan(highExpenseRatio) || !ok && unfunded(d) {
		recommendations = append(recommendations, RecommendOptimize)
	}

	if score < 50 {
		recommendations = append(recommendations, RecommendSustainablePlan, RecommendIncomeSources)
	}

	return append(recommendations, RecommendReviewMonthly, RecommendSavingsGoals)
}

// unfunded reports if d has expenses but an income of zero.
func unfunded(d BudgetData) bool {
	income, expenses := d.Totals()
	return income.IsZero() && expenses.IsPositive()
}

// Analysis bundles the results of analyzing a budget.
type Analysis struct {
	Summary         Summary
	Score           int
	Label           Label
	Factors         types.ScoreFactors
	Recommendations []string
}

// Analyze runs the full analysis pipeline on d.
func Analyze(d BudgetData) Analysis {
	score := Score(d)

	return Analysis{
		Summary:         Summarize(d),
		Score:           score,
		Label:           LabelFor(score),
		Factors:         Factors(d),
		Recommendations: Recommendations(d, score),
	}
}
