package v1

import (
	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AnalysisInput is an unsaved budget to analyze.
type AnalysisInput struct {
	Income   *types.Income  `json:"income" binding:"required"` // Income of the budget
	Expenses types.Expenses `json:"expenses"`                  // Recurring expenses
}

// CategoryShare is the monthly amount of an expense category.
type CategoryShare struct {
	Category      string          `json:"category" example:"Housing"`   // Category label
	Amount        decimal.Decimal `json:"amount" example:"1200"`        // Monthly amount
	PercentIncome decimal.Decimal `json:"percentIncome" example:"34.3"` // Monthly amount as percent of the monthly income, rounded to one decimal
}

// Analysis is the financial analysis of a budget.
type Analysis struct {
	Summary         advisor.Summary    `json:"summary"`                          // Monthly overview
	Categories      []CategoryShare    `json:"categories"`                       // Monthly expenses per category
	HealthScore     int                `json:"healthScore" example:"85"`         // Financial health score from 0 to 100
	Label           advisor.Label      `json:"label" example:"excellent" enums:"excellent,good,fair,poor"` // Rating of the health score
	ScoreFactors    types.ScoreFactors `json:"scoreFactors"`                     // Factors of the health score
	Recommendations []string           `json:"recommendations"`                  // Recommendations, most urgent first
	Tier            advisor.Tier       `json:"tier" example:"Good"`              // Rating of the savings rate
	MonthlyIncome   string             `json:"monthlyIncome" example:"₵3,500.00"` // Formatted monthly income
}

func newAnalysis(d advisor.BudgetData) Analysis {
	a := advisor.Analyze(d)

	categories := make([]CategoryShare, 0, len(d.Expenses))
	for _, e := range d.Expenses {
		share := decimal.Zero
		if d.Income.Amount.IsPositive() {
			share = e.Amount.Mul(decimal.NewFromInt(100)).Div(d.Income.Amount).Round(1)
		}

		categories = append(categories, CategoryShare{
			Category:      e.Category,
			Amount:        e.Amount,
			PercentIncome: share,
		})
	}

	return Analysis{
		Summary:         a.Summary,
		Categories:      categories,
		HealthScore:     a.Score,
		Label:           a.Label,
		ScoreFactors:    a.Factors,
		Recommendations: a.Recommendations,
		Tier:            a.Summary.Tier,
		MonthlyIncome:   advisor.Money(d.Income.Currency, d.Income.Amount),
	}
}

type AnalysisResponse struct {
	Data  *Analysis `json:"data"`                                                          // Analysis of the budget
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
