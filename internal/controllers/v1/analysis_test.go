package v1_test

import (
	"net/http"

	"github.com/cediwise/backend/internal/advisor"
	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/types"
	"github.com/cediwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAnalysisCreate() {
	income := types.Income{Amount: decimal.NewFromInt(500), Frequency: types.FrequencyWeekly}
	r := suite.request(http.MethodPost, "http://example.com/v1/analysis", v1.AnalysisInput{
		Income: &income,
		Expenses: types.Expenses{
			{Category: "Rent", Amount: decimal.NewFromInt(1000)},
			{Category: "Food", Amount: decimal.NewFromInt(50), Frequency: types.FrequencyWeekly},
			{Category: " Food ", Amount: decimal.NewFromInt(100)},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)
	a := response.Data
	suite.Require().NotNil(a)

	suite.Assert().True(decimal.NewFromInt(2165).Equal(a.Summary.MonthlyIncome), "Monthly income is %s", a.Summary.MonthlyIncome)
	suite.Assert().True(decimal.RequireFromString("1316.5").Equal(a.Summary.MonthlyExpenses), "Monthly expenses are %s", a.Summary.MonthlyExpenses)
	suite.Assert().True(decimal.RequireFromString("39.2").Equal(a.Summary.SavingsRate), "Savings rate is %s", a.Summary.SavingsRate)
	suite.Assert().Equal("GHS", a.Summary.Currency)
	suite.Assert().Equal("₵2,165.00", a.MonthlyIncome)

	suite.Require().Len(a.Categories, 2)
	suite.Assert().Equal("Rent", a.Categories[0].Category)
	suite.Assert().True(decimal.RequireFromString("46.2").Equal(a.Categories[0].PercentIncome))
	suite.Assert().Equal("Food", a.Categories[1].Category)
	suite.Assert().True(decimal.RequireFromString("316.5").Equal(a.Categories[1].Amount))
	suite.Assert().True(decimal.RequireFromString("14.6").Equal(a.Categories[1].PercentIncome))

	// 100 - 10 (expense ratio > 60) + 10 (savings rate >= 20) - 15 (no emergency fund)
	suite.Assert().Equal(85, a.HealthScore)
	suite.Assert().Equal(advisor.LabelExcellent, a.Label)
	suite.Assert().Contains(r.Body.String(), `"label":"excellent"`)
	suite.Assert().Equal(advisor.TierExcellent, a.Tier)
	suite.Assert().False(a.ScoreFactors.EmergencyFundPresent)
	suite.Assert().Equal(3, a.ScoreFactors.ExpenseCategories)
	suite.Assert().Equal([]string{advisor.RecommendReviewMonthly, advisor.RecommendSavingsGoals}, a.Recommendations)
}

func (suite *TestSuiteStandard) TestAnalysisCreateZeroIncome() {
	income := types.Income{Amount: decimal.Zero}
	r := suite.request(http.MethodPost, "http://example.com/v1/analysis", v1.AnalysisInput{
		Income:   &income,
		Expenses: types.Expenses{{Category: "Food", Amount: decimal.NewFromInt(100)}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)
	a := response.Data

	suite.Assert().Equal(0, a.HealthScore)
	suite.Assert().Equal(advisor.LabelPoor, a.Label)
	suite.Assert().True(a.Summary.SavingsRate.IsZero())
	suite.Assert().True(a.Categories[0].PercentIncome.IsZero())
	suite.Assert().Equal([]string{
		advisor.RecommendSustainablePlan,
		advisor.RecommendIncomeSources,
		advisor.RecommendReviewMonthly,
		advisor.RecommendSavingsGoals,
	}, a.Recommendations)
}

func (suite *TestSuiteStandard) TestAnalysisCreateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"No income", map[string]any{"expenses": []any{}}, "Income is required"},
		{"Invalid frequency", map[string]any{"income": map[string]any{"amount": "5", "frequency": "hourly"}}, "the frequency must be one of"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/analysis", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.AnalysisResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetAnalysis() {
	budget := suite.createTestBudget(testBudget("Analyzed"))

	r := suite.request(http.MethodGet, budget.Data.Links.Analysis, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(100, response.Data.HealthScore)
	suite.Assert().True(response.Data.ScoreFactors.EmergencyFundPresent)
	suite.Assert().Equal(65, response.Data.ScoreFactors.IncomeUtilization)
	suite.Assert().Equal(35, response.Data.ScoreFactors.SavingsRate)
	suite.Assert().Len(response.Data.Categories, 3)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/4e743e94-6a4b-44d6-aba5-d77c87103ff7/analysis", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodOptions, budget.Data.Links.Analysis, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
