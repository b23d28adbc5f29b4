package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	"github.com/cediwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(testBudget("Household"))

	suite.Require().NotNil(budget.Data)
	suite.Assert().Equal("Household", budget.Data.Name)
	suite.Assert().Equal("GHS", budget.Data.Income.Currency)
	suite.Assert().Equal(types.FrequencyMonthly, budget.Data.Income.Frequency)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets/%s", budget.Data.ID), budget.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/health-scores?budget=%s", budget.Data.ID), budget.Data.Links.HealthScores)

	suite.Require().Len(budget.Data.Expenses, 3)
	for _, e := range budget.Data.Expenses {
		_, err := uuid.Parse(e.ID)
		suite.Assert().Nil(err, "Expense ID %q is not a UUID", e.ID)
		suite.Assert().Equal(types.FrequencyMonthly, e.Frequency)
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateDefaults() {
	editable := v1.BudgetEditable{
		Name:   "  Trimmed  ",
		Income: types.Income{Amount: decimal.NewFromInt(200)},
		Expenses: types.Expenses{
			{ID: "rent", Category: " Rent ", Amount: decimal.NewFromInt(50), Frequency: types.FrequencyWeekly},
		},
	}

	budget := suite.createTestBudget(editable)
	suite.Require().NotNil(budget.Data)

	suite.Assert().Equal("Trimmed", budget.Data.Name)
	suite.Assert().Equal("GHS", budget.Data.Income.Currency)
	suite.Assert().Equal(types.FrequencyMonthly, budget.Data.Income.Frequency)
	suite.Assert().Equal("rent", budget.Data.Expenses[0].ID)
	suite.Assert().Equal("Rent", budget.Data.Expenses[0].Category)
	suite.Assert().Equal(types.FrequencyWeekly, budget.Data.Expenses[0].Frequency)
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	tests := []struct {
		name     string
		editable v1.BudgetEditable
		err      string
	}{
		{"Empty name", v1.BudgetEditable{Name: "   "}, models.ErrBudgetNameEmpty.Error()},
		{"Lowercase currency", v1.BudgetEditable{Name: "Currency", Income: types.Income{Currency: "usd"}}, "the currency must be a valid ISO 4217 currency code"},
		{"Invalid income frequency", v1.BudgetEditable{Name: "Frequency", Income: types.Income{Frequency: "yearly"}}, "the frequency must be one of"},
		{"Negative income", v1.BudgetEditable{Name: "Negative", Income: types.Income{Amount: decimal.NewFromInt(-1)}}, "amounts must not be negative"},
		{"Negative expense", v1.BudgetEditable{Name: "Expense", Expenses: types.Expenses{{ID: "x", Amount: decimal.NewFromInt(-10)}}}, "amounts must not be negative (expense x)"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			budget := suite.createTestBudget(tt.editable, http.StatusBadRequest)
			suite.Require().NotNil(budget.Error)
			suite.Assert().Contains(*budget.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateMixed() {
	r := suite.request(http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{
		testBudget("Valid"),
		{Name: ""},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Nil(response.Data[1].Data)
	suite.Assert().Equal(models.ErrBudgetNameEmpty.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestBudgetsCreateBrokenBody() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Not a list", `{"name": "Single"}`, "must be of type"},
		{"Broken JSON", `[{"name": "Broken"`, "invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	budget := suite.createTestBudget(testBudget("Get me"))

	r := suite.request(http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.Data.ID, response.Data.ID)
	suite.Assert().True(budget.Data.Income.Amount.Equal(response.Data.Income.Amount))
	suite.Assert().Len(response.Data.Expenses, 3)
}

func (suite *TestSuiteStandard) TestBudgetsGetFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Does not exist", "4e743e94-6a4b-44d6-aba5-d77c87103ff7", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	_ = suite.createTestBudget(testBudget("Household"))

	travel := testBudget("Travel")
	travel.Income.Currency = "USD"
	travel.Expenses = types.Expenses{{Category: "Flights", Amount: decimal.NewFromInt(400)}}
	_ = suite.createTestBudget(travel)

	_ = suite.createTestBudget(testBudget("Second household"))

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Currency", "currency=USD", 1, 1},
		{"Name", "name=household", 2, 2},
		{"Search in expenses", "search=flight", 1, 1},
		{"Search in names", "search=travel", 1, 1},
		{"Empty name", "name=", 0, 0},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListOrder() {
	_ = suite.createTestBudget(testBudget("First"))
	_ = suite.createTestBudget(testBudget("Second"))

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Second", response.Data[0].Name)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestBudgetsListInvalidQuery() {
	r := suite.request(http.MethodGet, "http://example.com/v1/budgets?limit=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudget(testBudget("Old name"))

	r := suite.request(http.MethodPatch, budget.Data.Links.Self, map[string]any{"name": "New name"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("New name", response.Data.Name)
	suite.Assert().Len(response.Data.Expenses, 3)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateFails() {
	budget := suite.createTestBudget(testBudget("Immutable"))

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Income", map[string]any{"income": map[string]any{"amount": "5"}}, http.StatusBadRequest, "only the name of a budget can be updated"},
		{"Empty name", map[string]any{"name": " "}, http.StatusBadRequest, models.ErrBudgetNameEmpty.Error()},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, budget.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}

	r := suite.request(http.MethodPatch, "http://example.com/v1/budgets/4e743e94-6a4b-44d6-aba5-d77c87103ff7", map[string]any{"name": "Missing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(testBudget("Delete me"))
	session := suite.createTestChatSession(v1.ChatSessionEditable{BudgetID: &budget.Data.ID})

	r := suite.request(http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().True(strings.HasPrefix(test.DecodeError(suite.T(), r.Body.Bytes()), "there is no budget"))

	// The chat session is kept without the budget
	r = suite.request(http.MethodGet, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatSessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.BudgetID)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := suite.createTestBudget(testBudget("Options"))

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{budget.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/budgets/4e743e94-6a4b-44d6-aba5-d77c87103ff7", http.StatusNotFound, ""},
		{"http://example.com/v1/budgets/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := suite.request(http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}
