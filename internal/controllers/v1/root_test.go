package v1_test

import (
	"net/http"

	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Links{
		Budgets:        "http://example.com/v1/budgets",
		Analysis:       "http://example.com/v1/analysis",
		HealthScores:   "http://example.com/v1/health-scores",
		ChatSessions:   "http://example.com/v1/chat-sessions",
		Advisor:        "http://example.com/v1/advisor",
		Prices:         "http://example.com/v1/prices",
		ExchangeRates:  "http://example.com/v1/exchange-rates",
		MarketInsights: "http://example.com/v1/market/insights",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	budget := suite.createTestBudget(testBudget("Cleanup"))
	suite.createTestChatSession(v1.ChatSessionEditable{BudgetID: &budget.Data.ID})
	suite.createTestHealthScore(budget.Data.ID)
	suite.getQuotes("", http.StatusOK)
	suite.getRates("", http.StatusOK)

	r := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, model := range []any{&models.Budget{}, &models.ChatSession{}, &models.HealthScore{}, &models.PriceRecord{}, &models.ExchangeRate{}} {
		var count int64
		suite.Require().Nil(models.DB.Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "%T", model)
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	budget := suite.createTestBudget(testBudget("Kept"))

	for _, url := range []string{
		"http://example.com/v1",
		"http://example.com/v1?confirm=yes",
	} {
		suite.Run(url, func() {
			r := suite.request(http.MethodDelete, url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
			suite.Assert().Equal("the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}

	r := suite.request(http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
