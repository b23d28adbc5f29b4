package v1_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/assistant"
	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/types"
	"github.com/cediwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func advisorBudget(id *uuid.UUID) *assistant.BudgetData {
	return &assistant.BudgetData{
		ID: id,
		BudgetData: advisor.BudgetData{
			Income: types.Income{Amount: decimal.NewFromInt(1000), Frequency: types.FrequencyMonthly, Currency: "GHS"},
			Expenses: []advisor.CategoryAmount{
				{Category: "Housing", Amount: decimal.NewFromInt(300)},
				{Category: "Food", Amount: decimal.NewFromInt(250)},
			},
		},
	}
}

func (suite *TestSuiteStandard) chat(req assistant.Request, expectedStatus int) v1.ChatResponse {
	r := suite.request(http.MethodPost, "http://example.com/v1/advisor/chat", req)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) getChatSession(id uuid.UUID) v1.ChatSession {
	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/chat-sessions/%s", id), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatSessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) TestAdvisorCall() {
	budget := suite.createTestBudget(testBudget("Advisor"))

	r := suite.request(http.MethodPost, "http://example.com/v1/advisor", assistant.Request{
		Message:    "How am I doing?",
		BudgetData: advisorBudget(&budget.Data.ID),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response assistant.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Success)
	suite.Assert().Equal("Your savings rate is healthy. Keep it up!", response.Response)
	suite.Require().NotNil(response.HealthScore)
	suite.Assert().Equal(95, *response.HealthScore)
	suite.Assert().Equal([]string{advisor.RecommendReviewMonthly, advisor.RecommendSavingsGoals}, response.Recommendations)
	suite.Require().NotNil(response.SessionID)
	suite.Require().Len(suite.completer.requests, 1)

	session := suite.getChatSession(*response.SessionID)
	suite.Assert().Len(session.Messages, 2)
	suite.Assert().Equal(&budget.Data.ID, session.BudgetID)
	suite.Require().NotNil(session.ContextData)
	suite.Assert().Contains(string(*session.ContextData), `"healthScore":95`)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/health-scores?budget=%s", budget.Data.ID), "")
	var scores v1.HealthScoreListResponse
	test.DecodeResponse(suite.T(), &r, &scores)
	suite.Require().Len(scores.Data, 1, "the score of a saved budget is recorded")
	suite.Assert().Equal(95, scores.Data[0].Score)
}

func (suite *TestSuiteStandard) TestAdvisorCallTestConnection() {
	r := suite.request(http.MethodPost, "http://example.com/v1/advisor", assistant.Request{Message: assistant.TestConnectionMessage})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response assistant.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Success)
	suite.Assert().True(response.HealthCheck)
	suite.Assert().Empty(suite.completer.requests, "connection tests only ping the language model")
}

func (suite *TestSuiteStandard) TestAdvisorCallFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty message", assistant.Request{Message: " "}, http.StatusBadRequest, "Message parameter is required and must be a string"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Message is not a string", `{"message": 42}`, http.StatusBadRequest, "must be of type string"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/advisor", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			var response assistant.Response
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().False(response.Success)
			suite.Assert().Contains(response.Error, tt.err)
		})
	}

	suite.completer.err = errors.New("insufficient_quota")
	r := suite.request(http.MethodPost, "http://example.com/v1/advisor", assistant.Request{Message: "Hi"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response assistant.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("AI advisor error: insufficient_quota", response.Error)
	suite.Assert().Len(suite.completer.requests, 1, "single requests are not retried")
}

func (suite *TestSuiteStandard) TestAdvisorChat() {
	response := suite.chat(assistant.Request{Message: "How am I doing?", BudgetData: advisorBudget(nil)}, http.StatusOK)
	suite.Assert().True(response.Success)
	suite.Assert().False(response.Fallback)
	suite.Assert().Equal("", string(response.ErrorKind))
	suite.Assert().Equal(assistant.ConnectionSuccess, response.ConnectionStatus)
	suite.Assert().Equal(0, response.RetryCount)
	suite.Require().NotNil(response.SessionID)
	suite.Require().NotNil(response.HealthScore)
	suite.Assert().Equal(95, *response.HealthScore)

	session := suite.getChatSession(*response.SessionID)
	suite.Assert().Equal(assistant.ConnectionSuccess, session.ConnectionStatus)
	suite.Assert().Len(session.Messages, 2)

	next := suite.chat(assistant.Request{Message: "And now?", SessionID: response.SessionID}, http.StatusOK)
	suite.Assert().Equal(*response.SessionID, *next.SessionID)
	suite.Require().Len(suite.completer.requests, 2)
	suite.Assert().Len(suite.completer.requests[1].History, 2, "the conversation is continued")
}

func (suite *TestSuiteStandard) TestAdvisorChatFallback() {
	session := suite.createTestChatSession(v1.ChatSessionEditable{})
	suite.completer.err = errors.New("rate_limit exceeded")

	response := suite.chat(assistant.Request{
		Message:    advisor.AnalysisPrompt("March"),
		BudgetData: advisorBudget(nil),
		SessionID:  &session.Data.ID,
	}, http.StatusOK)

	suite.Assert().True(response.Success)
	suite.Assert().True(response.Fallback)
	suite.Assert().Contains(response.Response.Response, "COMPREHENSIVE BUDGET ANALYSIS")
	suite.Assert().Equal(assistant.KindRateLimited, response.ErrorKind)
	suite.Assert().Equal("Rate Limited", response.ErrorTitle)
	suite.Assert().Equal(assistant.ConnectionFailed, response.ConnectionStatus)
	suite.Assert().Equal(1, response.RetryCount)
	suite.Assert().Len(suite.completer.requests, assistant.DefaultMaxAttempts)

	stored := suite.getChatSession(session.Data.ID)
	suite.Assert().Equal(1, stored.RetryCount)
	suite.Assert().Equal(assistant.ConnectionFailed, stored.ConnectionStatus)
	suite.Assert().Empty(stored.Messages, "failed exchanges are not logged")

	// A successful request resets the retry count
	suite.completer.err = nil
	response = suite.chat(assistant.Request{Message: "Hi", SessionID: &session.Data.ID}, http.StatusOK)
	suite.Assert().False(response.Fallback)
	suite.Assert().Equal(0, response.RetryCount)

	stored = suite.getChatSession(session.Data.ID)
	suite.Assert().Equal(0, stored.RetryCount)
	suite.Assert().Equal(assistant.ConnectionSuccess, stored.ConnectionStatus)
}

func (suite *TestSuiteStandard) TestAdvisorChatUnavailable() {
	suite.controller.Client.Fallback = nil
	suite.completer.err = errors.New("Failed to fetch")

	response := suite.chat(assistant.Request{Message: "Hi"}, http.StatusServiceUnavailable)
	suite.Assert().False(response.Success)
	suite.Assert().False(response.Fallback)
	suite.Assert().Equal("AI advisor error: Failed to fetch", response.Error)
	suite.Assert().Equal(assistant.KindNetwork, response.ErrorKind)
	suite.Assert().Equal(assistant.KindNetwork.Description(), response.ErrorDescription)
	suite.Assert().Equal(1, response.RetryCount)
	suite.Assert().Nil(response.SessionID)
}

func (suite *TestSuiteStandard) TestAdvisorChatFails() {
	response := suite.chat(assistant.Request{Message: "  "}, http.StatusBadRequest)
	suite.Assert().Equal(assistant.ErrMessageRequired.Error(), response.Error)
	suite.Assert().Empty(suite.completer.requests)

	r := suite.request(http.MethodPost, "http://example.com/v1/advisor/chat", `{"message": [1]}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAdvisorConnection() {
	r := suite.request(http.MethodGet, "http://example.com/v1/advisor/connection", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConnectionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Success)
	suite.Assert().Equal("Connection test successful. AI advisor is working properly.", response.Data.Message)
	suite.Assert().Equal(assistant.ConnectionSuccess, response.Data.ConnectionStatus)
	suite.Assert().GreaterOrEqual(response.Data.LatencyMS, int64(0))
}

func (suite *TestSuiteStandard) TestAdvisorConnectionFails() {
	session := suite.createTestChatSession(v1.ChatSessionEditable{})
	suite.completer.pingErr = errors.New("request timeout")

	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/advisor/connection?session=%s", session.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConnectionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Success)
	suite.Assert().Equal("AI advisor error: request timeout", response.Data.Message)
	suite.Assert().Equal(assistant.KindTimeout, response.Data.ErrorKind)
	suite.Assert().Equal("Request Timeout", response.Data.ErrorTitle)
	suite.Assert().Equal(assistant.ConnectionFailed, response.Data.ConnectionStatus)

	stored := suite.getChatSession(session.Data.ID)
	suite.Assert().Equal(assistant.ConnectionFailed, stored.ConnectionStatus)
	suite.Assert().Equal(0, stored.RetryCount, "connection tests do not count as retries")

	r = suite.request(http.MethodGet, "http://example.com/v1/advisor/connection?session=nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAdvisorQuestions() {
	r := suite.request(http.MethodGet, "http://example.com/v1/advisor/questions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.QuestionsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(advisor.SuggestedQuestions, response.Data.SuggestedQuestions)
	suite.Assert().Equal("", response.Data.AnalysisPrompt)

	budget := suite.createTestBudget(testBudget("March"))
	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/advisor/questions?budget=%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(advisor.AnalysisPrompt("March"), response.Data.AnalysisPrompt)

	r = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/advisor/questions?budget=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/advisor/questions?budget=nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAdvisorOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/advisor", "OPTIONS, POST"},
		{"http://example.com/v1/advisor/chat", "OPTIONS, POST"},
		{"http://example.com/v1/advisor/connection", "OPTIONS, GET"},
		{"http://example.com/v1/advisor/questions", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := suite.request(http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestAdvisorBudgetDataFails() {
	budget := suite.createTestBudget(testBudget("Invalid"))

	tests := []struct {
		name   string
		modify func(*assistant.BudgetData)
		err    string
	}{
		{"Negative income", func(d *assistant.BudgetData) { d.Income.Amount = decimal.NewFromInt(-100) }, "amounts must not be negative"},
		{"Negative expense", func(d *assistant.BudgetData) { d.Expenses[1].Amount = decimal.NewFromInt(-1) }, "amounts must not be negative (expense Food)"},
		{"Unknown currency", func(d *assistant.BudgetData) { d.Income.Currency = "dollars" }, "the currency must be a valid ISO 4217 currency code"},
		{"Unknown frequency", func(d *assistant.BudgetData) { d.Income.Frequency = "yearly" }, "the frequency must be one of daily, weekly, bi-weekly or monthly"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			data := advisorBudget(&budget.Data.ID)
			tt.modify(data)

			r := suite.request(http.MethodPost, "http://example.com/v1/advisor", assistant.Request{Message: "How am I doing?", BudgetData: data})
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response assistant.Response
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().False(response.Success)
			suite.Assert().Equal(tt.err, response.Error)

			chat := suite.chat(assistant.Request{Message: "How am I doing?", BudgetData: data}, http.StatusBadRequest)
			suite.Assert().Equal(tt.err, chat.Error)
		})
	}

	suite.Assert().Empty(suite.completer.requests, "invalid budgets are not sent to the language model")

	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/health-scores?budget=%s", budget.Data.ID), "")
	var scores v1.HealthScoreListResponse
	test.DecodeResponse(suite.T(), &r, &scores)
	suite.Assert().Empty(scores.Data, "invalid budgets are not scored")
}

func (suite *TestSuiteStandard) TestAdvisorBudgetDataDefaults() {
	data := advisorBudget(nil)
	data.Income = types.Income{Amount: decimal.NewFromInt(250), Frequency: types.FrequencyWeekly}

	response := suite.chat(assistant.Request{Message: "How am I doing?", BudgetData: data}, http.StatusOK)
	suite.Require().NotNil(response.ScoreFactors)

	// 250 per week is 1082.50 per month, expenses are 550
	suite.Assert().Equal(51, response.ScoreFactors.IncomeUtilization)
	suite.Require().NotNil(response.SessionID)

	session := suite.getChatSession(*response.SessionID)
	suite.Require().NotNil(session.ContextData)
	suite.Assert().Contains(string(*session.ContextData), `"currency":"GHS"`)
	suite.Assert().Contains(string(*session.ContextData), `"frequency":"monthly"`)
}
