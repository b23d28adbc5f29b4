package v1_test

import (
	"fmt"
	"net/http"

	"github.com/cediwise/backend/internal/assistant"
	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestChatSessionsCreate() {
	budget := suite.createTestBudget(testBudget("Chat"))

	session := suite.createTestChatSession(v1.ChatSessionEditable{BudgetID: &budget.Data.ID})
	suite.Require().NotNil(session.Data)
	suite.Assert().Equal(&budget.Data.ID, session.Data.BudgetID)
	suite.Assert().Equal(assistant.ConnectionUnknown, session.Data.ConnectionStatus)
	suite.Assert().Equal(0, session.Data.RetryCount)
	suite.Assert().Empty(session.Data.Messages)
	suite.Assert().Nil(session.Data.ContextData)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/chat-sessions/%s", session.Data.ID), session.Data.Links.Self)
	suite.Assert().Equal(budget.Data.Links.Self, session.Data.Links.Budget)

	session = suite.createTestChatSession(v1.ChatSessionEditable{})
	suite.Assert().Nil(session.Data.BudgetID)
	suite.Assert().Equal("", session.Data.Links.Budget)
}

func (suite *TestSuiteStandard) TestChatSessionsCreateFails() {
	unknown := uuid.New()

	r := suite.request(http.MethodPost, "http://example.com/v1/chat-sessions", v1.ChatSessionEditable{BudgetID: &unknown})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ChatSessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrBudgetReference.Error(), *response.Error)

	r = suite.request(http.MethodPost, "http://example.com/v1/chat-sessions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/chat-sessions", `{"budgetId": 12}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestChatSessionsList() {
	budget := suite.createTestBudget(testBudget("Chat"))

	suite.createTestChatSession(v1.ChatSessionEditable{BudgetID: &budget.Data.ID})
	suite.createTestChatSession(v1.ChatSessionEditable{})
	latest := suite.createTestChatSession(v1.ChatSessionEditable{BudgetID: &budget.Data.ID})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 2},
		{"Unknown budget", fmt.Sprintf("budget=%s", uuid.New()), 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=1&limit=1", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/chat-sessions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.ChatSessionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/chat-sessions", "")
	var response v1.ChatSessionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(latest.Data.ID, response.Data[0].ID, "newest sessions are listed first")
	suite.Assert().Equal(int64(3), response.Pagination.Total)
	suite.Assert().Equal(50, response.Pagination.Limit)

	r = suite.request(http.MethodGet, "http://example.com/v1/chat-sessions?budget=nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestChatSessionsGetAndDelete() {
	session := suite.createTestChatSession(v1.ChatSessionEditable{})

	r := suite.request(http.MethodGet, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChatSessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(session.Data.ID, response.Data.ID)

	r = suite.request(http.MethodDelete, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, session.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "there is no chat session")

	r = suite.request(http.MethodDelete, "http://example.com/v1/chat-sessions/nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestChatSessionsOptions() {
	session := suite.createTestChatSession(v1.ChatSessionEditable{})

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/chat-sessions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{session.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{fmt.Sprintf("http://example.com/v1/chat-sessions/%s", uuid.New()), http.StatusNotFound, ""},
		{"http://example.com/v1/chat-sessions/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := suite.request(http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}
