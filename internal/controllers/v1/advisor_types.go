package v1

import (
	"fmt"
	"strings"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/types"
	ez_uuid "github.com/cediwise/backend/internal/uuid"
)

// normalizeBudgetData validates the budget sent with an advisor request
// the same way budgets are validated.
//
// The frequency and the currency default to monthly and GHS. The income is
// converted to a monthly amount.
func normalizeBudgetData(d *assistant.BudgetData) error {
	if d == nil {
		return nil
	}

	income := &d.Income
	if income.Frequency == "" {
		income.Frequency = types.FrequencyMonthly
	}

	if income.Currency == "" {
		income.Currency = "GHS"
	}

	if !income.Frequency.Valid() {
		return errInvalidFrequency
	}

	if !types.ValidCurrency(income.Currency) {
		return errInvalidCurrency
	}

	if income.Amount.IsNegative() {
		return errNegativeAmount
	}

	income.Amount = advisor.NormalizeMonthly(income.Amount, income.Frequency)
	income.Frequency = types.FrequencyMonthly

	for i := range d.Expenses {
		e := &d.Expenses[i]
		e.Category = strings.TrimSpace(e.Category)

		if e.Amount.IsNegative() {
			return fmt.Errorf("%w (expense %s)", errNegativeAmount, e.Category)
		}
	}

	return nil
}

// ChatResponse is the answer to a chat message sent through the
// retrying client.
type ChatResponse struct {
	assistant.Response
	Fallback         bool                `json:"fallback" example:"false"`                                                                                     // The answer was generated without the language model
	ErrorKind        assistant.ErrorKind `json:"errorKind,omitempty" example:"rate_limited" enums:"quota_exceeded,rate_limited,network_error,timeout,unknown"` // Classification of the error if all attempts failed
	ErrorTitle       string              `json:"errorTitle,omitempty" example:"Rate Limited"`                                                                  // Short title for the error
	ErrorDescription string              `json:"errorDescription,omitempty" example:"Too many requests. Please wait a moment before trying again."`            // Explanation of the error
	assistant.SessionState
}

func newChatResponse(reply assistant.Reply, state assistant.SessionState) ChatResponse {
	r := ChatResponse{
		Response:     reply.Response,
		Fallback:     reply.Fallback,
		SessionState: state,
	}

	if reply.Failure != nil {
		r.ErrorKind = reply.Failure.Kind
		r.ErrorTitle = reply.Failure.Title()
		r.ErrorDescription = reply.Failure.Description()
	}

	return r
}

type ConnectionQuery struct {
	SessionID ez_uuid.UUID `form:"session"` // Chat session to update the connection status of
}

// Connection is the result of a connection test.
type Connection struct {
	Success          bool                       `json:"success" example:"true"`                                                        // Is the advisor reachable?
	LatencyMS        int64                      `json:"latencyMs" example:"412"`                                                       // Duration of the test request in milliseconds
	Message          string                     `json:"message" example:"Connection test successful. AI advisor is working properly."` // Message of the advisor
	ConnectionStatus assistant.ConnectionStatus `json:"connectionStatus" example:"success" enums:"unknown,success,failed"`             // The connection status after the test
	ErrorKind        assistant.ErrorKind        `json:"errorKind,omitempty" example:"network_error"`                                   // Classification of the error if the test failed
	ErrorTitle       string                     `json:"errorTitle,omitempty" example:"Network Error"`                                  // Short title for the error
	ErrorDescription string                     `json:"errorDescription,omitempty" example:"Unable to connect to the AI service."`     // Explanation of the error
}

type ConnectionResponse struct {
	Data  *Connection `json:"data"`                                                          // Result of the connection test
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type QuestionsQuery struct {
	BudgetID ez_uuid.UUID `form:"budget"` // Budget to create the analysis prompt for
}

// Questions are prepared messages for the advisor.
type Questions struct {
	SuggestedQuestions []string `json:"suggestedQuestions"`                                                                                  // Questions to start a conversation with
	AnalysisPrompt     string   `json:"analysisPrompt,omitempty" example:"Please provide a comprehensive financial analysis for the budget"` // Prompt requesting an analysis of the budget
}

type QuestionsResponse struct {
	Data  *Questions `json:"data"`                                                          // Prepared messages
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
