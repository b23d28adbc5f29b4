package v1

import (
	"encoding/json"
	"fmt"

	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	ez_uuid "github.com/cediwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatSessionEditable struct {
	BudgetID *uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget the session is about
}

type ChatSessionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/chat-sessions/0ddd7f3b-1c2f-4b9a-9f0e-3f4f3a5a2b1c"` // The chat session itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // The budget, empty if there is none
}

// ChatSession is the API v1 representation of a ChatSession.
type ChatSession struct {
	models.DefaultModel
	ChatSessionEditable
	Messages    types.Messages   `json:"messages"`    // Messages of the session, oldest first
	ContextData *json.RawMessage `json:"contextData"` // Budget, health score and score factors of the last exchange
	assistant.SessionState
	Links ChatSessionLinks `json:"links"`
}

func newChatSession(c *gin.Context, model models.ChatSession) ChatSession {
	url := c.GetString(string(models.DBContextURL))

	s := ChatSession{
		DefaultModel: model.DefaultModel,
		ChatSessionEditable: ChatSessionEditable{
			BudgetID: model.BudgetID,
		},
		Messages: model.Messages,
		SessionState: assistant.SessionState{
			RetryCount:       model.RetryCount,
			ConnectionStatus: assistant.ConnectionStatus(model.ConnectionStatus),
		},
		Links: ChatSessionLinks{
			Self: fmt.Sprintf("%s/v1/chat-sessions/%s", url, model.ID),
		},
	}

	if s.Messages == nil {
		s.Messages = types.Messages{}
	}

	if len(model.ContextData) > 0 {
		raw := json.RawMessage(model.ContextData)
		s.ContextData = &raw
	}

	if s.ConnectionStatus == "" {
		s.ConnectionStatus = assistant.ConnectionUnknown
	}

	if model.BudgetID != nil {
		s.Links.Budget = fmt.Sprintf("%s/v1/budgets/%s", url, *model.BudgetID)
	}

	return s
}

type ChatSessionListResponse struct {
	Data       []ChatSession `json:"data"`                                                          // List of chat sessions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type ChatSessionResponse struct {
	Data  *ChatSession `json:"data"`                                                          // Data for the chat session
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ChatSessionQueryFilter struct {
	BudgetID ez_uuid.UUID `form:"budget"`                     // By ID of the budget
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first chat session returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of chat sessions to return. Defaults to 50.
}

func (f ChatSessionQueryFilter) model() models.ChatSession {
	return models.ChatSession{
		BudgetID: f.BudgetID.Ptr(),
	}
}
