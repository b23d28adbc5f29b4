// Package assistant answers financial advice questions with a language
// model. It enriches questions with the budget analysis and market
// insights, retries failed requests and falls back to generated answers.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/llm"
	"github.com/cediwise/backend/internal/market"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestConnectionMessage requests a connectivity probe instead of an answer.
const TestConnectionMessage = "__TEST_CONNECTION__"

// historyLength is the number of earlier session messages sent to the model.
const historyLength = 10

const connectionTestSuccess = "Connection test successful. AI advisor is working properly."

// ErrMessageRequired is returned for requests without a message.
var ErrMessageRequired = errors.New("Message parameter is required and must be a string")

// BudgetData is the budget sent with a question.
type BudgetData struct {
	ID *uuid.UUID `json:"id,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the saved budget, if any
	advisor.BudgetData
}

// Request is a question to the advisor.
type Request struct {
	Message    string      `json:"message" example:"How can I improve my financial health score?"`     // The question
	BudgetData *BudgetData `json:"budgetData,omitempty"`                                               // Budget to analyze, monthly amounts
	SessionID  *uuid.UUID  `json:"sessionId,omitempty" example:"0ddd7f3b-1c2f-4b9a-9f0e-3f4f3a5a2b1c"` // Chat session to continue
}

// Response is the answer of the advisor.
type Response struct {
	Success         bool                `json:"success" example:"true"`                                          // Was the request successful?
	Response        string              `json:"response,omitempty" example:"Your savings rate of 45%..."`        // The answer
	HealthScore     *int                `json:"healthScore,omitempty" example:"95"`                              // Health score of the budget, if one was sent
	ScoreFactors    *types.ScoreFactors `json:"scoreFactors,omitempty"`                                          // Factors of the health score
	Recommendations []string            `json:"recommendations,omitempty"`                                       // Recommendations for the budget
	SessionID       *uuid.UUID          `json:"sessionId,omitempty"`                                             // Chat session the exchange was logged to
	HealthCheck     bool                `json:"healthCheck,omitempty" example:"false"`                           // The response is the result of a connection test
	Error           string              `json:"error,omitempty" example:"AI advisor error: rate_limit exceeded"` // The error, if any occurred
}

// Service performs single requests to the advisor.
type Service struct {
	completer llm.Completer
	now       func() time.Time
}

var _ Caller = (*Service)(nil)

// NewService creates a service that answers with the given completer.
func NewService(completer llm.Completer) *Service {
	return &Service{
		completer: completer,
		now:       time.Now,
	}
}

func failure(err error) (Response, error) {
	err = fmt.Errorf("AI advisor error: %w", err)
	return Response{Error: err.Error()}, err
}

// analysis scores the budget of the request. It returns nil if the
// request has no budget.
func analysis(req Request) *advisor.Analysis {
	if req.BudgetData == nil {
		return nil
	}

	a := advisor.Analyze(req.BudgetData.BudgetData)
	return &a
}

// Call answers a single request without retries.
//
// Persisting the exchange is best effort. Errors are logged and do not
// fail the request.
func (s *Service) Call(ctx context.Context, req Request) (Response, error) {
	if req.Message == TestConnectionMessage {
		if err := s.completer.Ping(ctx); err != nil {
			return failure(err)
		}

		return Response{Success: true, Response: connectionTestSuccess, HealthCheck: true}, nil
	}

	if strings.TrimSpace(req.Message) == "" {
		return Response{Error: ErrMessageRequired.Error()}, ErrMessageRequired
	}

	db := models.DB.WithContext(ctx)
	a := analysis(req)

	marketInsights, exchangeInsights, err := market.RecentInsights(db, s.now())
	if err != nil {
		log.Warn().Err(err).Msg("Advisor")
	}

	var contextMessage string
	if a != nil {
		contextMessage = advisor.ContextMessage(&req.BudgetData.BudgetData, a.Score, a.Factors, marketInsights, exchangeInsights)
	} else {
		contextMessage = advisor.ContextMessage(nil, 0, types.ScoreFactors{}, marketInsights, exchangeInsights)
	}

	session := loadSession(db, req.SessionID)

	answer, err := s.completer.Complete(ctx, llm.Request{
		System:  advisor.SystemPrompt,
		History: session.Messages.Last(historyLength),
		Prompt:  req.Message + contextMessage,
	})
	if err != nil {
		return failure(err)
	}

	resp := Response{
		Success:  true,
		Response: answer,
	}

	if a != nil {
		resp.HealthScore = &a.Score
		resp.ScoreFactors = &a.Factors
		resp.Recommendations = a.Recommendations
	}

	if id, ok := s.logExchange(db, session, req, answer, a); ok {
		resp.SessionID = &id
	}

	if a != nil && req.BudgetData.ID != nil {
		s.recordHealthScore(db, *req.BudgetData.ID, a)
	}

	return resp, nil
}

// Fallback generates an answer without the language model.
func (s *Service) Fallback(ctx context.Context, req Request) Response {
	marketInsights, exchangeInsights, err := market.RecentInsights(models.DB.WithContext(ctx), s.now())
	if err != nil {
		log.Warn().Err(err).Msg("Advisor")
	}

	in := advisor.FallbackInput{
		Message:          req.Message,
		MarketInsights:   marketInsights,
		ExchangeInsights: exchangeInsights,
	}

	resp := Response{Success: true, SessionID: req.SessionID}

	if a := analysis(req); a != nil {
		in.Budget = &req.BudgetData.BudgetData
		in.HealthScore = &a.Score
		in.Recommendations = a.Recommendations

		resp.HealthScore = &a.Score
		resp.ScoreFactors = &a.Factors
		resp.Recommendations = a.Recommendations
	}

	resp.Response = advisor.Respond(in)
	return resp
}

// loadSession returns the chat session with the given ID. If there is
// no ID or the session cannot be loaded, an unsaved session is returned.
func loadSession(db *gorm.DB, id *uuid.UUID) models.ChatSession {
	var session models.ChatSession
	if id == nil {
		return session
	}

	if err := db.First(&session, *id).Error; err != nil {
		log.Warn().Err(err).Str("session", id.String()).Msg("Advisor")
		return models.ChatSession{}
	}

	return session
}

type contextData struct {
	BudgetData   *advisor.BudgetData `json:"budgetData"`
	HealthScore  *int                `json:"healthScore"`
	ScoreFactors *types.ScoreFactors `json:"scoreFactors"`
}

// logExchange appends the question and the answer to the session and
// saves it. New sessions are created.
func (s *Service) logExchange(db *gorm.DB, session models.ChatSession, req Request, answer string, a *advisor.Analysis) (uuid.UUID, bool) {
	now := s.now().UTC()
	session.Messages = append(session.Messages,
		types.Message{Role: types.RoleUser, Content: req.Message, Timestamp: now},
		types.Message{Role: types.RoleAssistant, Content: answer, Timestamp: now},
	)

	cd := contextData{}
	if a != nil {
		cd.BudgetData = &req.BudgetData.BudgetData
		cd.HealthScore = &a.Score
		cd.ScoreFactors = &a.Factors

		if req.BudgetData.ID != nil {
			session.BudgetID = req.BudgetData.ID
		}
	}

	data, err := json.Marshal(cd)
	if err != nil {
		log.Error().Err(err).Msg("Advisor")
		return uuid.Nil, false
	}
	session.ContextData = data

	if session.ID == uuid.Nil {
		err = db.Create(&session).Error
	} else {
		err = db.Save(&session).Error
	}

	if err != nil {
		log.Error().Err(err).Msg("Advisor")
		return uuid.Nil, false
	}

	return session.ID, true
}

func (s *Service) recordHealthScore(db *gorm.DB, budgetID uuid.UUID, a *advisor.Analysis) {
	err := db.Create(&models.HealthScore{
		BudgetID:        &budgetID,
		Score:           a.Score,
		Factors:         a.Factors,
		Recommendations: a.Recommendations,
		CalculatedAt:    s.now().UTC(),
	}).Error
	if err != nil {
		log.Error().Err(err).Str("budget", budgetID.String()).Msg("Advisor")
	}
}

// LoadState returns the client state of a chat session. Sessions that
// do not exist have the initial state.
func LoadState(ctx context.Context, id *uuid.UUID) SessionState {
	state := SessionState{ConnectionStatus: ConnectionUnknown}
	if id == nil {
		return state
	}

	var session models.ChatSession
	if err := models.DB.WithContext(ctx).First(&session, *id).Error; err != nil {
		return state
	}

	state.RetryCount = session.RetryCount
	if session.ConnectionStatus != "" {
		state.ConnectionStatus = ConnectionStatus(session.ConnectionStatus)
	}

	return state
}

// SaveState stores the client state of a chat session.
func SaveState(ctx context.Context, id uuid.UUID, state SessionState) error {
	return models.DB.WithContext(ctx).
		Model(&models.ChatSession{DefaultModel: models.DefaultModel{ID: id}}).
		Select("RetryCount", "ConnectionStatus").
		Updates(models.ChatSession{RetryCount: state.RetryCount, ConnectionStatus: string(state.ConnectionStatus)}).Error
}
