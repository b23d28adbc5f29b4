package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterAdvisorRoutes registers the routes for the financial advisor with
// the RouterGroup that is passed.
func (co Controller) RegisterAdvisorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAdvisor)
	r.POST("", co.CallAdvisor)

	r.OPTIONS("/chat", co.OptionsAdvisor)
	r.POST("/chat", co.Chat)

	r.OPTIONS("/connection", co.OptionsAdvisorGet)
	r.GET("/connection", co.TestConnection)

	r.OPTIONS("/questions", co.OptionsAdvisorGet)
	r.GET("/questions", co.GetQuestions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advisor
// @Success		204
// @Router			/v1/advisor [options]
// @Router			/v1/advisor/chat [options]
func (co Controller) OptionsAdvisor(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advisor
// @Success		204
// @Router			/v1/advisor/connection [options]
// @Router			/v1/advisor/questions [options]
func (co Controller) OptionsAdvisorGet(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Ask the advisor
// @Description	Sends a single request to the advisor without retries. The message "__TEST_CONNECTION__" only checks that the language model is reachable.
// @Tags			Advisor
// @Accept			json
// @Produce		json
// @Success		200		{object}	assistant.Response
// @Failure		400		{object}	assistant.Response
// @Failure		500		{object}	assistant.Response
// @Param			request	body		assistant.Request	true	"Question"
// @Router			/v1/advisor [post]
func (co Controller) CallAdvisor(c *gin.Context) {
	var req assistant.Request
	err := httputil.BindData(c, &req)
	if err != nil {
		c.JSON(httperror.Status(err), assistant.Response{Error: err.Error()})
		return
	}

	if err := normalizeBudgetData(req.BudgetData); err != nil {
		c.JSON(http.StatusBadRequest, assistant.Response{Error: err.Error()})
		return
	}

	resp, err := co.Advisor.Call(c.Request.Context(), req)
	if errors.Is(err, assistant.ErrMessageRequired) {
		c.JSON(http.StatusBadRequest, resp)
		return
	} else if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Advisor")
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary		Chat with the advisor
// @Description	Sends a message to the advisor. Failed requests are retried twice, after 2 and 4 seconds. If all attempts fail, the error is classified and, if enabled, a generated answer is returned.
// @Tags			Advisor
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ChatResponse
// @Failure		503		{object}	ChatResponse
// @Param			request	body		assistant.Request	true	"Question"
// @Router			/v1/advisor/chat [post]
func (co Controller) Chat(c *gin.Context) {
	var req assistant.Request
	err := httputil.BindData(c, &req)
	if err != nil {
		c.JSON(httperror.Status(err), ChatResponse{Response: assistant.Response{Error: err.Error()}})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, ChatResponse{Response: assistant.Response{Error: assistant.ErrMessageRequired.Error()}})
		return
	}

	if err := normalizeBudgetData(req.BudgetData); err != nil {
		c.JSON(http.StatusBadRequest, ChatResponse{Response: assistant.Response{Error: err.Error()}})
		return
	}

	ctx := c.Request.Context()
	state := assistant.LoadState(ctx, req.SessionID)
	reply := co.Client.Ask(ctx, req, &state)

	sessionID := reply.SessionID
	if sessionID == nil {
		sessionID = req.SessionID
	}

	if sessionID != nil {
		if err := assistant.SaveState(ctx, *sessionID, state); err != nil {
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("Advisor")
		}
	}

	status := http.StatusOK
	if !reply.Success {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, newChatResponse(reply, state))
}

// @Summary		Test connection
// @Description	Sends a single test request to the language model and reports the result and its latency
// @Tags			Advisor
// @Produce		json
// @Success		200		{object}	ConnectionResponse
// @Failure		400		{object}	ConnectionResponse
// @Param			session	query		string	false	"ID of the chat session to update the connection status for"
// @Router			/v1/advisor/connection [get]
func (co Controller) TestConnection(c *gin.Context) {
	var query ConnectionQuery
	if err := c.ShouldBind(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ConnectionResponse{Error: &s})
		return
	}

	ctx := c.Request.Context()
	sessionID := query.SessionID.Ptr()

	state := assistant.LoadState(ctx, sessionID)
	result := co.Client.TestConnection(ctx, &state)

	if sessionID != nil {
		if err := assistant.SaveState(ctx, *sessionID, state); err != nil {
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("Advisor")
		}
	}

	data := Connection{
		Success:          result.Success,
		LatencyMS:        result.Latency.Milliseconds(),
		Message:          result.Message,
		ConnectionStatus: state.ConnectionStatus,
	}

	if result.Failure != nil {
		data.Message = result.Failure.Error()
		data.ErrorKind = result.Failure.Kind
		data.ErrorTitle = result.Failure.Title()
		data.ErrorDescription = result.Failure.Description()
	}

	c.JSON(http.StatusOK, ConnectionResponse{Data: &data})
}

// @Summary		Suggested questions
// @Description	Returns questions to start a conversation with. If a budget is given, the prompt for its comprehensive analysis is included.
// @Tags			Advisor
// @Produce		json
// @Success		200		{object}	QuestionsResponse
// @Failure		400		{object}	QuestionsResponse
// @Failure		404		{object}	QuestionsResponse
// @Param			budget	query		string	false	"ID of the budget"
// @Router			/v1/advisor/questions [get]
func (co Controller) GetQuestions(c *gin.Context) {
	var query QuestionsQuery
	if err := c.ShouldBind(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, QuestionsResponse{Error: &s})
		return
	}

	data := Questions{
		SuggestedQuestions: advisor.SuggestedQuestions,
	}

	if id := query.BudgetID.Ptr(); id != nil {
		var budget models.Budget
		err := models.DB.First(&budget, *id).Error
		if err != nil {
			s := err.Error()
			c.JSON(httperror.Status(err), QuestionsResponse{Error: &s})
			return
		}

		data.AnalysisPrompt = advisor.AnalysisPrompt(budget.Name)
	}

	c.JSON(http.StatusOK, QuestionsResponse{Data: &data})
}
