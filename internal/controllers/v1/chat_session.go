package v1

import (
	"net/http"

	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterChatSessionRoutes registers the routes for chat sessions with
// the RouterGroup that is passed.
func (co Controller) RegisterChatSessionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsChatSessionList)
		r.GET("", co.GetChatSessions)
		r.POST("", co.CreateChatSession)
	}

	// Chat session with ID
	{
		r.OPTIONS("/:id", co.OptionsChatSessionDetail)
		r.GET("/:id", co.GetChatSession)
		r.DELETE("/:id", co.DeleteChatSession)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat Sessions
// @Success		204
// @Router			/v1/chat-sessions [options]
func (co Controller) OptionsChatSessionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat Sessions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/chat-sessions/{id} [options]
func (co Controller) OptionsChatSessionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.ChatSession{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create chat session
// @Description	Creates an empty chat session, optionally about a saved budget
// @Tags			Chat Sessions
// @Accept			json
// @Produce		json
// @Success		201			{object}	ChatSessionResponse
// @Failure		400			{object}	ChatSessionResponse
// @Failure		500			{object}	ChatSessionResponse
// @Param			chatSession	body		ChatSessionEditable	true	"Chat session"
// @Router			/v1/chat-sessions [post]
func (co Controller) CreateChatSession(c *gin.Context) {
	var editable ChatSessionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionResponse{Error: &s})
		return
	}

	session := models.ChatSession{
		BudgetID:         editable.BudgetID,
		ConnectionStatus: string(assistant.ConnectionUnknown),
	}

	err = models.DB.Create(&session).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionResponse{Error: &s})
		return
	}

	data := newChatSession(c, session)
	c.JSON(http.StatusCreated, ChatSessionResponse{Data: &data})
}

// @Summary		List chat sessions
// @Description	Returns a list of chat sessions, newest first
// @Tags			Chat Sessions
// @Produce		json
// @Success		200		{object}	ChatSessionListResponse
// @Failure		400		{object}	ChatSessionListResponse
// @Failure		500		{object}	ChatSessionListResponse
// @Param			budget	query		string	false	"Filter by budget ID"
// @Param			offset	query		uint	false	"The offset of the first chat session returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of chat sessions to return. Defaults to 50."
// @Router			/v1/chat-sessions [get]
func (co Controller) GetChatSessions(c *gin.Context) {
	var filter ChatSessionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ChatSessionListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("created_at DESC").
		Where(filter.model(), queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var sessions []models.ChatSession
	err := q.Find(&sessions).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionListResponse{Error: &s})
		return
	}

	data := make([]ChatSession, 0)
	for _, session := range sessions {
		data = append(data, newChatSession(c, session))
	}

	c.JSON(http.StatusOK, ChatSessionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get chat session
// @Description	Returns a specific chat session with all messages
// @Tags			Chat Sessions
// @Produce		json
// @Success		200	{object}	ChatSessionResponse
// @Failure		400	{object}	ChatSessionResponse
// @Failure		404	{object}	ChatSessionResponse
// @Failure		500	{object}	ChatSessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/chat-sessions/{id} [get]
func (co Controller) GetChatSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionResponse{Error: &s})
		return
	}

	var session models.ChatSession
	err = models.DB.First(&session, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ChatSessionResponse{Error: &s})
		return
	}

	data := newChatSession(c, session)
	c.JSON(http.StatusOK, ChatSessionResponse{Data: &data})
}

// @Summary		Delete chat session
// @Description	Deletes a chat session
// @Tags			Chat Sessions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/chat-sessions/{id} [delete]
func (co Controller) DeleteChatSession(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var session models.ChatSession
	err = models.DB.First(&session, uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&session).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
