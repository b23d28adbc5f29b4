package v1

import (
	"net/http"
	"time"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterHealthScoreRoutes registers the routes for health scores with
// the RouterGroup that is passed.
func (co Controller) RegisterHealthScoreRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsHealthScoreList)
		r.GET("", co.GetHealthScores)
		r.POST("", co.CreateHealthScore)
	}

	// Health score with ID
	{
		r.OPTIONS("/:id", co.OptionsHealthScoreDetail)
		r.GET("/:id", co.GetHealthScore)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Health Scores
// @Success		204
// @Router			/v1/health-scores [options]
func (co Controller) OptionsHealthScoreList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Health Scores
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/health-scores/{id} [options]
func (co Controller) OptionsHealthScoreDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.HealthScore{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Record health score
// @Description	Calculates the health score of a saved budget and adds it to the history
// @Tags			Health Scores
// @Accept			json
// @Produce		json
// @Success		201			{object}	HealthScoreResponse
// @Failure		400			{object}	HealthScoreResponse
// @Failure		404			{object}	HealthScoreResponse
// @Failure		500			{object}	HealthScoreResponse
// @Param			healthScore	body		HealthScoreEditable	true	"Budget reference"
// @Router			/v1/health-scores [post]
func (co Controller) CreateHealthScore(c *gin.Context) {
	var editable HealthScoreEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreResponse{Error: &s})
		return
	}

	if editable.BudgetID == uuid.Nil {
		s := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, HealthScoreResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, editable.BudgetID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreResponse{Error: &s})
		return
	}

	a := advisor.Analyze(advisor.NewBudgetData(budget.Income, budget.Expenses))
	healthScore := models.HealthScore{
		BudgetID:        &budget.ID,
		Score:           a.Score,
		Factors:         a.Factors,
		Recommendations: a.Recommendations,
		CalculatedAt:    time.Now().UTC(),
	}

	err = models.DB.Create(&healthScore).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreResponse{Error: &s})
		return
	}

	data := newHealthScore(c, healthScore)
	c.JSON(http.StatusCreated, HealthScoreResponse{Data: &data})
}

// @Summary		List health scores
// @Description	Returns the health score history, newest first
// @Tags			Health Scores
// @Produce		json
// @Success		200		{object}	HealthScoreListResponse
// @Failure		400		{object}	HealthScoreListResponse
// @Failure		500		{object}	HealthScoreListResponse
// @Param			budget	query		string	false	"Filter by budget ID"
// @Param			offset	query		uint	false	"The offset of the first health score returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of health scores to return. Defaults to 50."
// @Router			/v1/health-scores [get]
func (co Controller) GetHealthScores(c *gin.Context) {
	var filter HealthScoreQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, HealthScoreListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("calculated_at DESC").
		Where(filter.model(), queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var healthScores []models.HealthScore
	err := q.Find(&healthScores).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreListResponse{Error: &s})
		return
	}

	data := make([]HealthScore, 0)
	for _, h := range healthScores {
		data = append(data, newHealthScore(c, h))
	}

	c.JSON(http.StatusOK, HealthScoreListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get health score
// @Description	Returns a specific health score
// @Tags			Health Scores
// @Produce		json
// @Success		200	{object}	HealthScoreResponse
// @Failure		400	{object}	HealthScoreResponse
// @Failure		404	{object}	HealthScoreResponse
// @Failure		500	{object}	HealthScoreResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/health-scores/{id} [get]
func (co Controller) GetHealthScore(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreResponse{Error: &s})
		return
	}

	var healthScore models.HealthScore
	err = models.DB.First(&healthScore, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), HealthScoreResponse{Error: &s})
		return
	}

	data := newHealthScore(c, healthScore)
	c.JSON(http.StatusOK, HealthScoreResponse{Data: &data})
}
