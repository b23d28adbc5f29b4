package v1

import (
	"net/http"

	"github.com/cediwise/backend/internal/advisor"
	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAnalysisRoutes registers the routes for the analysis of
// unsaved budgets with the RouterGroup that is passed.
func (co Controller) RegisterAnalysisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAnalysis)
	r.POST("", co.CreateAnalysis)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis [options]
func (co Controller) OptionsAnalysis(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/analysis [options]
func (co Controller) OptionsBudgetAnalysis(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Analyze budget
// @Description	Returns the monthly overview, the health score with its factors and the recommendations for a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	AnalysisResponse
// @Failure		400	{object}	AnalysisResponse
// @Failure		404	{object}	AnalysisResponse
// @Failure		500	{object}	AnalysisResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/analysis [get]
func (co Controller) GetBudgetAnalysis(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), AnalysisResponse{Error: &s})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), AnalysisResponse{Error: &s})
		return
	}

	data := newAnalysis(advisor.NewBudgetData(budget.Income, budget.Expenses))
	c.JSON(http.StatusOK, AnalysisResponse{Data: &data})
}

// @Summary		Analyze unsaved budget
// @Description	Analyzes an income and its expenses without saving them
// @Tags			Analysis
// @Accept			json
// @Produce		json
// @Success		200		{object}	AnalysisResponse
// @Failure		400		{object}	AnalysisResponse
// @Param			budget	body		AnalysisInput	true	"Income and expenses"
// @Router			/v1/analysis [post]
func (co Controller) CreateAnalysis(c *gin.Context) {
	var input AnalysisInput
	err := httputil.BindData(c, &input)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), AnalysisResponse{Error: &s})
		return
	}

	// Reuse the normalization of budgets. The name is not used.
	editable := BudgetEditable{Income: *input.Income, Expenses: input.Expenses}
	err = editable.normalize()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{Error: &s})
		return
	}

	data := newAnalysis(advisor.NewBudgetData(editable.Income, editable.Expenses))
	c.JSON(http.StatusOK, AnalysisResponse{Data: &data})
}
