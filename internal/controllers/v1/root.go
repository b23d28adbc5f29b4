package v1

import (
	"net/http"

	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`                 // URL of Budget collection endpoint
	Analysis       string `json:"analysis" example:"https://example.com/api/v1/analysis"`               // URL of the budget analysis endpoint
	HealthScores   string `json:"healthScores" example:"https://example.com/api/v1/health-scores"`      // URL of Health Score collection endpoint
	ChatSessions   string `json:"chatSessions" example:"https://example.com/api/v1/chat-sessions"`      // URL of Chat Session collection endpoint
	Advisor        string `json:"advisor" example:"https://example.com/api/v1/advisor"`                 // URL of the advisor endpoint
	Prices         string `json:"prices" example:"https://example.com/api/v1/prices"`                   // URL of the price endpoint
	ExchangeRates  string `json:"exchangeRates" example:"https://example.com/api/v1/exchange-rates"`    // URL of the exchange rate endpoint
	MarketInsights string `json:"marketInsights" example:"https://example.com/api/v1/market/insights"` // URL of the market insights endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:        url + "/v1/budgets",
			Analysis:       url + "/v1/analysis",
			HealthScores:   url + "/v1/health-scores",
			ChatSessions:   url + "/v1/chat-sessions",
			Advisor:        url + "/v1/advisor",
			Prices:         url + "/v1/prices",
			ExchangeRates:  url + "/v1/exchange-rates",
			MarketInsights: url + "/v1/market/insights",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httperror.New(errCleanupConfirmation))
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		models.HealthScore{},
		models.ChatSession{},
		models.Budget{},
		models.PriceRecord{},
		models.ExchangeRate{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.Status(http.StatusNoContent)
}
