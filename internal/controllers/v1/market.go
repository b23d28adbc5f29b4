package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/httputil"
	"github.com/cediwise/backend/internal/market"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterPriceRoutes registers the routes for commodity prices with
// the RouterGroup that is passed.
func (co Controller) RegisterPriceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMarket)
	r.GET("", co.GetPrices)

	r.OPTIONS("/history", co.OptionsMarket)
	r.GET("/history", co.GetPriceHistory)
}

// RegisterExchangeRateRoutes registers the routes for exchange rates with
// the RouterGroup that is passed.
func (co Controller) RegisterExchangeRateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMarket)
	r.GET("", co.GetExchangeRates)

	r.OPTIONS("/history", co.OptionsMarket)
	r.GET("/history", co.GetExchangeRateHistory)
}

// RegisterMarketRoutes registers the routes for market insights with
// the RouterGroup that is passed.
func (co Controller) RegisterMarketRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/insights", co.OptionsMarket)
	r.GET("/insights", co.GetMarketInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Market
// @Success		204
// @Router			/v1/prices [options]
// @Router			/v1/prices/history [options]
// @Router			/v1/exchange-rates [options]
// @Router			/v1/exchange-rates/history [options]
// @Router			/v1/market/insights [options]
func (co Controller) OptionsMarket(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Current prices
// @Description	Returns current commodity prices for a country and records them. Countries without a catalog get the prices for Ghana.
// @Tags			Market
// @Produce		json
// @Success		200		{object}	QuoteListResponse
// @Failure		400		{object}	QuoteListResponse
// @Param			country	query		string	false	"Country"
// @Param			type	query		string	false	"retail or wholesale"
// @Param			item	query		string	false	"Glob pattern for item names"
// @Router			/v1/prices [get]
func (co Controller) GetPrices(c *gin.Context) {
	var query PriceQuery
	if err := c.ShouldBind(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, QuoteListResponse{Error: &s})
		return
	}

	priceType, err := query.priceType()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, QuoteListResponse{Error: &s})
		return
	}

	quotes, err := co.Market.RefreshPrices(c.Request.Context(), query.Country, priceType, query.Item)
	if err != nil {
		// The quotes are still valid if they could not be recorded
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("Prices")
	}

	if quotes == nil {
		quotes = []market.Quote{}
	}

	c.JSON(http.StatusOK, QuoteListResponse{Data: quotes})
}

// @Summary		Price history
// @Description	Returns recorded prices, newest first
// @Tags			Market
// @Produce		json
// @Success		200			{object}	PriceRecordListResponse
// @Failure		400			{object}	PriceRecordListResponse
// @Failure		500			{object}	PriceRecordListResponse
// @Param			country		query		string	false	"Filter by country"
// @Param			category	query		string	false	"Filter by category"
// @Param			type		query		string	false	"Filter by price type"
// @Param			offset		query		uint	false	"The offset of the first price returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of prices to return. Defaults to 50."
// @Router			/v1/prices/history [get]
func (co Controller) GetPriceHistory(c *gin.Context) {
	var filter PriceRecordQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, PriceRecordListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("timestamp DESC, item_name ASC").
		Where(filter.model(), queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var records []models.PriceRecord
	err := q.Find(&records).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), PriceRecordListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), PriceRecordListResponse{Error: &s})
		return
	}

	data := make([]PriceRecord, 0)
	for _, record := range records {
		data = append(data, newPriceRecord(c, record))
	}

	c.JSON(http.StatusOK, PriceRecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Current exchange rates
// @Description	Fetches the latest exchange rates from the base currency to USD, GHS, EUR, GBP, NGN, CAD, JPY and AUD and records them
// @Tags			Market
// @Produce		json
// @Success		200		{object}	ExchangeRateListResponse
// @Failure		400		{object}	ExchangeRateListResponse
// @Failure		502		{object}	ExchangeRateListResponse
// @Param			base	query		string	false	"Base currency"
// @Router			/v1/exchange-rates [get]
func (co Controller) GetExchangeRates(c *gin.Context) {
	var query RateQuery
	if err := c.ShouldBind(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ExchangeRateListResponse{Error: &s})
		return
	}

	base := strings.ToUpper(query.Base)
	if base != "" && !types.ValidCurrency(base) {
		s := errInvalidCurrency.Error()
		c.JSON(http.StatusBadRequest, ExchangeRateListResponse{Error: &s})
		return
	}

	rates, err := co.Market.RefreshRates(c.Request.Context(), base)
	if errors.Is(err, market.ErrUnsupportedCurrency) {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExchangeRateListResponse{Error: &s})
		return
	} else if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Exchange rates")
		s := errRatesUnavailable.Error()
		c.JSON(http.StatusBadGateway, ExchangeRateListResponse{Error: &s})
		return
	}

	data := make([]ExchangeRate, 0)
	for _, rate := range rates {
		data = append(data, newExchangeRate(rate))
	}

	c.JSON(http.StatusOK, ExchangeRateListResponse{Data: data})
}

// @Summary		Exchange rate history
// @Description	Returns recorded exchange rates, newest first
// @Tags			Market
// @Produce		json
// @Success		200		{object}	ExchangeRateListResponse
// @Failure		400		{object}	ExchangeRateListResponse
// @Failure		500		{object}	ExchangeRateListResponse
// @Param			base	query		string	false	"Filter by base currency"
// @Param			target	query		string	false	"Filter by target currency"
// @Param			offset	query		uint	false	"The offset of the first rate returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of rates to return. Defaults to 50."
// @Router			/v1/exchange-rates/history [get]
func (co Controller) GetExchangeRateHistory(c *gin.Context) {
	var filter ExchangeRateQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ExchangeRateListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("timestamp DESC, target_currency ASC").
		Where(filter.model(), queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rates []models.ExchangeRate
	err := q.Find(&rates).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ExchangeRateListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), ExchangeRateListResponse{Error: &s})
		return
	}

	data := make([]ExchangeRate, 0)
	for _, rate := range rates {
		data = append(data, newExchangeRate(rate))
	}

	c.JSON(http.StatusOK, ExchangeRateListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Market insights
// @Description	Summarizes the price history of the last 7 days and the exchange rate history of the last day. These are the insights the advisor uses as context.
// @Tags			Market
// @Produce		json
// @Success		200	{object}	InsightsResponse
// @Failure		500	{object}	InsightsResponse
// @Router			/v1/market/insights [get]
func (co Controller) GetMarketInsights(c *gin.Context) {
	prices, rates, err := market.RecentInsights(models.DB.WithContext(c.Request.Context()), co.Market.Now())
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), InsightsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, InsightsResponse{Data: &Insights{
		MarketInsights:   prices,
		ExchangeInsights: rates,
	}})
}
