package v1_test

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/market"
	"github.com/cediwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getQuotes(query string, expectedStatus int) v1.QuoteListResponse {
	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/prices?%s", query), "")
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var response v1.QuoteListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) getRates(query string, expectedStatus int) v1.ExchangeRateListResponse {
	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/exchange-rates?%s", query), "")
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var response v1.ExchangeRateListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestPrices() {
	response := suite.getQuotes("", http.StatusOK)
	suite.Require().Len(response.Data, 10)

	for _, q := range response.Data {
		suite.Assert().Equal("Ghana", q.Country)
		suite.Assert().Equal(market.PriceTypeRetail, q.PriceType)
		suite.Assert().Equal("GHS", q.Currency)
		suite.Assert().LessOrEqual(math.Abs(q.ChangePercent.InexactFloat64()), 3.0, "change of %s", q.Item)
	}

	suite.Assert().Equal("Rice (1kg)", response.Data[0].Item)
	suite.Assert().True(decimal.RequireFromString("8.50").Equal(response.Data[0].Price))
}

func (suite *TestSuiteStandard) TestPricesQuery() {
	tests := []struct {
		name    string
		query   string
		len     int
		country string
	}{
		{"Wholesale", "type=wholesale", 10, "Ghana"},
		{"Retail in upper case", "type=RETAIL", 10, "Ghana"},
		{"Item pattern", "item=rice*", 1, "Ghana"},
		{"Item pattern without match", "item=caviar*", 0, "Ghana"},
		{"Country ignores case", "country=nigeria", 8, "Nigeria"},
		{"Unknown country", "country=Atlantis", 10, "Ghana"},
		{"Pattern and country", "country=United%20Kingdom&item=*bread*", 1, "United Kingdom"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			response := suite.getQuotes(tt.query, http.StatusOK)
			suite.Require().Len(response.Data, tt.len)
			for _, q := range response.Data {
				suite.Assert().Equal(tt.country, q.Country)
			}
		})
	}

	response := suite.getQuotes("type=wholesale&item=Rice*", http.StatusOK)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(decimal.RequireFromString("6.80").Equal(response.Data[0].Price))
	suite.Assert().Equal(market.PriceTypeWholesale, response.Data[0].PriceType)

	response = suite.getQuotes("type=bulk", http.StatusBadRequest)
	suite.Assert().Equal("the price type must be retail or wholesale", *response.Error)
}

func (suite *TestSuiteStandard) TestPricesAreRecorded() {
	suite.getQuotes("", http.StatusOK)
	suite.getQuotes("country=Nigeria&type=wholesale", http.StatusOK)

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"All", "", 18},
		{"Country", "country=Ghana", 10},
		{"Category", "category=Utilities", 3},
		{"Price type", "type=wholesale", 8},
		{"Country and category", "country=Nigeria&category=Construction", 1},
		{"Unknown country", "country=Atlantis", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/prices/history?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.PriceRecordListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/prices/history?country=Ghana&limit=2&offset=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PriceRecordListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(2, response.Pagination.Limit)
	suite.Assert().Equal(uint(1), response.Pagination.Offset)
	suite.Assert().Equal("internal-data", response.Data[0].Source)
	suite.Assert().True(response.Data[0].ChangePercent.Valid)
	suite.Assert().Equal("http://example.com/v1/prices/history?country=Ghana", response.Data[0].Links.Self)

	r = suite.request(http.MethodGet, "http://example.com/v1/prices/history?limit=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPricesDatabaseError() {
	suite.CloseDB()

	// Quotes are returned even if they cannot be recorded
	response := suite.getQuotes("", http.StatusOK)
	suite.Assert().Len(response.Data, 10)

	r := suite.request(http.MethodGet, "http://example.com/v1/prices/history", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExchangeRates() {
	response := suite.getRates("", http.StatusOK)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Nil(response.Pagination)

	targets := make([]string, 0, len(response.Data))
	for _, rate := range response.Data {
		suite.Assert().Equal("USD", rate.BaseCurrency)
		suite.Assert().Equal("test", rate.Source)
		suite.Assert().False(rate.ChangePercent.Valid, "the first rate of a pair has no change")
		targets = append(targets, rate.TargetCurrency)
	}
	suite.Assert().Equal([]string{"GHS", "EUR", "GBP"}, targets)
	suite.Assert().True(decimal.RequireFromString("15.12").Equal(response.Data[0].Rate))

	response = suite.getRates("", http.StatusOK)
	suite.Require().Len(response.Data, 3)
	suite.Require().True(response.Data[0].ChangePercent.Valid)
	suite.Assert().True(response.Data[0].ChangePercent.Decimal.IsZero())

	response = suite.getRates("base=ghs", http.StatusOK)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("GHS", response.Data[0].BaseCurrency)
	suite.Assert().Equal("USD", response.Data[0].TargetCurrency)
	suite.Assert().Equal(3, suite.rates.calls)
}

func (suite *TestSuiteStandard) TestExchangeRatesFails() {
	response := suite.getRates("base=dollars", http.StatusBadRequest)
	suite.Assert().Equal("the currency must be a valid ISO 4217 currency code", *response.Error)

	response = suite.getRates("base=EUR", http.StatusBadRequest)
	suite.Assert().Equal(market.ErrUnsupportedCurrency.Error(), *response.Error)

	suite.rates.err = errors.New("exchangerate-api: unexpected status 503")
	response = suite.getRates("", http.StatusBadGateway)
	suite.Assert().Equal("exchange rates are currently unavailable", *response.Error)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestExchangeRateHistory() {
	suite.getRates("", http.StatusOK)
	suite.getRates("", http.StatusOK)
	suite.getRates("base=GHS", http.StatusOK)

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"All", "", 7},
		{"Base", "base=usd", 6},
		{"Target", "target=GHS", 2},
		{"Pair", "base=USD&target=gbp", 2},
		{"Unknown pair", "base=EUR&target=JPY", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/exchange-rates/history?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.ExchangeRateListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Pagination)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/exchange-rates/history?base=USD&target=GHS", "")
	var response v1.ExchangeRateListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].ChangePercent.Valid, "the newest rate has a change")
	suite.Assert().False(response.Data[1].ChangePercent.Valid, "the oldest rate has no change")
}

func (suite *TestSuiteStandard) TestMarketInsights() {
	r := suite.request(http.MethodGet, "http://example.com/v1/market/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Data.MarketInsights)
	suite.Assert().Equal("", response.Data.ExchangeInsights)

	suite.getQuotes("", http.StatusOK)
	suite.getRates("", http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/market/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Data.MarketInsights, "Food & Beverages: Avg price trend")
	suite.Assert().Contains(response.Data.MarketInsights, "(5 items tracked)")
	suite.Assert().Contains(response.Data.ExchangeInsights, "USD/GHS: 15.1200 (0.00% trend)")
}

func (suite *TestSuiteStandard) TestMarketOptions() {
	for _, url := range []string{
		"http://example.com/v1/prices",
		"http://example.com/v1/prices/history",
		"http://example.com/v1/exchange-rates",
		"http://example.com/v1/exchange-rates/history",
		"http://example.com/v1/market/insights",
	} {
		suite.Run(url, func() {
			r := suite.request(http.MethodOptions, url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
			suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
