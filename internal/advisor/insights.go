package advisor

import (
	"fmt"
	"strings"

	"github.com/cediwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

const (
	marketSample   = 20
	exchangePairs  = 5
	marketHeader   = "\n\nMARKET PRICE INTELLIGENCE (Last 30 Days):\n"
	exchangeHeader = "\n\nEXCHANGE RATE INTELLIGENCE (Last 7 Days):\n"
)

// PricePoint is an observed price, used for market insights.
type PricePoint struct {
	Category      string
	Price         decimal.Decimal
	ChangePercent decimal.NullDecimal
}

// RatePoint is an observed exchange rate, used for exchange insights.
type RatePoint struct {
	BaseCurrency   string
	TargetCurrency string
	Rate           decimal.Decimal
	ChangePercent  decimal.NullDecimal
}

func (r RatePoint) pair() string {
	return r.BaseCurrency + "/" + r.TargetCurrency
}

// MarketInsights summarizes the most recent prices by category.
//
// prices must be ordered newest first. Only the first 20 are used. The
// average change only considers prices with a known change. The result
// is empty if there are no prices.
func MarketInsights(prices []PricePoint) string {
	if len(prices) == 0 {
		return ""
	}

	if len(prices) > marketSample {
		prices = prices[:marketSample]
	}

	var categories []string
	byCategory := make(map[string][]PricePoint)
	for _, p := range prices {
		if _, ok := byCategory[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		items := byCategory[category]

		sum, n := decimal.Zero, 0
		for _, item := range items {
			if item.ChangePercent.Valid {
				sum = sum.Add(item.ChangePercent.Decimal)
				n++
			}
		}

		avg := decimal.Zero
		if n > 0 {
			avg = sum.Div(decimal.NewFromInt(int64(n)))
		}

		lines = append(lines, fmt.Sprintf("• %s: Avg price trend %s%% (%d items tracked)", category, signed(avg, 1), len(items)))
	}

	return marketHeader + strings.Join(lines, "\n")
}

// ExchangeInsights summarizes the first five currency pairs.
//
// rates must be ordered newest first. The latest rate of a pair is its
// first occurrence. The average change is the sum of all known changes
// divided by the number of observations of the pair. The result is empty
// if there are no rates.
func ExchangeInsights(rates []RatePoint) string {
	if len(rates) == 0 {
		return ""
	}

	var pairs []string
	byPair := make(map[string][]RatePoint)
	for _, r := range rates {
		p := r.pair()
		if _, ok := byPair[p]; !ok {
			pairs = append(pairs, p)
		}
		byPair[p] = append(byPair[p], r)
	}

	if len(pairs) > exchangePairs {
		pairs = pairs[:exchangePairs]
	}

	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		observations := byPair[pair]

		sum := decimal.Zero
		for _, o := range observations {
			if o.ChangePercent.Valid {
				sum = sum.Add(o.ChangePercent.Decimal)
			}
		}
		avg := sum.Div(decimal.NewFromInt(int64(len(observations))))

		lines = append(lines, fmt.Sprintf("• %s: %s (%s%% trend)", pair, observations[0].Rate.StringFixed(4), signed(avg, 2)))
	}

	return exchangeHeader + strings.Join(lines, "\n")
}

// ContextMessage is appended to the user's message when asking the
// language model. It describes the budget, its score and the market.
//
// Without budget data, only the market and exchange insights are returned.
func ContextMessage(d *BudgetData, score int, factors types.ScoreFactors, marketInsights, exchangeInsights string) string {
	if d == nil {
		return marketInsights + exchangeInsights
	}

	income, expenses := d.Totals()
	currency := d.Income.Currency

	categories := make([]string, 0, len(d.Expenses))
	for _, e := range d.Expenses {
		categories = append(categories, fmt.Sprintf("%s: %s %s", e.Category, currency, e.Amount))
	}

	var b strings.Builder
	b.WriteString("\n\nCURRENT FINANCIAL CONTEXT:\n")
	fmt.Fprintf(&b, "- Monthly Income: %s %s\n", currency, income)
	fmt.Fprintf(&b, "- Total Monthly Expenses: %s %s\n", currency, expenses)
	fmt.Fprintf(&b, "- Remaining Budget: %s %s\n", currency, income.Sub(expenses))
	fmt.Fprintf(&b, "- Financial Health Score: %d/100\n", score)
	fmt.Fprintf(&b, "- Score Factors: Income Utilization %d%%, Savings Rate %d%%\n", factors.IncomeUtilization, factors.SavingsRate)
	fmt.Fprintf(&b, "- Budget Categories: %s", strings.Join(categories, ", "))
	b.WriteString(marketInsights)
	b.WriteString(exchangeInsights)

	return b.String()
}
