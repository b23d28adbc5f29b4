package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FallbackInput is everything the fallback responder may use to answer.
type FallbackInput struct {
	Message          string
	Budget           *BudgetData
	HealthScore      *int
	Recommendations  []string
	MarketInsights   string
	ExchangeInsights string
}

// Topic is the branch of the fallback responder that answered a message.
type Topic string

const (
	TopicAnalysis Topic = "analysis"
	TopicSavings  Topic = "savings"
	TopicInvest   Topic = "investment"
	TopicHealth   Topic = "health"
	TopicCurrency Topic = "currency"
	TopicOptimize Topic = "optimization"
	TopicGeneric  Topic = "generic"
)

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

// Route returns the topic that answers the message. The first matching
// topic wins.
func Route(message string, hasBudget bool) Topic {
	m := strings.ToLower(message)

	switch {
	case hasBudget && containsAny(m, "analysis", "budget", "comprehensive"):
		return TopicAnalysis
	case containsAny(m, "save", "saving"):
		return TopicSavings
	case strings.Contains(m, "invest"):
		return TopicInvest
	case containsAny(m, "health score", "improve"):
		return TopicHealth
	case containsAny(m, "currency", "exchange", "dollar"):
		return TopicCurrency
	case containsAny(m, "optimize", "budget"):
		return TopicOptimize
	default:
		return TopicGeneric
	}
}

// Respond generates a deterministic answer without the language model.
func Respond(in FallbackInput) string {
	switch Route(in.Message, in.Budget != nil) {
	case TopicAnalysis:
		return analysisReport(in)
	case TopicSavings:
		return savingsAdvice(in.Budget)
	case TopicInvest:
		return investmentAdvice
	case TopicHealth:
		return healthAdvice(in.HealthScore)
	case TopicCurrency:
		return currencyAdvice(in.ExchangeInsights)
	case TopicOptimize:
		return optimizationAdvice(in.Budget)
	default:
		return genericAdvice
	}
}

var scoreBanners = map[Label]string{
	LabelExcellent: "Excellent. Your finances are in great shape.",
	LabelGood:      "Good. Your finances are stable, with room to grow your savings.",
	LabelFair:      "Fair. Several areas of your budget need attention.",
	LabelPoor:      "Poor. Your budget is under significant strain and needs action now.",
}

func analysisReport(in FallbackInput) string {
	d := *in.Budget
	income, expenses := d.Totals()
	remaining := income.Sub(expenses)
	currency := d.Income.Currency

	score := Score(d)
	if in.HealthScore != nil {
		score = *in.HealthScore
	}

	var b strings.Builder
	b.WriteString("COMPREHENSIVE BUDGET ANALYSIS\n\n")

	b.WriteString("Financial Overview\n")
	fmt.Fprintf(&b, "• Monthly Income: %s\n", Money(currency, income))
	fmt.Fprintf(&b, "• Monthly Expenses: %s\n", Money(currency, expenses))
	if remaining.IsNegative() {
		fmt.Fprintf(&b, "• Monthly Deficit: %s\n", Money(currency, remaining.Abs()))
	} else {
		fmt.Fprintf(&b, "• Monthly Surplus: %s\n", Money(currency, remaining))
	}
	fmt.Fprintf(&b, "• Savings Rate: %s%%\n\n", Summarize(d).SavingsRate.StringFixed(1))

	fmt.Fprintf(&b, "Financial Health Score: %d/100\n", score)
	b.WriteString(scoreBanners[LabelFor(score)] + "\n\n")

	b.WriteString("Expense Breakdown\n")
	if len(d.Expenses) == 0 {
		b.WriteString("• No expenses recorded\n")
	}
	for _, e := range d.Expenses {
		fmt.Fprintf(&b, "• %s: %s (%s of income)\n", e.Category, Money(currency, e.Amount), percentOf(e.Amount, income))
	}

	b.WriteString("\nRecommendations\n")
	recommendations := in.Recommendations
	if len(recommendations) == 0 {
		recommendations = surplusAdvice(d, remaining)
	}
	for i, r := range recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	b.WriteString(strings.TrimRight(in.MarketInsights+in.ExchangeInsights, "\n"))
	b.WriteString("\n\nThis analysis was prepared from your budget data while the AI advisor is unavailable.")

	return b.String()
}

// surplusAdvice suggests what to do with the remaining income.
func surplusAdvice(d BudgetData, remaining decimal.Decimal) []string {
	currency := d.Income.Currency

	switch {
	case remaining.IsPositive():
		return []string{
			fmt.Sprintf("Move %s (half of your monthly surplus) into savings as soon as you are paid", Money(currency, remaining.Div(decimal.NewFromInt(2)))),
			"Keep the rest of your surplus as a buffer for irregular expenses",
		}
	case remaining.IsZero():
		return []string{
			"You are spending all of your income. Trim at least 10% from your largest expense category",
			"Start an emergency fund with any amount you free up",
		}
	case len(d.Expenses) == 0:
		return []string{
			"Check the income of your budget, it is below zero",
			"Record your expenses to see where your money goes",
		}
	default:
		largest := d.Expenses[0]
		for _, e := range d.Expenses[1:] {
			if e.Amount.GreaterThan(largest.Amount) {
				largest = e
			}
		}

		return []string{
			fmt.Sprintf("You spend %s more than you earn each month. Reduce %s first", Money(currency, remaining.Abs()), largest.Category),
			"Avoid new debt until your expenses are below your income",
		}
	}
}

func savingsAdvice(d *BudgetData) string {
	var b strings.Builder
	b.WriteString("Savings Strategy\n\n")

	b.WriteString("1. Emergency fund: build a reserve of 3 to 6 months of expenses before anything else.\n")
	if d != nil {
		_, expenses := d.Totals()
		fmt.Fprintf(&b, "   Based on your monthly expenses, aim for %s to %s.\n",
			Money(d.Income.Currency, expenses.Mul(decimal.NewFromInt(3))),
			Money(d.Income.Currency, expenses.Mul(decimal.NewFromInt(6))),
		)
	}

	b.WriteString("2. Target savings rate: save at least 20% of your income. Start at 10% if 20% is out of reach.\n")
	if d != nil {
		fmt.Fprintf(&b, "   20%% of your income is %s per month.\n", Money(d.Income.Currency, d.Income.Amount.Mul(twenty).Div(hundred)))
	}

	b.WriteString(`3. Pay yourself first: transfer savings on payday, before spending.
4. Keep savings in a separate account, such as a high-yield savings account or a Treasury bill.
5. Buy staples in bulk at wholesale markets when prices are low.
6. Join a trusted susu group to stay disciplined with regular contributions.`)

	return b.String()
}

const investmentAdvice = `Investment Guidance

1. Start with an emergency fund of 3 to 6 months of expenses. Do not invest money you may need soon.
2. Government securities: Treasury bills and bonds offer predictable returns with low risk.
3. Fixed deposits and money market funds are good for short-term goals.
4. Equities: consider listed companies on the Ghana Stock Exchange or the Nigerian Exchange for long-term growth, and spread your money across several sectors.
5. Foreign currency: holding part of your savings in a stable currency can protect against depreciation, but keep it to a portion you can afford to lock away.
6. Avoid schemes that promise guaranteed high returns.

Invest regularly, review your portfolio every quarter and only take risks you understand.`

func healthAdvice(score *int) string {
	var b strings.Builder
	b.WriteString("Improving Your Financial Health\n\n")

	switch {
	case score == nil:
		b.WriteString(`Add your income and expenses to get a health score. Until then, focus on:
1. Tracking every expense for one month
2. Spending less than you earn
3. Starting an emergency fund`)
	case *score < 40:
		fmt.Fprintf(&b, "Your score of %d/100 needs urgent attention. Priority actions:\n", *score)
		b.WriteString(`1. List every expense and cut anything that is not essential
2. Bring your expenses below 80% of your income
3. Look for additional income sources
4. Avoid new debt`)
	case *score < 70:
		fmt.Fprintf(&b, "Your score of %d/100 is moderate. Priority actions:\n", *score)
		b.WriteString(`1. Raise your savings rate to at least 10%, then 20%
2. Add an emergency fund category to your budget
3. Reduce your largest expense category by 10%`)
	default:
		fmt.Fprintf(&b, "Your score of %d/100 is strong. Priority actions:\n", *score)
		b.WriteString(`1. Keep your savings rate at 20% or more
2. Grow your emergency fund to 6 months of expenses
3. Start investing your surplus for long-term goals`)
	}

	b.WriteString(`

Tips for everyone:
• Review and categorize your expenses monthly
• Set specific savings goals with deadlines
• Compare market prices before large purchases`)

	return b.String()
}

func currencyAdvice(exchangeInsights string) string {
	var b strings.Builder
	b.WriteString(`Currency Strategy

1. Earn and spend in the same currency where possible to avoid conversion losses.
2. Keep part of your savings in a stable currency such as USD if the cedi or naira is depreciating.
3. Convert in smaller amounts over time instead of all at once.
4. Compare rates between banks, forex bureaus and mobile money providers before converting.
5. Plan large foreign purchases ahead and watch the trend before buying.`)

	if exchangeInsights != "" {
		b.WriteString(exchangeInsights)
	}

	return b.String()
}

func optimizationAdvice(d *BudgetData) string {
	var b strings.Builder
	b.WriteString(`Budget Optimization: the 50/30/20 Rule

• 50% for needs: housing, food, utilities, transport
• 30% for wants: entertainment, dining out, shopping
• 20% for savings and debt repayment`)

	if d != nil {
		currency := d.Income.Currency
		income := d.Income.Amount
		fmt.Fprintf(&b, "\n\nFor your monthly income of %s:\n", Money(currency, income))
		fmt.Fprintf(&b, "• Needs: %s\n", Money(currency, income.Mul(decimal.NewFromInt(50)).Div(hundred)))
		fmt.Fprintf(&b, "• Wants: %s\n", Money(currency, income.Mul(decimal.NewFromInt(30)).Div(hundred)))
		fmt.Fprintf(&b, "• Savings: %s", Money(currency, income.Mul(twenty).Div(hundred)))
	}

	b.WriteString(`

Review your categories monthly and move money from wants to savings when you overspend.`)

	return b.String()
}

const genericAdvice = `The AI advisor is temporarily unavailable, but I can still help with:

• Budget analysis: ask for a "comprehensive budget analysis"
• Savings: ask how to save money
• Investing: ask about investment options
• Financial health: ask how to improve your health score
• Currency: ask about exchange rates or the dollar
• Budget optimization: ask how to optimize your budget

Please try one of these topics or try again in a few minutes.`
