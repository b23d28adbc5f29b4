package v1

import (
	"fmt"
	"strings"

	"github.com/cediwise/backend/internal/httperror"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BudgetEditable struct {
	Name     string         `json:"name" example:"Household"` // Name of the budget
	Income   types.Income   `json:"income"`                   // Income of the budget
	Expenses types.Expenses `json:"expenses"`                 // Recurring expenses
}

// normalize sets default values and validates the budget.
//
// The income frequency and the currency default to monthly and GHS,
// expenses without an ID get a new one.
func (editable *BudgetEditable) normalize() error {
	if editable.Income.Frequency == "" {
		editable.Income.Frequency = types.FrequencyMonthly
	}

	if editable.Income.Currency == "" {
		editable.Income.Currency = "GHS"
	}

	if !editable.Income.Frequency.Valid() {
		return errInvalidFrequency
	}

	if !types.ValidCurrency(editable.Income.Currency) {
		return errInvalidCurrency
	}

	if editable.Income.Amount.IsNegative() {
		return errNegativeAmount
	}

	if editable.Expenses == nil {
		editable.Expenses = types.Expenses{}
	}

	for i := range editable.Expenses {
		e := &editable.Expenses[i]
		e.Category = strings.TrimSpace(e.Category)

		if e.ID == "" {
			e.ID = uuid.NewString()
		}

		if e.Frequency == "" {
			e.Frequency = types.FrequencyMonthly
		}

		if !e.Frequency.Valid() {
			return fmt.Errorf("%w (expense %s)", errInvalidFrequency, e.ID)
		}

		if e.Amount.IsNegative() {
			return fmt.Errorf("%w (expense %s)", errNegativeAmount, e.ID)
		}
	}

	return nil
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Income:   editable.Income,
		Expenses: editable.Expenses,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                        // The budget itself
	Analysis     string `json:"analysis" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/analysis"`           // Financial analysis of the budget
	HealthScores string `json:"healthScores" example:"https://example.com/api/v1/health-scores?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // Health score history of the budget
	ChatSessions string `json:"chatSessions" example:"https://example.com/api/v1/chat-sessions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Chat sessions about the budget
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Income:   model.Income,
			Expenses: model.Expenses,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Analysis:     fmt.Sprintf("%s/v1/budgets/%s/analysis", url, model.ID),
			HealthScores: fmt.Sprintf("%s/v1/health-scores?budget=%s", url, model.ID),
			ChatSessions: fmt.Sprintf("%s/v1/chat-sessions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := httperror.Status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`     // By name
	Currency string `form:"currency" filterField:"false"` // By income currency
	Search   string `form:"search" filterField:"false"`   // By string in name or expense categories
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Budgets to return. Defaults to 50.
}
