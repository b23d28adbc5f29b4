package v1

import (
	"fmt"
	"time"

	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/types"
	ez_uuid "github.com/cediwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HealthScoreEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget to calculate the health score for
}

type HealthScoreLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/health-scores/0f4d2e31-8d8a-4c35-a9b6-5e4bd1ab5a66"` // The health score itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`      // The budget, empty if it has been deleted
}

// HealthScore is the API v1 representation of a HealthScore.
type HealthScore struct {
	models.DefaultModel
	BudgetID        *uuid.UUID         `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget the score was calculated for
	Score           int                `json:"score" example:"85"`                                      // Financial health score from 0 to 100
	Factors         types.ScoreFactors `json:"factors"`                                                 // Factors of the score
	Recommendations []string           `json:"recommendations"`                                         // Recommendations at the time of calculation
	CalculatedAt    time.Time          `json:"calculatedAt" example:"2024-03-01T10:15:00Z"`             // Time of calculation
	Links           HealthScoreLinks   `json:"links"`
}

func newHealthScore(c *gin.Context, model models.HealthScore) HealthScore {
	url := c.GetString(string(models.DBContextURL))

	h := HealthScore{
		DefaultModel:    model.DefaultModel,
		BudgetID:        model.BudgetID,
		Score:           model.Score,
		Factors:         model.Factors,
		Recommendations: model.Recommendations,
		CalculatedAt:    model.CalculatedAt.UTC(),
		Links: HealthScoreLinks{
			Self: fmt.Sprintf("%s/v1/health-scores/%s", url, model.ID),
		},
	}

	if h.Recommendations == nil {
		h.Recommendations = []string{}
	}

	if model.BudgetID != nil {
		h.Links.Budget = fmt.Sprintf("%s/v1/budgets/%s", url, *model.BudgetID)
	}

	return h
}

type HealthScoreListResponse struct {
	Data       []HealthScore `json:"data"`                                                          // List of health scores
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type HealthScoreResponse struct {
	Data  *HealthScore `json:"data"`                                                          // Data for the health score
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HealthScoreQueryFilter struct {
	BudgetID ez_uuid.UUID `form:"budget"`                     // By ID of the budget
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first health score returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of health scores to return. Defaults to 50.
}

func (f HealthScoreQueryFilter) model() models.HealthScore {
	return models.HealthScore{
		BudgetID: f.BudgetID.Ptr(),
	}
}
