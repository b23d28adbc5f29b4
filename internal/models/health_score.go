package models

import (
	"time"

	"github.com/cediwise/backend/internal/types"
	"github.com/google/uuid"
)

// HealthScore is a calculated health score. Records are never updated.
type HealthScore struct {
	DefaultModel
	BudgetID        *uuid.UUID         `gorm:"index"`
	Budget          *Budget            `gorm:"constraint:OnDelete:SET NULL"`
	Score           int
	Factors         types.ScoreFactors
	Recommendations types.StringList
	CalculatedAt    time.Time          `gorm:"index"`
}

func (HealthScore) Self() string {
	return "Health Score"
}
