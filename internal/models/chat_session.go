package models

import (
	"github.com/cediwise/backend/internal/types"
	"github.com/google/uuid"
)

// ChatSession is the message log of a conversation with the advisor.
//
// RetryCount and ConnectionStatus hold the state of the retrying
// client between requests of the same session.
type ChatSession struct {
	DefaultModel
	BudgetID         *uuid.UUID     `gorm:"index"`
	Budget           *Budget        `gorm:"constraint:OnDelete:SET NULL"`
	Messages         types.Messages
	ContextData      types.RawJSON
	RetryCount       int
	ConnectionStatus string         `gorm:"default:unknown"`
}

func (ChatSession) Self() string {
	return "Chat Session"
}
