package models

import (
	"strings"

	"github.com/cediwise/backend/internal/types"
	"gorm.io/gorm"
)

// Budget is a saved snapshot of an income and its expenses.
type Budget struct {
	DefaultModel
	Name     string
	Income   types.Income   `gorm:"embedded;embeddedPrefix:income_"`
	Expenses types.Expenses
}

func (Budget) Self() string {
	return "Budget"
}

// BeforeSave trims the name and verifies that it is set.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrBudgetNameEmpty
	}

	return nil
}
