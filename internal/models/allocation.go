package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is the amount of money budgeted for one category in a budget.
type Allocation struct {
	DefaultModel
	Budget   Budget          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BudgetID uuid.UUID       `gorm:"uniqueIndex:allocation_budget_category"`
	Category string          `gorm:"uniqueIndex:allocation_budget_category"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	return tx.First(&Budget{}, a.BudgetID).Error
}

func (a *Allocation) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Allocation)
	if ok && tx.Statement.Changed("BudgetID") {
		return tx.First(&Budget{}, toSave.BudgetID).Error
	}

	return nil
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.Category = strings.TrimSpace(a.Category)
	return nil
}

func (a *Allocation) AfterSave(_ *gorm.DB) error {
	if a.Category == "" {
		return ErrAllocationCategoryEmpty
	}

	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	return nil
}
