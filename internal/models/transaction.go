package models

import (
	"strings"
	"time"

	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Transaction is a single income, expense or transfer booked on a budget.
type Transaction struct {
	DefaultModel
	Budget   Budget                     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BudgetID uuid.UUID                  `gorm:"index"`
	Date     types.Date                 `gorm:"index"`
	Amount   decimal.Decimal            `gorm:"type:DECIMAL(20,8)"` // Always positive, the direction is given by the type
	Type     analysis.TransactionType   `gorm:"index"`
	Status   analysis.TransactionStatus `gorm:"index"`
	Category string                     `gorm:"index"`
	Note     string
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return tx.First(&Budget{}, t.BudgetID).Error
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Transaction)
	if ok && tx.Statement.Changed("BudgetID") {
		return tx.First(&Budget{}, toSave.BudgetID).Error
	}

	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - defaults the date to today in UTC
//   - defaults the status to completed
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Category = strings.TrimSpace(t.Category)

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now())
	}

	if t.Status == "" {
		t.Status = analysis.StatusCompleted
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if !slices.Contains([]analysis.TransactionType{analysis.TypeIncome, analysis.TypeExpense, analysis.TypeTransfer}, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if !slices.Contains([]analysis.TransactionStatus{analysis.StatusPending, analysis.StatusCompleted, analysis.StatusCancelled}, t.Status) {
		return ErrTransactionStatusInvalid
	}

	return nil
}

// Analysis returns the transaction as input for the analysis engine.
func (t Transaction) Analysis() analysis.Transaction {
	return analysis.Transaction{
		Amount:   t.Amount,
		Type:     t.Type,
		Category: t.Category,
		Date:     t.Date.Time(),
		Status:   t.Status,
	}
}
