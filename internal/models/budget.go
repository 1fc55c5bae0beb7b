package models

import (
	"strings"

	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a budget for a period of time.
//
// A budget is the highest level of organization in fintrack, allocations
// and transactions reference it directly.
type Budget struct {
	DefaultModel
	Name        string
	Note        string
	Currency    string
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate   types.Date
	EndDate     types.Date
}

// BeforeSave trims whitespace and defaults the period to the current month.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.TrimSpace(b.Currency)

	if b.StartDate.IsZero() {
		b.StartDate = types.MonthOf(types.Today().Time()).FirstDay()
	}

	if b.EndDate.IsZero() {
		b.EndDate = types.MonthOf(b.StartDate.Time()).LastDay()
	}

	return nil
}

// AfterSave validates the budget. This is done after saving
// so that the values of updates are validated, too.
func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.TotalAmount.IsNegative() {
		return ErrBudgetTotalNegative
	}

	if b.StartDate.After(b.EndDate) {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

// Allocations returns all allocations for the budget, ordered by creation.
func (b Budget) Allocations(db *gorm.DB) ([]Allocation, error) {
	var allocations []Allocation
	err := db.
		Where(&Allocation{BudgetID: b.ID}).
		Order("created_at ASC, category ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// Transactions returns all transactions for the budget dated
// between from and until, both inclusive.
func (b Budget) Transactions(db *gorm.DB, from, until types.Date) ([]Transaction, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{BudgetID: b.ID}).
		Where("transactions.date >= ? AND transactions.date <= ?", from, until).
		Order("transactions.date ASC, transactions.created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
