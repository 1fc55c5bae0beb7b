package models_test

import (
	"time"

	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	budget := suite.createTestBudget(models.Budget{})

	transaction := suite.createTestTransaction(models.Transaction{
		BudgetID: budget.ID,
		Amount:   decimal.NewFromFloat(17.32),
		Type:     analysis.TypeExpense,
		Category: " food ",
		Note:     "\tLunch ",
	})

	suite.Assert().Equal(types.DateOf(time.Now()), transaction.Date)
	suite.Assert().Equal(analysis.StatusCompleted, transaction.Status)
	suite.Assert().Equal("food", transaction.Category)
	suite.Assert().Equal("Lunch", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionAfterSave() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Valid", models.Transaction{Type: analysis.TypeTransfer, Status: analysis.StatusPending}, nil},
		{"Negative amount", models.Transaction{Amount: decimal.NewFromFloat(-5), Type: analysis.TypeExpense, Status: analysis.StatusCompleted}, models.ErrTransactionAmountNegative},
		{"Unknown type", models.Transaction{Type: "SPEND", Status: analysis.StatusCompleted}, models.ErrTransactionTypeInvalid},
		{"Unknown status", models.Transaction{Type: analysis.TypeIncome, Status: "booked"}, models.ErrTransactionStatusInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.transaction.AfterSave(&gorm.DB{})
			suite.Assert().Equal(tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionBudgetIntegrity() {
	err := models.DB.Create(&models.Transaction{BudgetID: uuid.New(), Type: analysis.TypeExpense}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "budget")
}

func (suite *TestSuiteStandard) TestTransactionAnalysis() {
	transaction := models.Transaction{
		Date:     types.NewDate(2024, 3, 4),
		Amount:   decimal.NewFromFloat(12.5),
		Type:     analysis.TypeExpense,
		Status:   analysis.StatusPending,
		Category: "fuel",
	}

	suite.Assert().Equal(analysis.Transaction{
		Amount:   transaction.Amount,
		Type:     analysis.TypeExpense,
		Category: "fuel",
		Date:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:   analysis.StatusPending,
	}, transaction.Analysis())
}
