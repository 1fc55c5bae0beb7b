package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(500)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(5)})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{"budgets", "allocations", "transactions"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, 0, "There are resources left for type %s", path)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	_ = createTestBudget(suite.T(), mayBudget("May"))

	for _, query := range []string{"", "?confirm=yes", "?confirm=yes-please-delete-everything-now"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1, "Nothing must be deleted without confirmation")
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
