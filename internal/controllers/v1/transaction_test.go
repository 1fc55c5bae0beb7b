package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-app/backend/internal/analysis"
	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Category: "food",
		Amount:   decimal.RequireFromString("14.03"),
		Note:     "  Weekly shopping ",
		Date:     types.NewDate(2024, 5, 3),
	})

	suite.Assert().Equal(analysis.StatusCompleted, transaction.Data.Status, "Status must default to completed")
	suite.Assert().Equal(analysis.TypeExpense, transaction.Data.Type)
	suite.Assert().Equal("Weekly shopping", transaction.Data.Note)
	suite.Assert().Equal("2024-05-03", transaction.Data.Date.String())
	suite.Assert().True(decimal.RequireFromString("14.03").Equal(transaction.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultDate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(1)})
	suite.Assert().Equal(types.Today().String(), transaction.Data.Date.String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
		err         error
	}{
		{"Negative amount", v1.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest, models.ErrTransactionAmountNegative},
		{"Invalid type", v1.TransactionEditable{BudgetID: budget.Data.ID, Type: "refund"}, http.StatusBadRequest, models.ErrTransactionTypeInvalid},
		{"Invalid status", v1.TransactionEditable{BudgetID: budget.Data.ID, Status: "booked"}, http.StatusBadRequest, models.ErrTransactionStatusInvalid},
		{"Budget does not exist", v1.TransactionEditable{BudgetID: uuid.New()}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := createTestTransaction(t, tt.transaction, tt.status)
			assert.Contains(t, *r.Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	may := createTestBudget(suite.T(), mayBudget("May"))
	june := createTestBudget(suite.T(), v1.BudgetEditable{Name: "June", StartDate: types.NewDate(2024, 6, 1)})

	for _, t := range []v1.TransactionEditable{
		{BudgetID: may.Data.ID, Category: "food:groceries", Amount: decimal.NewFromInt(30), Date: types.NewDate(2024, 5, 3), Note: "Market"},
		{BudgetID: may.Data.ID, Category: "food:restaurant", Amount: decimal.NewFromInt(45), Date: types.NewDate(2024, 5, 10), Status: analysis.StatusPending},
		{BudgetID: may.Data.ID, Category: "rent", Amount: decimal.NewFromInt(400), Date: types.NewDate(2024, 5, 1)},
		{BudgetID: may.Data.ID, Type: analysis.TypeIncome, Amount: decimal.NewFromInt(2000), Date: types.NewDate(2024, 5, 1), Note: "Salary"},
		{BudgetID: june.Data.ID, Category: "food:groceries", Amount: decimal.NewFromInt(12), Date: types.NewDate(2024, 6, 2), Status: analysis.StatusCancelled},
	} {
		_ = createTestTransaction(suite.T(), t)
	}

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 5},
		{"Budget", fmt.Sprintf("budget=%s", may.Data.ID), 4},
		{"Exact category", "category=rent", 1},
		{"Exact category without glob", "category=food", 0},
		{"Category glob", "category=food:*", 3},
		{"Category glob suffix", "category=*groceries", 2},
		{"Category glob no match", "category=travel*", 0},
		{"Empty category", "category=", 1},
		{"Type", "type=income", 1},
		{"Status", "status=pending", 1},
		{"Cancelled", "status=cancelled", 1},
		{"From date", "fromDate=2024-05-03", 3},
		{"Until date", "untilDate=2024-05-03", 3},
		{"Date range", "fromDate=2024-05-02&untilDate=2024-05-31", 2},
		{"Amount", "amount=45", 1},
		{"Amount less or equal", "amountLessOrEqual=45", 3},
		{"Amount more or equal", "amountMoreOrEqual=45", 3},
		{"Amount range", "amountMoreOrEqual=30&amountLessOrEqual=400", 3},
		{"Note", "note=arke", 1},
		{"Empty note", "note=", 3},
		{"Glob and budget", fmt.Sprintf("category=food*&budget=%s", june.Data.ID), 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=4", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListOrder() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Note: "first", Date: types.NewDate(2024, 5, 1)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Note: "last", Date: types.NewDate(2024, 5, 20)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Note: "middle", Date: types.NewDate(2024, 5, 10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal("last", list.Data[0].Note)
	suite.Assert().Equal("middle", list.Data[1].Note)
	suite.Assert().Equal("first", list.Data[2].Note)
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Type", "type=refund"},
		{"Status", "status=booked"},
		{"Date", "fromDate=yesterday"},
		{"Amount", "amountLessOrEqual=cheap"},
		{"Budget", "budget=not-a-uuid"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetUpdateDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Category: "food", Amount: decimal.NewFromInt(10), Date: types.NewDate(2024, 5, 3)})

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"status": "cancelled", "note": "Returned"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(analysis.StatusCancelled, updated.Data.Status)
	suite.Assert().Equal("Returned", updated.Data.Note)
	suite.Assert().Equal("food", updated.Data.Category)
	suite.Assert().Equal("2024-05-03", updated.Data.Date.String())

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid type", map[string]any{"type": "refund"}, http.StatusBadRequest},
		{"Invalid status", map[string]any{"status": "booked"}, http.StatusBadRequest},
		{"Negative amount", map[string]any{"amount": "-3"}, http.StatusBadRequest},
		{"Budget does not exist", map[string]any{"budgetId": uuid.New()}, http.StatusNotFound},
		{"Broken JSON", `{ "note": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(31)})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/transactions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Single", transaction.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Not existing", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound, ""},
		{"Invalid UUID", "http://example.com/v1/transactions/NotParseableAsUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"GET Collection", "", http.MethodGet},
		{"GET Collection with glob", "?category=food*", http.MethodGet},
		{"GET Single", fmt.Sprintf("/%s", uuid.New()), http.MethodGet},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New()), http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}

// TestTransactionsListGlobPagination verifies that the total count
// respects the category glob when paginating.
func (suite *TestSuiteStandard) TestTransactionsListGlobPagination() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	for _, category := range []string{"food:groceries", "food:restaurant", "food:snacks", "rent"} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Category: category, Amount: decimal.NewFromInt(5)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?category=food*&limit=1&offset=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Assert().Equal(v1.Pagination{Count: 1, Offset: 1, Limit: 1, Total: 3}, *list.Pagination)
}
