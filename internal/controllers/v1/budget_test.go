package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	suite.Assert().Equal("May", budget.Data.Name)
	suite.Assert().Equal("2024-05-01", budget.Data.StartDate.String())
	suite.Assert().Equal("2024-05-30", budget.Data.EndDate.String())
	suite.Assert().True(decimal.NewFromInt(1000).Equal(budget.Data.TotalAmount))
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets/%s/analysis", budget.Data.ID), budget.Data.Links.Analysis)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?budget=%s", budget.Data.ID), budget.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestBudgetsCreateDefaultPeriod() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{StartDate: types.NewDate(2024, 2, 10)})

	suite.Assert().Equal("2024-02-10", budget.Data.StartDate.String())
	suite.Assert().Equal("2024-02-29", budget.Data.EndDate.String(), "End date must default to the last day of the month of the start date")
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"Wrong type", `[{ "name": 2 }]`, http.StatusBadRequest, nil},
		{"Broken body", `[{ "name": "Open`, http.StatusBadRequest, httputil.ErrInvalidBody},
		{"Empty body", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty},
		{"Negative total", []v1.BudgetEditable{{TotalAmount: decimal.NewFromInt(-5)}}, http.StatusBadRequest, models.ErrBudgetTotalNegative},
		{"Inverted period", []v1.BudgetEditable{{StartDate: types.NewDate(2024, 5, 30), EndDate: types.NewDate(2024, 5, 1)}}, http.StatusBadRequest, models.ErrBudgetPeriodInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			if tt.err != nil {
				assert.Contains(t, r.Body.String(), tt.err.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Household", Note: "Everything at home", Currency: "€"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Holiday", Note: "Summer trip", Currency: "$"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: "Car", Currency: "€"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Currency", "currency=%E2%82%AC", 2},
		{"Name", "name=Ho", 2},
		{"Empty note", "note=", 1},
		{"Note", "note=trip", 1},
		{"Search", "search=home", 1},
		{"Search in name and note", "search=a", 3},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No match", "name=Boat", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.BudgetListResponse
			test.DecodeResponse(t, &r, &list)

			assert.Len(t, list.Data, tt.len, "Request ID: %s", r.Header().Get("x-request-id"))
			assert.Equal(t, tt.len, list.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListPagination() {
	for i := range 4 {
		_ = createTestBudget(suite.T(), v1.BudgetEditable{Name: fmt.Sprint(i)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?offset=1&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Assert().Equal(v1.Pagination{Count: 2, Offset: 1, Limit: 2, Total: 4}, *list.Pagination)
}

func (suite *TestSuiteStandard) TestBudgetsListInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?limit=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing", budget.Data.Links.Self, http.StatusOK},
		{"Not existing", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/budgets/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNotFound {
				assert.Equal(t, "there is no budget matching your query", test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"name":        "May 2024",
		"totalAmount": "1200",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal("May 2024", updated.Data.Name)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(updated.Data.TotalAmount))

	// Fields not in the body are kept
	suite.Assert().Equal("€", updated.Data.Currency)
	suite.Assert().Equal("2024-05-01", updated.Data.StartDate.String())
}

func (suite *TestSuiteStandard) TestBudgetsUpdateFails() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid body", budget.Data.Links.Self, `{ "name": 2 }`, http.StatusBadRequest},
		{"Empty body", budget.Data.Links.Self, "", http.StatusBadRequest},
		{"Negative total", budget.Data.Links.Self, map[string]any{"totalAmount": "-1"}, http.StatusBadRequest},
		{"End before start", budget.Data.Links.Self, map[string]any{"endDate": "2024-04-01"}, http.StatusBadRequest},
		{"Not existing", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), map[string]any{"name": "Nope"}, http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/budgets/not-a-uuid", map[string]any{"name": "Nope"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(500)})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(12), Date: types.NewDate(2024, 5, 2)})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Allocations and transactions are deleted with the budget
	for _, path := range []string{budget.Data.Links.Self, allocation.Data.Links.Self, transaction.Data.Links.Self} {
		r = test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Single", budget.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Analysis", budget.Data.Links.Analysis, http.StatusNoContent, "OPTIONS, GET"},
		{"Not existing", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), http.StatusNotFound, ""},
		{"Analysis not existing", fmt.Sprintf("http://example.com/v1/budgets/%s/analysis", uuid.New()), http.StatusNotFound, ""},
		{"Invalid UUID", "http://example.com/v1/budgets/not-a-uuid", http.StatusBadRequest, ""},
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

// TestBudgetsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
		body   string
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New()), http.MethodOptions, ""},
		{"GET Single", fmt.Sprintf("/%s", uuid.New()), http.MethodGet, ""},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New()), http.MethodPatch, `{ "name": "Closed" }`},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New()), http.MethodDelete, ""},
		{"GET Analysis", fmt.Sprintf("/%s/analysis", uuid.New()), http.MethodGet, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.True(t, strings.HasPrefix(test.DecodeError(t, r.Body.Bytes()), models.ErrGeneral.Error()))
		})
	}
}
