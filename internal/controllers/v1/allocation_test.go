package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: budget.Data.ID, Category: " food ", Amount: decimal.NewFromInt(500)})

	suite.Assert().Equal("food", allocation.Data.Category, "Whitespace must be trimmed")
	suite.Assert().True(decimal.NewFromInt(500).Equal(allocation.Data.Amount))
	suite.Assert().Equal(budget.Data.Links.Self, allocation.Data.Links.Budget)
}

func (suite *TestSuiteStandard) TestAllocationsCreateFails() {
	budget := createTestBudget(suite.T(), mayBudget("May"))
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "rent", Amount: decimal.NewFromInt(400)})

	tests := []struct {
		name       string
		allocation v1.AllocationEditable
		status     int
		err        error
	}{
		{"Duplicate category", v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "rent"}, http.StatusBadRequest, models.ErrAllocationCategoryNotUnique},
		{"Empty category", v1.AllocationEditable{BudgetID: budget.Data.ID, Category: " "}, http.StatusBadRequest, models.ErrAllocationCategoryEmpty},
		{"Negative amount", v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest, models.ErrAllocationAmountNegative},
		{"Budget does not exist", v1.AllocationEditable{BudgetID: uuid.New(), Category: "food"}, http.StatusNotFound, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := createTestAllocation(t, tt.allocation, tt.status)
			assert.Contains(t, *r.Error, tt.err.Error())
		})
	}
}

// TestAllocationsCreateMixed verifies that the status code is the highest
// status code of all allocations in the request.
func (suite *TestSuiteStandard) TestAllocationsCreateMixed() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", []v1.AllocationEditable{
		{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(500)},
		{BudgetID: uuid.New(), Category: "food"},
		{BudgetID: budget.Data.ID, Category: ""},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().NotNil(response.Data[1].Error)
	suite.Assert().NotNil(response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestAllocationsList() {
	may := createTestBudget(suite.T(), mayBudget("May"))
	june := createTestBudget(suite.T(), v1.BudgetEditable{Name: "June"})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: may.Data.ID, Category: "food", Amount: decimal.NewFromInt(500)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: may.Data.ID, Category: "rent", Amount: decimal.NewFromInt(400)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BudgetID: june.Data.ID, Category: "food", Amount: decimal.NewFromInt(400)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Budget", fmt.Sprintf("budget=%s", may.Data.ID), 2},
		{"Category", "category=food", 2},
		{"Budget and category", fmt.Sprintf("budget=%s&category=food", june.Data.ID), 1},
		{"Amount", "amount=400", 2},
		{"Limit", "limit=1", 1},
		{"Not existing budget", fmt.Sprintf("budget=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.AllocationListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsListInvalidQuery() {
	for _, query := range []string{"budget=not-a-uuid", "amount=lots", "offset=-1"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetUpdateDelete() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{Category: "food", Amount: decimal.NewFromInt(500)})

	r := test.Request(suite.T(), http.MethodGet, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{"amount": "550.25"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.RequireFromString("550.25").Equal(updated.Data.Amount))
	suite.Assert().Equal("food", updated.Data.Category)

	r = test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{"amount": "-1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{"budgetId": uuid.New()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no allocation matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestAllocationsOptions() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{Category: "food"})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/allocations", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Single", allocation.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Not existing", fmt.Sprintf("http://example.com/v1/allocations/%s", uuid.New()), http.StatusNotFound, ""},
		{"Invalid UUID", "http://example.com/v1/allocations/not-a-uuid", http.StatusBadRequest, ""},
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
