package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-app/backend/internal/analysis"
	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createAnalysisFixture creates a budget for May 2024 with 1000 in total and
// 500 allocated to food, then books 550 on food in two expenses.
func createAnalysisFixture(t *testing.T) v1.BudgetResponse {
	budget := createTestBudget(t, mayBudget("May"))
	_ = createTestAllocation(t, v1.AllocationEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(500)})
	_ = createTestTransaction(t, v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(300), Date: types.NewDate(2024, 5, 3)})
	_ = createTestTransaction(t, v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(250), Date: types.NewDate(2024, 5, 10)})

	return budget
}

func getAnalysis(t *testing.T, url string, expectedStatus int) v1.AnalysisResponse {
	r := test.Request(t, http.MethodGet, url, "")
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.AnalysisResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestAnalysisOverBudget() {
	budget := createAnalysisFixture(suite.T())

	response := getAnalysis(suite.T(), budget.Data.Links.Analysis+"?today=2024-05-11", http.StatusOK)
	a := response.Data

	suite.Require().Len(a.CategoryAnalysis, 1)
	food := a.CategoryAnalysis[0]
	suite.Assert().Equal("food", food.Category)
	suite.Assert().True(decimal.NewFromInt(550).Equal(food.Spent))
	suite.Assert().True(decimal.NewFromInt(-50).Equal(food.Remaining))
	suite.Assert().True(decimal.NewFromInt(110).Equal(food.Percentage.Decimal))
	suite.Assert().Equal(analysis.StatusOver, food.Status)

	suite.Assert().True(decimal.NewFromInt(550).Equal(a.TrendAnalysis.TotalSpent))
	suite.Assert().Equal(10, a.TrendAnalysis.DaysElapsed)
	suite.Assert().Equal(20, a.TrendAnalysis.DaysRemaining)
	suite.Assert().Equal(30, a.TrendAnalysis.TotalDays)
	suite.Assert().True(decimal.NewFromInt(55).Equal(a.TrendAnalysis.AverageDailySpending))
	suite.Assert().True(decimal.NewFromInt(1650).Equal(a.TrendAnalysis.ProjectedSpending))
	suite.Assert().True(decimal.RequireFromString("0.45").Equal(a.TrendAnalysis.SavingsRate))

	suite.Assert().Equal(1, a.PerformanceMetrics.OverBudgetCategories)
	suite.Assert().True(decimal.NewFromInt(55).Equal(a.PerformanceMetrics.BudgetUtilization))

	suite.Assert().Equal(budget.Data.ID, a.BudgetID)
	suite.Assert().Equal("2024-05-01", a.From.String())
	suite.Assert().Equal("2024-05-30", a.Until.String())
	suite.Assert().Equal("2024-05-11", a.Today.String())
	suite.Assert().Equal(budget.Data.Links.Self, a.Links.Budget)
	suite.Assert().Equal(fmt.Sprintf("%s?from=2024-05-01&until=2024-05-30", budget.Data.Links.Analysis), a.Links.Self)
}

func (suite *TestSuiteStandard) TestAnalysisEmptyBudget() {
	budget := createTestBudget(suite.T(), mayBudget("May"))

	a := getAnalysis(suite.T(), budget.Data.Links.Analysis+"?today=2024-05-11", http.StatusOK).Data

	suite.Assert().Len(a.CategoryAnalysis, 0)
	suite.Assert().True(a.TrendAnalysis.TotalSpent.IsZero())
	suite.Assert().True(decimal.NewFromInt(1).Equal(a.TrendAnalysis.SavingsRate))
	suite.Assert().Equal(0, a.PerformanceMetrics.TotalCategories)
}

func (suite *TestSuiteStandard) TestAnalysisQuery() {
	budget := createAnalysisFixture(suite.T())
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "travel", Amount: decimal.NewFromInt(80), Date: types.NewDate(2024, 5, 20), Status: "pending"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Category: "food", Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, 5, 4), Status: "cancelled"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Type: "income", Amount: decimal.NewFromInt(2000), Date: types.NewDate(2024, 5, 1)})

	tests := []struct {
		name       string
		query      string
		totalSpent int64
		categories int
		from       string
		until      string
	}{
		{"Budget period", "", 630, 2, "2024-05-01", "2024-05-30"},
		{"Exclude pending", "excludePending=true", 550, 1, "2024-05-01", "2024-05-30"},
		{"Include cancelled", "includeCancelled=true", 730, 2, "2024-05-01", "2024-05-30"},
		{"From", "from=2024-05-05", 330, 2, "2024-05-05", "2024-05-30"},
		{"Until", "until=2024-05-05", 300, 1, "2024-05-01", "2024-05-05"},
		{"Range", "from=2024-05-04&until=2024-05-12", 250, 1, "2024-05-04", "2024-05-12"},
		{"Month", "month=2024-05", 630, 2, "2024-05-01", "2024-05-31"},
		{"Other month", "month=2024-06", 0, 1, "2024-06-01", "2024-06-30"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			a := getAnalysis(t, fmt.Sprintf("%s?today=2024-05-11&%s", budget.Data.Links.Analysis, tt.query), http.StatusOK).Data

			assert.True(t, decimal.NewFromInt(tt.totalSpent).Equal(a.TrendAnalysis.TotalSpent), "total spent is %s", a.TrendAnalysis.TotalSpent)
			assert.Len(t, a.CategoryAnalysis, tt.categories)
			assert.Equal(t, tt.from, a.From.String())
			assert.Equal(t, tt.until, a.Until.String())
		})
	}
}

func (suite *TestSuiteStandard) TestAnalysisUnbudgeted() {
	budget := createAnalysisFixture(suite.T())
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 5, 2)})

	a := getAnalysis(suite.T(), budget.Data.Links.Analysis+"?today=2024-05-11", http.StatusOK).Data

	suite.Require().Len(a.CategoryAnalysis, 2)
	uncategorized := a.CategoryAnalysis[1]
	suite.Assert().Equal(analysis.Uncategorized, uncategorized.Category)
	suite.Assert().True(uncategorized.Unbudgeted)
	suite.Assert().Equal(analysis.StatusOver, uncategorized.Status)
	suite.Assert().False(uncategorized.Percentage.Valid, "The percentage of unbudgeted spending is undefined")
}

func (suite *TestSuiteStandard) TestAnalysisFails() {
	budget := createAnalysisFixture(suite.T())

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Unknown budget", fmt.Sprintf("http://example.com/v1/budgets/%s/analysis", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/budgets/not-a-uuid/analysis", http.StatusBadRequest},
		{"Inverted range", budget.Data.Links.Analysis + "?from=2024-05-20&until=2024-05-10", http.StatusBadRequest},
		{"Month and range", budget.Data.Links.Analysis + "?month=2024-05&from=2024-05-02", http.StatusBadRequest},
		{"Invalid date", budget.Data.Links.Analysis + "?from=tomorrow", http.StatusBadRequest},
		{"Invalid month", budget.Data.Links.Analysis + "?month=2024-13", http.StatusBadRequest},
		{"Invalid bool", budget.Data.Links.Analysis + "?excludePending=maybe", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := getAnalysis(t, tt.url, tt.status)
			assert.NotNil(t, response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

// TestAnalysisAfterWrite verifies that the analysis reflects writes immediately.
func (suite *TestSuiteStandard) TestAnalysisAfterWrite() {
	budget := createAnalysisFixture(suite.T())
	url := budget.Data.Links.Analysis + "?today=2024-05-11"

	a := getAnalysis(suite.T(), url, http.StatusOK).Data
	suite.Assert().Equal(analysis.StatusOver, a.CategoryAnalysis[0].Status)

	// Raising the allocation fixes the budget
	allocations := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Allocations, "")
	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &allocations, &list)
	suite.Require().Len(list.Data, 1)

	r := test.Request(suite.T(), http.MethodPatch, list.Data[0].Links.Self, map[string]any{"amount": "1000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	a = getAnalysis(suite.T(), url, http.StatusOK).Data
	suite.Assert().Equal(analysis.StatusGood, a.CategoryAnalysis[0].Status)
	suite.Assert().True(decimal.NewFromInt(55).Equal(a.CategoryAnalysis[0].Percentage.Decimal))
}
