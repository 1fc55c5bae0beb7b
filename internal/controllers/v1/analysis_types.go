package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type AnalysisQueryFilter struct {
	From             types.Date  `form:"from"`             // First day of the period, YYYY-MM-DD. Defaults to the start of the budget
	Until            types.Date  `form:"until"`            // Last day of the period, YYYY-MM-DD. Defaults to the end of the budget
	Month            types.Month `form:"month"`            // Shortcut for a whole calendar month, YYYY-MM
	IncludeCancelled bool        `form:"includeCancelled"` // Count cancelled transactions, too
	ExcludePending   bool        `form:"excludePending"`   // Do not count pending transactions
	Today            types.Date  `form:"today"`            // Reference day for elapsed and remaining days. Defaults to the current day
}

// query returns the report query for the filter.
func (f AnalysisQueryFilter) query() (reports.Query, error) {
	q := reports.Query{
		From:             f.From,
		Until:            f.Until,
		IncludeCancelled: f.IncludeCancelled,
		ExcludePending:   f.ExcludePending,
		Today:            f.Today,
	}

	if !f.Month.IsZero() {
		if !f.From.IsZero() || !f.Until.IsZero() {
			return reports.Query{}, errMonthAndRange
		}

		q.From = f.Month.FirstDay()
		q.Until = f.Month.LastDay()
	}

	return q, nil
}

type AnalysisLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/analysis?from=2024-06-01&until=2024-06-30"` // The analysis itself, for the analyzed period
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                         // The analyzed budget
}

// Analysis is the API representation of a budget analysis.
type Analysis struct {
	reports.Report
	Links AnalysisLinks `json:"links"`
}

func newAnalysis(c *gin.Context, report reports.Report) Analysis {
	url := c.GetString(string(models.DBContextURL))

	return Analysis{
		Report: report,
		Links: AnalysisLinks{
			Self:   fmt.Sprintf("%s/v1/budgets/%s/analysis?from=%s&until=%s", url, report.BudgetID, report.From, report.Until),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, report.BudgetID),
		},
	}
}

type AnalysisResponse struct {
	Error *string   `json:"error" example:"invalid period: the start date must not be after the end date"` // The error, if any occurred
	Data  *Analysis `json:"data"`                                                                          // The analysis
}
