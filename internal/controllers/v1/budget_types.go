package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string          `json:"name" example:"June" default:""`                                 // Name of the budget
	Note        string          `json:"note" example:"Summer holidays included" default:""`             // A longer description of the budget
	Currency    string          `json:"currency" example:"€" default:""`                                // The currency for the budget
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1000" minimum:"0" multipleOf:"0.00000001"` // Total amount of money available in the budget
	StartDate   types.Date      `json:"startDate" swaggertype:"string" example:"2024-06-01"`            // First day of the budget period. Defaults to the first day of the current month
	EndDate     types.Date      `json:"endDate" swaggertype:"string" example:"2024-06-30"`              // Last day of the budget period. Defaults to the last day of the month of the start date
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:        editable.Name,
		Note:        editable.Note,
		Currency:    editable.Currency,
		TotalAmount: editable.TotalAmount,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                     // The budget itself
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // Allocations for this budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions for this budget
	Analysis     string `json:"analysis" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/analysis"`        // Analysis of this budget
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			Note:        model.Note,
			Currency:    model.Currency,
			TotalAmount: model.TotalAmount,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Allocations:  fmt.Sprintf("%s/v1/allocations?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
			Analysis:     fmt.Sprintf("%s/v1/budgets/%s/analysis", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // Data for the budget
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By the note
	Currency string `form:"currency"`                   // By the currency
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
	}
}
