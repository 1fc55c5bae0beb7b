package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/models"
	ez_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	BudgetID uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // ID of the budget the allocation belongs to
	Category string          `json:"category" example:"groceries"`                             // The category the amount is allocated to. Must be unique per budget
	Amount   decimal.Decimal `json:"amount" example:"500" minimum:"0" multipleOf:"0.00000001"` // The amount allocated to the category
}

func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		BudgetID: editable.BudgetID,
		Category: editable.Category,
		Amount:   editable.Amount,
	}
}

type AllocationLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/allocations/902cd93c-3724-4e46-8540-d014131282fc"` // The allocation itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // The budget the allocation belongs to
}

// Allocation is the API representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			BudgetID: model.BudgetID,
			Category: model.Category,
			Amount:   model.Amount,
		},
		Links: AllocationLinks{
			Self:   fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created Allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
}

type AllocationQueryFilter struct {
	BudgetID ez_uuid.UUID    `form:"budget"`                     // By ID of the budget
	Category string          `form:"category"`                   // By exact category
	Amount   decimal.Decimal `form:"amount" filterField:"false"` // By exact amount
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first Allocation returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of Allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		BudgetID: f.BudgetID.UUID,
		Category: f.Category,
	}
}
