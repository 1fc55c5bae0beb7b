package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	ez_uuid "github.com/fintrack-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	BudgetID uuid.UUID  `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the transaction is booked on
	Date     types.Date `json:"date" swaggertype:"string" example:"2024-06-03"`          // Day of the transaction. Defaults to the current day
	Note     string     `json:"note" example:"Weekly shopping" default:""`               // A note
	Category string     `json:"category" example:"groceries" default:""`                 // The category of the transaction. Expenses without a category are analyzed as "uncategorized"

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction. Always positive, the direction is given by the type

	Type   analysis.TransactionType   `json:"type" example:"expense"`                         // income, expense or transfer
	Status analysis.TransactionStatus `json:"status" example:"completed" default:"completed"` // pending, completed or cancelled. Defaults to completed
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BudgetID: editable.BudgetID,
		Date:     editable.Date,
		Amount:   editable.Amount,
		Note:     editable.Note,
		Category: editable.Category,
		Type:     editable.Type,
		Status:   editable.Status,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // The budget the transaction is booked on
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID: model.BudgetID,
			Date:     model.Date,
			Amount:   model.Amount,
			Note:     model.Note,
			Category: model.Category,
			Type:     model.Type,
			Status:   model.Status,
		},
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	BudgetID          ez_uuid.UUID               `form:"budget"`                                // ID of the budget
	Category          string                     `form:"category" filterField:"false"`          // Category. Globs with * are supported
	Type              analysis.TransactionType   `form:"type"`                                  // Type of the transaction
	Status            analysis.TransactionStatus `form:"status"`                                // Status of the transaction
	FromDate          types.Date                 `form:"fromDate" filterField:"false"`          // From this day on
	UntilDate         types.Date                 `form:"untilDate" filterField:"false"`         // Until and including this day
	Amount            decimal.Decimal            `form:"amount" filterField:"false"`            // Exact amount
	AmountLessOrEqual decimal.Decimal            `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal            `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note              string                     `form:"note" filterField:"false"`              // Note contains this string
	Offset            uint                       `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                        `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

// model returns the fields of the filter that are used in the
// Where clause directly. Strings, dates and amounts are handled
// in the controller function.
func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		BudgetID: f.BudgetID.UUID,
		Type:     f.Type,
		Status:   f.Status,
	}
}
