// Package analysis computes budget analyses from transactions.
//
// Everything in this package is a pure function of its inputs: no I/O,
// no shared state. An Analyze call can run concurrently with any other.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// swagger:enum TransactionStatus
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

// swagger:enum Status
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusOver    Status = "over"
)

// Transaction is a single transaction as consumed by the engine.
type Transaction struct {
	Amount   decimal.Decimal   // Absolute amount, the sign is given by Type
	Type     TransactionType   // income, expense or transfer
	Category string            // Category identifier
	Date     time.Time         // Only the calendar day in UTC is used
	Status   TransactionStatus // Empty is treated as completed
}

// Allocation is the amount budgeted for one category.
type Allocation struct {
	Category  string
	Allocated decimal.Decimal

	// Spent is what the budget store believes has been spent. It is never
	// trusted, the engine recomputes it from the transactions.
	Spent decimal.Decimal
}

// Remaining returns the allocated amount minus the spent amount. It is
// negative when the category is overspent.
func (a Allocation) Remaining() decimal.Decimal {
	return a.Allocated.Sub(a.Spent)
}

// Budget is the budget definition for a period.
type Budget struct {
	Allocations []Allocation
	TotalAmount decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
}

// Options tune which transactions are taken into account.
type Options struct {
	IncludeCancelled bool // Count cancelled transactions, too
	ExcludePending   bool // Do not count pending transactions

	// Today is the reference day for elapsed and remaining days.
	// If it is the zero value, the current day in UTC is used.
	Today time.Time
}

// Result is the outcome of an analysis.
type Result struct {
	CategoryAnalysis   []CategoryAnalysis `json:"categoryAnalysis"`   // Per category breakdown, allocations first, then unbudgeted categories
	TrendAnalysis      TrendAnalysis      `json:"trendAnalysis"`      // Projections for the period
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"` // Category status counts and utilization
}

// CategoryAnalysis is the analysis for a single category.
type CategoryAnalysis struct {
	Category   string              `json:"category" example:"groceries"`                  // Category identifier
	Budgeted   decimal.Decimal     `json:"budgeted" example:"500"`                        // Allocated amount. 0 for unbudgeted categories
	Spent      decimal.Decimal     `json:"spent" example:"550"`                           // Sum of expenses in the period
	Remaining  decimal.Decimal     `json:"remaining" example:"-50"`                       // Budgeted minus spent
	Percentage decimal.NullDecimal `json:"percentage" swaggertype:"string" example:"110"` // Spent in percent of budgeted. null if something was spent without a budget
	Status     Status              `json:"status" example:"over"`                         // good, warning or over
	Unbudgeted bool                `json:"unbudgeted" example:"false"`                    // Is there spending without an allocation for this category?
}

// TrendAnalysis contains the projections for the budget period.
type TrendAnalysis struct {
	TotalBudget          decimal.Decimal `json:"totalBudget" example:"1000"`        // Total amount of the budget
	TotalSpent           decimal.Decimal `json:"totalSpent" example:"200"`          // Sum of all expenses in the period
	TotalIncome          decimal.Decimal `json:"totalIncome" example:"2300"`        // Sum of all income in the period
	AverageDailySpending decimal.Decimal `json:"averageDailySpending" example:"20"` // Spending per elapsed day
	ProjectedSpending    decimal.Decimal `json:"projectedSpending" example:"600"`   // Spending for the whole period at the current rate
	SavingsRate          decimal.Decimal `json:"savingsRate" example:"0.8"`         // Share of the budget not spent. 0 if there is no budget
	DaysElapsed          int             `json:"daysElapsed" example:"10"`          // Days elapsed in the period, at least 1
	DaysRemaining        int             `json:"daysRemaining" example:"20"`        // Days left in the period
	TotalDays            int             `json:"totalDays" example:"30"`            // Length of the period in days
}

// PerformanceMetrics summarizes the category statuses.
type PerformanceMetrics struct {
	TotalCategories      int             `json:"totalCategories" example:"4"`      // Number of analysed categories
	OnTrackCategories    int             `json:"onTrackCategories" example:"2"`    // Categories with status good
	WarningCategories    int             `json:"warningCategories" example:"1"`    // Categories with status warning
	OverBudgetCategories int             `json:"overBudgetCategories" example:"1"` // Categories with status over
	BudgetUtilization    decimal.Decimal `json:"budgetUtilization" example:"20"`   // Total spent in percent of the total budget
}
