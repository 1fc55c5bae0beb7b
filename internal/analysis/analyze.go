package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Uncategorized is the category used for transactions without a category.
const Uncategorized = "uncategorized"

var (
	hundred = decimal.NewFromInt(100)

	// Categories up to this percentage of their budget are on track.
	warningThreshold = decimal.NewFromInt(80)
)

// Analyze computes the analysis of a budget for the transactions passed in.
//
// Transactions outside of the budget period are ignored, as are cancelled
// transactions unless opts.IncludeCancelled is set. Empty transaction or
// allocation lists are valid and yield a zero valued result.
//
// Structurally invalid input results in a *ValidationError.
func Analyze(transactions []Transaction, budget Budget, opts Options) (Result, error) {
	if err := validate(transactions, budget); err != nil {
		return Result{}, err
	}

	today := opts.Today
	if today.IsZero() {
		today = time.Now().In(time.UTC)
	}
	p := newPeriod(budget.StartDate, budget.EndDate, today)

	spending, income := group(transactions, p, opts)
	categories := categoryAnalysis(budget.Allocations, spending)
	trend := trendAnalysis(categories, income, budget.TotalAmount, p)

	return Result{
		CategoryAnalysis:   categories,
		TrendAnalysis:      trend,
		PerformanceMetrics: performanceMetrics(categories, trend),
	}, nil
}

func validate(transactions []Transaction, budget Budget) error {
	if day(budget.StartDate).After(day(budget.EndDate)) {
		return invalid("period", ErrInvalidRange)
	}

	if budget.TotalAmount.IsNegative() {
		return invalid("totalAmount", ErrNegativeTotal)
	}

	for i, a := range budget.Allocations {
		if a.Allocated.IsNegative() {
			return invalid(fmt.Sprintf("allocations[%d].allocated", i), ErrNegativeAllocation)
		}
	}

	for i, t := range transactions {
		if t.Amount.IsNegative() {
			return invalid(fmt.Sprintf("transactions[%d].amount", i), ErrNegativeAmount)
		}

		switch t.Type {
		case TypeIncome, TypeExpense, TypeTransfer:
		default:
			return invalid(fmt.Sprintf("transactions[%d].type", i), ErrUnknownType)
		}

		switch t.Status {
		case "", StatusPending, StatusCompleted, StatusCancelled:
		default:
			return invalid(fmt.Sprintf("transactions[%d].status", i), ErrUnknownStatus)
		}
	}

	return nil
}

// counts reports if the transaction is taken into account at all.
func counts(t Transaction, p period, opts Options) bool {
	if t.Status == StatusCancelled && !opts.IncludeCancelled {
		return false
	}

	if t.Status == StatusPending && opts.ExcludePending {
		return false
	}

	return p.contains(t.Date)
}

// group sums up expenses per category and all income.
//
// Transfers move money between own accounts and are neither spending nor income.
func group(transactions []Transaction, p period, opts Options) (map[string]decimal.Decimal, decimal.Decimal) {
	spending := make(map[string]decimal.Decimal)
	income := decimal.Zero

	for _, t := range transactions {
		if !counts(t, p, opts) {
			continue
		}

		switch t.Type {
		case TypeExpense:
			category := t.Category
			if category == "" {
				category = Uncategorized
			}
			spending[category] = spending[category].Add(t.Amount)
		case TypeIncome:
			income = income.Add(t.Amount)
		}
	}

	return spending, income
}

// categoryAnalysis joins the allocations with the spending.
//
// Allocations keep their order. Allocations for the same category are merged
// into the first one. Categories with spending but no allocation are appended,
// ordered by spending with the highest first.
func categoryAnalysis(allocations []Allocation, spending map[string]decimal.Decimal) []CategoryAnalysis {
	result := make([]CategoryAnalysis, 0, len(allocations))
	index := make(map[string]int, len(allocations))

	for _, a := range allocations {
		if i, ok := index[a.Category]; ok {
			result[i].Budgeted = result[i].Budgeted.Add(a.Allocated)
			continue
		}

		index[a.Category] = len(result)
		result = append(result, CategoryAnalysis{
			Category: a.Category,
			Budgeted: a.Allocated,
		})
	}

	unbudgeted := make([]CategoryAnalysis, 0)
	for category, spent := range spending {
		if _, ok := index[category]; ok || spent.IsZero() {
			continue
		}

		unbudgeted = append(unbudgeted, CategoryAnalysis{
			Category:   category,
			Budgeted:   decimal.Zero,
			Unbudgeted: true,
		})
	}

	// Map iteration order is random, the tie breaker on the name
	// keeps the result deterministic
	sort.Slice(unbudgeted, func(i, j int) bool {
		si, sj := spending[unbudgeted[i].Category], spending[unbudgeted[j].Category]
		if !si.Equal(sj) {
			return si.GreaterThan(sj)
		}
		return unbudgeted[i].Category < unbudgeted[j].Category
	})
	result = append(result, unbudgeted...)

	for i := range result {
		spent, ok := spending[result[i].Category]
		if !ok {
			spent = decimal.Zero
		}

		allocation := Allocation{
			Category:  result[i].Category,
			Allocated: result[i].Budgeted,
			Spent:     spent,
		}

		result[i].Spent = spent
		result[i].Remaining = allocation.Remaining()
		result[i].Percentage = percentage(spent, result[i].Budgeted)
		result[i].Status = classify(spent, result[i].Budgeted)
	}

	return result
}

// percentage returns spent in percent of budgeted, rounded to two places.
//
// With nothing budgeted, the percentage is 0 if nothing was spent and
// undefined otherwise.
func percentage(spent, budgeted decimal.Decimal) decimal.NullDecimal {
	if budgeted.IsZero() {
		return decimal.NullDecimal{
			Decimal: decimal.Zero,
			Valid:   spent.IsZero(),
		}
	}

	return decimal.NewNullDecimal(spent.Mul(hundred).Div(budgeted).Round(2))
}

// classify determines the status from the share of the budget used.
//
// The exact share is compared, the rounded percentage is only for display.
func classify(spent, budgeted decimal.Decimal) Status {
	if budgeted.IsZero() {
		if spent.IsPositive() {
			return StatusOver
		}
		return StatusGood
	}

	used := spent.Mul(hundred)
	switch {
	case spent.GreaterThan(budgeted):
		return StatusOver
	case used.GreaterThan(budgeted.Mul(warningThreshold)):
		return StatusWarning
	default:
		return StatusGood
	}
}

func trendAnalysis(categories []CategoryAnalysis, income, totalBudget decimal.Decimal, p period) TrendAnalysis {
	totalSpent := decimal.Zero
	for _, c := range categories {
		totalSpent = totalSpent.Add(c.Spent)
	}

	elapsed := decimal.NewFromInt(int64(p.daysElapsed()))
	total := decimal.NewFromInt(int64(p.totalDays()))

	savingsRate := decimal.Zero
	if totalBudget.IsPositive() {
		savingsRate = totalBudget.Sub(totalSpent).Div(totalBudget).Round(4)
	}

	return TrendAnalysis{
		TotalBudget:          totalBudget,
		TotalSpent:           totalSpent,
		TotalIncome:          income,
		AverageDailySpending: totalSpent.Div(elapsed).Round(2),

		// Multiplying first keeps the projection exact where possible
		ProjectedSpending: totalSpent.Mul(total).Div(elapsed).Round(2),
		SavingsRate:       savingsRate,
		DaysElapsed:       p.daysElapsed(),
		DaysRemaining:     p.daysRemaining(),
		TotalDays:         p.totalDays(),
	}
}

func performanceMetrics(categories []CategoryAnalysis, trend TrendAnalysis) PerformanceMetrics {
	m := PerformanceMetrics{
		TotalCategories:   len(categories),
		BudgetUtilization: decimal.Zero,
	}

	for _, c := range categories {
		switch c.Status {
		case StatusGood:
			m.OnTrackCategories++
		case StatusWarning:
			m.WarningCategories++
		case StatusOver:
			m.OverBudgetCategories++
		}
	}

	if trend.TotalBudget.IsPositive() {
		m.BudgetUtilization = trend.TotalSpent.Mul(hundred).Div(trend.TotalBudget).Round(2)
	}

	return m
}
