package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrUnknownKeys = errors.New("unknown keys in snapshot")

// Snapshot is a budget with its transactions as stored in a TOML file.
type Snapshot struct {
	Budget       SnapshotBudget        `toml:"budget"`
	Transactions []SnapshotTransaction `toml:"transactions"`
}

type SnapshotBudget struct {
	Name        string               `toml:"name"`
	TotalAmount decimal.Decimal      `toml:"total_amount"`
	StartDate   time.Time            `toml:"start_date"`
	EndDate     time.Time            `toml:"end_date"`
	Allocations []SnapshotAllocation `toml:"allocations"`
}

type SnapshotAllocation struct {
	Category  string          `toml:"category"`
	Allocated decimal.Decimal `toml:"allocated"`
}

type SnapshotTransaction struct {
	Category string                     `toml:"category"`
	Type     analysis.TransactionType   `toml:"type"`
	Amount   decimal.Decimal            `toml:"amount"`
	Date     time.Time                  `toml:"date"`
	Status   analysis.TransactionStatus `toml:"status"`
}

// LoadSnapshot reads a snapshot from a TOML file.
//
// Keys that do not belong to the snapshot format are an error so that
// typos do not silently change the analysis.
func LoadSnapshot(path string) (Snapshot, error) {
	var s Snapshot

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	return s, nil
}

// Engine converts the snapshot to the input of analysis.Analyze.
func (s Snapshot) Engine() ([]analysis.Transaction, analysis.Budget) {
	budget := analysis.Budget{
		TotalAmount: s.Budget.TotalAmount,
		StartDate:   calendarDay(s.Budget.StartDate),
		EndDate:     calendarDay(s.Budget.EndDate),
		Allocations: make([]analysis.Allocation, 0, len(s.Budget.Allocations)),
	}

	for _, a := range s.Budget.Allocations {
		budget.Allocations = append(budget.Allocations, analysis.Allocation{
			Category:  a.Category,
			Allocated: a.Allocated,
		})
	}

	transactions := make([]analysis.Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		transactions = append(transactions, analysis.Transaction{
			Amount:   t.Amount,
			Type:     t.Type,
			Category: t.Category,
			Date:     calendarDay(t.Date),
			Status:   t.Status,
		})
	}

	return transactions, budget
}

// calendarDay returns the day t was written for. TOML local dates are decoded
// in time.Local, converting them to UTC first could move them to another day.
func calendarDay(t time.Time) time.Time {
	return types.NewDate(t.Date()).Time()
}

// Title returns the name of the budget and its period.
func (s Snapshot) Title() string {
	period := fmt.Sprintf("%s to %s", s.Budget.StartDate.Format(time.DateOnly), s.Budget.EndDate.Format(time.DateOnly))
	if s.Budget.Name == "" {
		return period
	}

	return fmt.Sprintf("%s, %s", s.Budget.Name, period)
}
