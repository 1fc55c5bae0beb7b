// Package reports loads budgets and transactions from the database and
// analyzes them.
package reports

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Query selects the period and the transactions to analyze.
type Query struct {
	From             types.Date // First day of the period. Defaults to the start of the budget
	Until            types.Date // Last day of the period. Defaults to the end of the budget
	IncludeCancelled bool
	ExcludePending   bool
	Today            types.Date // Reference day for elapsed days. Defaults to the current day
}

func (q Query) key(budgetID uuid.UUID, today types.Date) string {
	return fmt.Sprintf("%s|%s|%s|%t|%t|%s", budgetID, q.From, q.Until, q.IncludeCancelled, q.ExcludePending, today)
}

// Report is the analysis of a budget for a resolved period.
type Report struct {
	BudgetID uuid.UUID  `json:"budgetId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the analyzed budget
	From     types.Date `json:"from" swaggertype:"string" example:"2024-06-01"`         // First day of the analyzed period
	Until    types.Date `json:"until" swaggertype:"string" example:"2024-06-30"`        // Last day of the analyzed period
	Today    types.Date `json:"today" swaggertype:"string" example:"2024-06-16"`        // Reference day for elapsed and remaining days
	analysis.Result
}

// Service analyzes budgets. Results are cached until Invalidate is called
// or the configured TTL expires.
type Service struct {
	cache *cache.Cache

	// generation is bumped by Invalidate. Results computed from data loaded
	// in an older generation are not cached.
	mu         sync.Mutex
	generation uint64
}

// NewService returns a new Service. A ttl of 0 disables caching.
func NewService(ttl time.Duration) *Service {
	s := &Service{}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}

	return s
}

// Invalidate drops all cached results. It must be called
// whenever budgets, allocations or transactions change.
func (s *Service) Invalidate() {
	if s.cache == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cache.Flush()
}

func (s *Service) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// store caches the report unless the cache was invalidated since generation.
func (s *Service) store(key string, report Report, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation {
		s.cache.Set(key, report, cache.DefaultExpiration)
	}
}

// Analyze loads the budget with its allocations and transactions and analyzes them.
func (s *Service) Analyze(ctx context.Context, db *gorm.DB, budgetID uuid.UUID, q Query) (Report, error) {
	today := q.Today
	if today.IsZero() {
		today = types.Today()
	}

	key := q.key(budgetID, today)
	generation := s.currentGeneration()
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			cacheRequests.WithLabelValues("hit").Inc()
			return cached.(Report), nil
		}
		cacheRequests.WithLabelValues("miss").Inc()
	}

	var budget models.Budget
	err := db.WithContext(ctx).First(&budget, budgetID).Error
	if err != nil {
		return Report{}, err
	}

	from, until := q.From, q.Until
	if from.IsZero() {
		from = budget.StartDate
	}

	if until.IsZero() {
		until = budget.EndDate
	}

	var allocations []models.Allocation
	var transactions []models.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allocations, err = budget.Allocations(db.WithContext(gctx))
		return err
	})

	g.Go(func() (err error) {
		transactions, err = budget.Transactions(db.WithContext(gctx), from, until)
		return err
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	input := analysis.Budget{
		Allocations: make([]analysis.Allocation, 0, len(allocations)),
		TotalAmount: budget.TotalAmount,
		StartDate:   from.Time(),
		EndDate:     until.Time(),
	}

	for _, a := range allocations {
		input.Allocations = append(input.Allocations, analysis.Allocation{
			Category:  a.Category,
			Allocated: a.Amount,
		})
	}

	records := make([]analysis.Transaction, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.Analysis())
	}

	start := time.Now()
	result, err := analysis.Analyze(records, input, analysis.Options{
		IncludeCancelled: q.IncludeCancelled,
		ExcludePending:   q.ExcludePending,
		Today:            today.Time(),
	})
	elapsed := time.Since(start)
	analysisDuration.Observe(elapsed.Seconds())

	if err != nil {
		return Report{}, err
	}

	log.Debug().
		Str("budget", budgetID.String()).
		Str("from", from.String()).
		Str("until", until.String()).
		Int("transactions", len(records)).
		Dur("duration", elapsed).
		Msg("analysis")

	report := Report{
		BudgetID: budgetID,
		From:     from,
		Until:    until,
		Today:    today,
		Result:   result,
	}

	if s.cache != nil {
		s.store(key, report, generation)
	}

	return report, nil
}
