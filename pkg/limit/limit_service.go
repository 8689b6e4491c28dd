package limit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/billfold/billfold/pkg/category"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrNonPositiveAmount = errors.New("limit amount must be positive")

// SpendAggregator sums expense amounts for a category within a half-open
// date window. Implemented by the transaction repository.
type SpendAggregator interface {
	SumExpenses(ctx context.Context, categoryId int, from, to time.Time) (decimal.Decimal, error)
}

type Service interface {
	Set(ctx context.Context, categoryName string, amount decimal.Decimal, period Period) error
	Remove(ctx context.Context, categoryName string) (bool, error)
	List(ctx context.Context) ([]CategoryLimit, error)
	// Evaluate decides whether the category's spending breaches its limit
	// in the period window containing asOf. A category without a limit is
	// never breached and produces no error.
	Evaluate(ctx context.Context, categoryId int, asOf time.Time) (BreachResult, error)
}

type ServiceImpl struct {
	repo       Repo
	categories category.Repo
	aggregator SpendAggregator
}

func NewLimitService(repo Repo, categories category.Repo, aggregator SpendAggregator) *ServiceImpl {
	return &ServiceImpl{repo: repo, categories: categories, aggregator: aggregator}
}

func (s *ServiceImpl) Set(ctx context.Context, categoryName string, amount decimal.Decimal, period Period) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	cat, err := s.categories.GetByName(ctx, categoryName)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, cat.ID, amount, period)
}

func (s *ServiceImpl) Remove(ctx context.Context, categoryName string) (bool, error) {
	cat, err := s.categories.GetByName(ctx, categoryName)
	if err != nil {
		return false, err
	}
	return s.repo.Remove(ctx, cat.ID)
}

func (s *ServiceImpl) List(ctx context.Context) ([]CategoryLimit, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Evaluate(ctx context.Context, categoryId int, asOf time.Time) (BreachResult, error) {
	l, err := s.repo.Get(ctx, categoryId)
	if errors.Is(err, ErrNotFound) {
		return BreachResult{}, nil
	}
	if err != nil {
		return BreachResult{}, fmt.Errorf("failed to look up limit: %w", err)
	}

	window := l.Period.WindowContaining(asOf)
	spent, err := s.aggregator.SumExpenses(ctx, categoryId, window.Start, window.End)
	if err != nil {
		return BreachResult{}, fmt.Errorf("failed to aggregate spending: %w", err)
	}

	breached := spent.GreaterThan(l.Amount)
	if breached {
		log.Debugf("category %d over %s limit: spent %s > %s", categoryId, l.Period, spent, l.Amount)
	}
	return BreachResult{
		Breached:    breached,
		Window:      window,
		Period:      l.Period,
		LimitAmount: l.Amount,
		SpentAmount: spent,
	}, nil
}
