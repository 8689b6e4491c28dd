package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/billfold/billfold/pkg/alert"
	"github.com/billfold/billfold/pkg/category"
	"github.com/billfold/billfold/pkg/limit"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrNonPositiveAmount = errors.New("transaction amount must be positive")

type Service interface {
	// Add validates and persists a transaction. For an expense it then
	// evaluates the category's limit and returns the newly created alert,
	// if any.
	Add(ctx context.Context, t Transaction) (Transaction, *alert.Alert, error)
	GetAll(ctx context.Context, limit int) ([]Transaction, error)
	Balance(ctx context.Context) (decimal.Decimal, error)
}

type ServiceImpl struct {
	repo       Repo
	categories category.Repo
	limits     limit.Service
	alerts     alert.Service
}

func NewTransactionService(repo Repo, categories category.Repo, limits limit.Service, alerts alert.Service) *ServiceImpl {
	return &ServiceImpl{repo: repo, categories: categories, limits: limits, alerts: alerts}
}

func (s *ServiceImpl) Add(ctx context.Context, t Transaction) (Transaction, *alert.Alert, error) {
	if !t.Amount.IsPositive() {
		return Transaction{}, nil, ErrNonPositiveAmount
	}
	if _, err := ParseType(string(t.Type)); err != nil {
		return Transaction{}, nil, err
	}

	cat, err := s.categories.GetByName(ctx, t.CategoryName)
	if err != nil {
		return Transaction{}, nil, err
	}
	t.CategoryID = cat.ID
	t.Uid = uuid.NewString()

	id, err := s.repo.Store(ctx, t)
	if err != nil {
		return Transaction{}, nil, err
	}
	t.ID = id

	if t.Type != TypeExpense {
		return t, nil, nil
	}

	// The aggregation below reads the transaction persisted above, so the
	// breach decision always includes it.
	breach, err := s.limits.Evaluate(ctx, t.CategoryID, t.Date)
	if err != nil {
		return Transaction{}, nil, fmt.Errorf("failed to evaluate limit: %w", err)
	}
	created, err := s.alerts.MaybeEmit(ctx, t.CategoryID, breach)
	if err != nil {
		return Transaction{}, nil, fmt.Errorf("failed to emit alert: %w", err)
	}
	if created != nil {
		log.Debugf("spending alert %d created for category %q", created.ID, t.CategoryName)
	}
	return t, created, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context, limit int) ([]Transaction, error) {
	return s.repo.GetAll(ctx, limit)
}

func (s *ServiceImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.Balance(ctx)
}
