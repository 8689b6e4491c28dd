package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type StubTransactionRepo struct {
	nextId int
	data   []Transaction
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{}
}

func (s *StubTransactionRepo) Store(ctx context.Context, t Transaction) (int, error) {
	s.nextId++
	t.ID = s.nextId
	s.data = append(s.data, t)
	return t.ID, nil
}

func (s *StubTransactionRepo) GetAll(ctx context.Context, limit int) ([]Transaction, error) {
	result := make([]Transaction, len(s.data))
	copy(result, s.data)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *StubTransactionRepo) GetAllBetween(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	var result []Transaction
	for _, t := range s.data {
		if !t.Date.Before(from) && t.Date.Before(to) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *StubTransactionRepo) Balance(ctx context.Context) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, t := range s.data {
		if t.Type == TypeExpense {
			balance = balance.Sub(t.Amount)
		} else {
			balance = balance.Add(t.Amount)
		}
	}
	return balance, nil
}

func (s *StubTransactionRepo) SumExpenses(ctx context.Context, categoryId int, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range s.data {
		if t.CategoryID != categoryId || t.Type != TypeExpense {
			continue
		}
		if !t.Date.Before(from) && t.Date.Before(to) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

func (s *StubTransactionRepo) Cleanup() {
	s.data = nil
	s.nextId = 0
}
