package limit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type stubExpense struct {
	categoryId int
	date       time.Time
	amount     decimal.Decimal
}

type StubSpendAggregator struct {
	expenses []stubExpense
}

func NewStubSpendAggregator() *StubSpendAggregator {
	return &StubSpendAggregator{}
}

func (s *StubSpendAggregator) AddExpense(categoryId int, date time.Time, amount decimal.Decimal) {
	s.expenses = append(s.expenses, stubExpense{categoryId: categoryId, date: date, amount: amount})
}

func (s *StubSpendAggregator) SumExpenses(ctx context.Context, categoryId int, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range s.expenses {
		if e.categoryId != categoryId {
			continue
		}
		if !e.date.Before(from) && e.date.Before(to) {
			total = total.Add(e.amount)
		}
	}
	return total, nil
}

func (s *StubSpendAggregator) Cleanup() {
	s.expenses = nil
}
