package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/billfold/billfold/pkg/transaction"
	"github.com/shopspring/decimal"
)

type Service interface {
	Monthly(ctx context.Context, year, month int) (MonthlyReport, error)
}

type ServiceImpl struct {
	transactions transaction.Repo
}

func NewReportService(transactions transaction.Repo) *ServiceImpl {
	return &ServiceImpl{transactions: transactions}
}

func (s *ServiceImpl) Monthly(ctx context.Context, year, month int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	transactions, err := s.transactions.GetAllBetween(ctx, start, end)
	if err != nil {
		return MonthlyReport{}, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	perCategory := map[string]decimal.Decimal{}
	for _, t := range transactions {
		net := perCategory[t.CategoryName]
		if t.Type == transaction.TypeExpense {
			expense = expense.Add(t.Amount)
			perCategory[t.CategoryName] = net.Sub(t.Amount)
		} else {
			income = income.Add(t.Amount)
			perCategory[t.CategoryName] = net.Add(t.Amount)
		}
	}

	byCategory := make([]CategoryNet, 0, len(perCategory))
	for name, net := range perCategory {
		byCategory = append(byCategory, CategoryNet{Category: name, Net: net})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if !byCategory[i].Net.Equal(byCategory[j].Net) {
			return byCategory[i].Net.GreaterThan(byCategory[j].Net)
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return MonthlyReport{
		Year:       year,
		Month:      month,
		Income:     income,
		Expense:    expense,
		Net:        income.Sub(expense),
		ByCategory: byCategory,
	}, nil
}
