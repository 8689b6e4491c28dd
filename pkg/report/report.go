package report

import (
	"github.com/shopspring/decimal"
)

// CategoryNet is one category's net (income minus expense) within the
// reported month.
type CategoryNet struct {
	Category string
	Net      decimal.Decimal
}

type MonthlyReport struct {
	Year       int
	Month      int
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategoryNet
}
