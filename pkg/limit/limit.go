package limit

import (
	"github.com/shopspring/decimal"
)

// Limit caps expense spending for one category over a recurring period.
// A category holds at most one limit; setting a new one replaces it.
type Limit struct {
	ID         int
	CategoryID int
	Amount     decimal.Decimal
	Period     Period
}

// CategoryLimit is a Limit joined with its category name, for listings.
type CategoryLimit struct {
	Limit
	CategoryName string
}

// BreachResult is the outcome of evaluating a category's spending against
// its configured limit as of a given date.
type BreachResult struct {
	Breached    bool
	Window      Window
	Period      Period
	LimitAmount decimal.Decimal
	SpentAmount decimal.Decimal
}
