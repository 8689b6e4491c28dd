package alert

import (
	"time"

	"github.com/billfold/billfold/pkg/limit"
	"github.com/shopspring/decimal"
)

// Alert records one limit breach. Immutable except for IsRead, which only
// ever transitions from false to true.
type Alert struct {
	ID           int
	CategoryID   int
	CategoryName string
	WindowStart  time.Time
	WindowEnd    time.Time
	Period       limit.Period
	LimitAmount  decimal.Decimal
	SpentAmount  decimal.Decimal
	CreatedAt    time.Time
	IsRead       bool
}
