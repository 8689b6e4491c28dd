package transaction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeIncome, TypeExpense:
		return Type(s), nil
	}
	return "", fmt.Errorf("type must be 'income' or 'expense', got %q", s)
}

// DateLayout is the only accepted transaction date format.
const DateLayout = "2006-01-02"

// Transaction is immutable once created. Amount is always positive; the
// type determines the sign applied to the balance.
type Transaction struct {
	ID           int
	Uid          string
	Date         time.Time
	Amount       decimal.Decimal
	Type         Type
	CategoryID   int
	CategoryName string
	Description  string
}
