package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/billfold/billfold/pkg/limit"
	"github.com/billfold/billfold/pkg/transaction"
	"github.com/shopspring/decimal"
)

// Command is the closed set of billfold subcommands. Each variant carries
// its already validated, typed arguments; nothing touches the store before
// parsing succeeds.
type Command interface {
	DBPath() string
}

type baseCmd struct {
	Db string
}

func (c baseCmd) DBPath() string {
	return c.Db
}

type InitCmd struct {
	baseCmd
}

type AddCategoryCmd struct {
	baseCmd
	Name string
}

type AddCmd struct {
	baseCmd
	Type        transaction.Type
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

type ListCmd struct {
	baseCmd
	Limit int
}

type CategoriesCmd struct {
	baseCmd
}

type BalanceCmd struct {
	baseCmd
}

type ReportCmd struct {
	baseCmd
	Year  int
	Month int
	Csv   bool
}

type SetLimitCmd struct {
	baseCmd
	Category string
	Amount   decimal.Decimal
	Period   limit.Period
}

type ListLimitsCmd struct {
	baseCmd
}

type RemoveLimitCmd struct {
	baseCmd
	Category string
}

type AlertsCmd struct {
	baseCmd
	UnreadOnly bool
	MarkRead   bool
	Limit      int
}

var ErrUsage = errors.New(`usage: billfold <command> [flags]

Commands:
  init          Initialize the database
  add-category  Add a category
  add           Add a transaction
  list          List transactions
  categories    List categories
  balance       Show current balance
  report        Monthly report
  set-limit     Set spending limit for a category
  list-limits   List all category spending limits
  remove-limit  Remove spending limit from a category
  alerts        View spending alerts

All commands accept --db <path> to select the database file.`)

// Parse turns raw arguments into a typed command. defaultDB is the
// configured database path, overridden by --db.
func Parse(args []string, defaultDB string) (Command, error) {
	if len(args) == 0 {
		return nil, ErrUsage
	}

	name := args[0]
	args = args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	db := fs.String("db", defaultDB, "Path to sqlite database file")

	switch name {
	case "init":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &InitCmd{baseCmd{*db}}, nil

	case "add-category":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() != 1 {
			return nil, errors.New("add-category requires exactly one name argument")
		}
		return &AddCategoryCmd{baseCmd{*db}, fs.Arg(0)}, nil

	case "add":
		typeStr := fs.String("type", "", "Transaction type: income or expense")
		dateStr := fs.String("date", "", "Transaction date, YYYY-MM-DD")
		amountStr := fs.String("amount", "", "Transaction amount")
		category := fs.String("category", "", "Category name")
		description := fs.String("description", "", "Optional description")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		ttype, err := transaction.ParseType(*typeStr)
		if err != nil {
			return nil, err
		}
		date, err := parseDate(*dateStr)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(*amountStr)
		if err != nil {
			return nil, err
		}
		if *category == "" {
			return nil, errors.New("--category is required")
		}
		return &AddCmd{baseCmd{*db}, ttype, date, amount, *category, *description}, nil

	case "list":
		limitN := fs.Int("limit", 0, "Limit number of rows")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &ListCmd{baseCmd{*db}, *limitN}, nil

	case "categories":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &CategoriesCmd{baseCmd{*db}}, nil

	case "balance":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &BalanceCmd{baseCmd{*db}}, nil

	case "report":
		year := fs.Int("year", 0, "Report year")
		month := fs.Int("month", 0, "Report month (1-12)")
		csvOut := fs.Bool("csv", false, "Render the report as CSV")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if *year <= 0 {
			return nil, errors.New("--year is required")
		}
		if *month < 1 || *month > 12 {
			return nil, fmt.Errorf("--month must be between 1 and 12, got %d", *month)
		}
		return &ReportCmd{baseCmd{*db}, *year, *month, *csvOut}, nil

	case "set-limit":
		category := fs.String("category", "", "Category name")
		amountStr := fs.String("amount", "", "Limit amount")
		periodStr := fs.String("period", string(limit.PeriodMonthly), "Time period for limit")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if *category == "" {
			return nil, errors.New("--category is required")
		}
		amount, err := parseAmount(*amountStr)
		if err != nil {
			return nil, err
		}
		period, err := limit.ParsePeriod(*periodStr)
		if err != nil {
			return nil, err
		}
		return &SetLimitCmd{baseCmd{*db}, *category, amount, period}, nil

	case "list-limits":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &ListLimitsCmd{baseCmd{*db}}, nil

	case "remove-limit":
		category := fs.String("category", "", "Category name")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if *category == "" {
			return nil, errors.New("--category is required")
		}
		return &RemoveLimitCmd{baseCmd{*db}, *category}, nil

	case "alerts":
		unreadOnly := fs.Bool("unread-only", false, "Show only unread alerts")
		markRead := fs.Bool("mark-read", false, "Mark all alerts as read")
		limitN := fs.Int("limit", 0, "Limit number of alerts to show")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return &AlertsCmd{baseCmd{*db}, *unreadOnly, *markRead, *limitN}, nil
	}

	return nil, fmt.Errorf("unknown command %q\n\n%w", name, ErrUsage)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("--date is required")
	}
	date, err := time.Parse(transaction.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format, got %q", s)
	}
	return date, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("--amount is required")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a decimal number, got %q", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}
