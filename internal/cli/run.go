package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/billfold/billfold/internal/app"
	"github.com/billfold/billfold/internal/database"
	"github.com/billfold/billfold/pkg/alert"
	"github.com/billfold/billfold/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// Run executes a parsed command against the database it names, writing
// human-readable output to out. The database handle lives for exactly one
// invocation.
func Run(ctx context.Context, cmd Command, out io.Writer) error {
	if _, ok := cmd.(*InitCmd); ok {
		db, err := database.Create(cmd.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()
		fmt.Fprintf(out, "Initialized database at %s\n", cmd.DBPath())
		return nil
	}

	db, err := database.Open(cmd.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	deps := app.BuildDependencies(db)

	switch c := cmd.(type) {
	case *AddCategoryCmd:
		created, err := deps.CategoryService.Create(ctx, c.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Category %q -> id %d\n", created.Name, created.ID)

	case *AddCmd:
		t, newAlert, err := deps.TransactionService.Add(ctx, newTransaction(c))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Added transaction %d\n", t.ID)
		if newAlert != nil {
			fmt.Fprintf(out, "\nSPENDING ALERT:\n")
			printAlertLine(out, *newAlert, false)
		}

	case *ListCmd:
		transactions, err := deps.TransactionService.GetAll(ctx, c.Limit)
		if err != nil {
			return err
		}
		if len(transactions) == 0 {
			fmt.Fprintln(out, "No transactions found.")
			return nil
		}
		for _, t := range transactions {
			fmt.Fprintf(out, "%4d | %s | %-7s | %10s | %-15s | %s\n",
				t.ID, t.Date.Format("2006-01-02"), t.Type, t.Amount.StringFixed(2), t.CategoryName, t.Description)
		}

	case *CategoriesCmd:
		categories, err := deps.CategoryService.GetAll(ctx)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			fmt.Fprintln(out, "No categories found.")
			return nil
		}
		for _, cat := range categories {
			fmt.Fprintf(out, "%4d | %s\n", cat.ID, cat.Name)
		}

	case *BalanceCmd:
		balance, err := deps.TransactionService.Balance(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Balance: %s\n", balance.StringFixed(2))

	case *ReportCmd:
		monthly, err := deps.ReportService.Monthly(ctx, c.Year, c.Month)
		if err != nil {
			return err
		}
		if c.Csv {
			rendered, err := deps.CsvReportRenderer.RenderReport(monthly)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		}
		fmt.Fprintf(out, "Report for %04d-%02d\n", monthly.Year, monthly.Month)
		fmt.Fprintf(out, "Income:  %s\n", monthly.Income.StringFixed(2))
		fmt.Fprintf(out, "Expense: %s\n", monthly.Expense.StringFixed(2))
		fmt.Fprintf(out, "Net:     %s\n", monthly.Net.StringFixed(2))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "By category:")
		for _, cat := range monthly.ByCategory {
			fmt.Fprintf(out, "  %-20s %10s\n", cat.Category, cat.Net.StringFixed(2))
		}

	case *SetLimitCmd:
		if err := deps.LimitService.Set(ctx, c.Category, c.Amount, c.Period); err != nil {
			return err
		}
		fmt.Fprintf(out, "Set %s spending limit for %q to %s\n", c.Period, c.Category, c.Amount.StringFixed(2))

	case *ListLimitsCmd:
		limits, err := deps.LimitService.List(ctx)
		if err != nil {
			return err
		}
		if len(limits) == 0 {
			fmt.Fprintln(out, "No category limits set.")
			return nil
		}
		fmt.Fprintln(out, "Category spending limits:")
		for _, l := range limits {
			fmt.Fprintf(out, "  %-20s | %-10s | %s\n", l.CategoryName, l.Period, l.Amount.StringFixed(2))
		}

	case *RemoveLimitCmd:
		removed, err := deps.LimitService.Remove(ctx, c.Category)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(out, "Removed spending limit for %q\n", c.Category)
		} else {
			fmt.Fprintf(out, "No limit found for category %q\n", c.Category)
		}

	case *AlertsCmd:
		alerts, err := deps.AlertService.GetAll(ctx, c.UnreadOnly, c.Limit)
		if err != nil {
			return err
		}
		if len(alerts) == 0 {
			if c.UnreadOnly {
				fmt.Fprintln(out, "No unread spending alerts.")
			} else {
				fmt.Fprintln(out, "No spending alerts.")
			}
			return nil
		}
		fmt.Fprintln(out, "Spending alerts:")
		for _, a := range alerts {
			printAlertLine(out, a, !c.UnreadOnly)
		}
		if c.MarkRead {
			marked, err := deps.AlertService.MarkAllRead(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nMarked %d alerts as read.\n", marked)
		}

	default:
		log.Errorf("unhandled command type %T", cmd)
		return fmt.Errorf("unhandled command type %T", cmd)
	}

	return nil
}

func newTransaction(c *AddCmd) transaction.Transaction {
	return transaction.Transaction{
		Type:         c.Type,
		Date:         c.Date,
		Amount:       c.Amount,
		CategoryName: c.Category,
		Description:  c.Description,
	}
}

func printAlertLine(out io.Writer, a alert.Alert, withStatus bool) {
	status := ""
	if withStatus {
		if a.IsRead {
			status = "[READ] "
		} else {
			status = "[UNREAD] "
		}
	}
	fmt.Fprintf(out, "  %s[%d] %s | %-15s | Spent %s > %s (%s)\n",
		status, a.ID, a.WindowStart.Format("2006-01-02"), a.CategoryName,
		a.SpentAmount.StringFixed(2), a.LimitAmount.StringFixed(2), a.Period)
}
