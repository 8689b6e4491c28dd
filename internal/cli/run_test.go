package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billfold/billfold/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and executes a single invocation the way main does, against
// the database under dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	dbPath := filepath.Join(dir, "budget.db")
	cmd, err := Parse(args, dbPath)
	require.NoError(t, err)

	var out bytes.Buffer
	err = Run(context.Background(), cmd, &out)
	return out.String(), err
}

func TestRun_commandsFailBeforeInit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "balance")

	assert.ErrorIs(t, err, database.ErrNotInitialized)
}

func TestRun_initIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized database")

	_, err = run(t, dir, "init")
	assert.NoError(t, err)
}

func TestRun_addAndList(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)

	out, err := run(t, dir, "add",
		"--type", "expense", "--date", "2025-11-15", "--amount", "42.50",
		"--category", "groceries", "--description", "weekly shop")
	require.NoError(t, err)
	assert.Contains(t, out, "Added transaction")
	assert.NotContains(t, out, "SPENDING ALERT")

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-11-15")
	assert.Contains(t, out, "42.50")
	assert.Contains(t, out, "groceries")
	assert.Contains(t, out, "weekly shop")
}

func TestRun_addToUnknownCategoryFails(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)

	_, err = run(t, dir, "add",
		"--type", "expense", "--date", "2025-11-15", "--amount", "10",
		"--category", "missing")

	assert.Error(t, err)
}

func TestRun_balance(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "salary")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--type", "income", "--date", "2025-11-01", "--amount", "1000.00", "--category", "salary")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--type", "expense", "--date", "2025-11-02", "--amount", "199.99", "--category", "groceries")
	require.NoError(t, err)

	out, err := run(t, dir, "balance")

	require.NoError(t, err)
	assert.Equal(t, "Balance: 800.01\n", out)
}

func TestRun_limitBreachPrintsAlert(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)
	out, err := run(t, dir, "set-limit", "--category", "groceries", "--amount", "100", "--period", "monthly")
	require.NoError(t, err)
	assert.Contains(t, out, "monthly")

	// first expense stays under the limit
	out, err = run(t, dir, "add", "--type", "expense", "--date", "2025-11-03", "--amount", "60", "--category", "groceries")
	require.NoError(t, err)
	assert.NotContains(t, out, "SPENDING ALERT")

	// second expense pushes the month over
	out, err = run(t, dir, "add", "--type", "expense", "--date", "2025-11-10", "--amount", "50", "--category", "groceries")
	require.NoError(t, err)
	assert.Contains(t, out, "SPENDING ALERT")
	assert.Contains(t, out, "110.00")
	assert.Contains(t, out, "100.00")

	// the alert is persisted
	out, err = run(t, dir, "alerts")
	require.NoError(t, err)
	assert.Contains(t, out, "Spending alerts:")
	assert.Contains(t, out, "[UNREAD]")
	assert.Contains(t, out, "groceries")
}

func TestRun_alertsMarkRead(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)
	_, err = run(t, dir, "set-limit", "--category", "groceries", "--amount", "10")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--type", "expense", "--date", "2025-11-03", "--amount", "50", "--category", "groceries")
	require.NoError(t, err)

	out, err := run(t, dir, "alerts", "--mark-read")
	require.NoError(t, err)
	assert.Contains(t, out, "Marked 1 alerts as read.")

	out, err = run(t, dir, "alerts", "--unread-only")
	require.NoError(t, err)
	assert.Equal(t, "No unread spending alerts.\n", out)

	out, err = run(t, dir, "alerts")
	require.NoError(t, err)
	assert.Contains(t, out, "[READ]")
}

func TestRun_removeLimit(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)

	out, err := run(t, dir, "remove-limit", "--category", "groceries")
	require.NoError(t, err)
	assert.Contains(t, out, "No limit found")

	_, err = run(t, dir, "set-limit", "--category", "groceries", "--amount", "100")
	require.NoError(t, err)
	out, err = run(t, dir, "remove-limit", "--category", "groceries")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed spending limit")

	out, err = run(t, dir, "list-limits")
	require.NoError(t, err)
	assert.Equal(t, "No category limits set.\n", out)
}

func TestRun_report(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "salary")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--type", "income", "--date", "2025-11-01", "--amount", "3000", "--category", "salary")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--type", "expense", "--date", "2025-11-05", "--amount", "500", "--category", "groceries")
	require.NoError(t, err)

	out, err := run(t, dir, "report", "--year", "2025", "--month", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "Report for 2025-11")
	assert.Contains(t, out, "Income:  3000.00")
	assert.Contains(t, out, "Expense: 500.00")
	assert.Contains(t, out, "Net:     2500.00")

	out, err = run(t, dir, "report", "--year", "2025", "--month", "11", "--csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Report,2025-11", lines[0])
	assert.Contains(t, out, "salary,3000.00")
	assert.Contains(t, out, "groceries,-500.00")
}

func TestRun_categories(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)

	out, err := run(t, dir, "categories")
	require.NoError(t, err)
	assert.Equal(t, "No categories found.\n", out)

	_, err = run(t, dir, "add-category", "rent")
	require.NoError(t, err)
	_, err = run(t, dir, "add-category", "groceries")
	require.NoError(t, err)

	out, err = run(t, dir, "categories")
	require.NoError(t, err)
	groceriesLine := strings.Index(out, "groceries")
	rentLine := strings.Index(out, "rent")
	assert.True(t, groceriesLine >= 0 && rentLine >= 0 && groceriesLine < rentLine)
}
