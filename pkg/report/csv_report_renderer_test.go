package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvReportRendererImpl_RenderReport(t *testing.T) {
	renderer := NewCsvReportRenderer()
	report := MonthlyReport{
		Year:    2025,
		Month:   11,
		Income:  decimal.RequireFromString("3000.00"),
		Expense: decimal.RequireFromString("1700.00"),
		Net:     decimal.RequireFromString("1300.00"),
		ByCategory: []CategoryNet{
			{Category: "salary", Net: decimal.RequireFromString("3000.00")},
			{Category: "groceries", Net: decimal.RequireFromString("-500.00")},
			{Category: "rent", Net: decimal.RequireFromString("-1200.00")},
		},
	}

	rendered, err := renderer.RenderReport(report)

	require.NoError(t, err)
	expected := "Report,2025-11\n" +
		"Category,Net\n" +
		"salary,3000.00\n" +
		"groceries,-500.00\n" +
		"rent,-1200.00\n" +
		"Income,3000.00\n" +
		"Expense,1700.00\n" +
		"Net,1300.00\n"
	assert.Equal(t, expected, rendered)
}

func TestCsvReportRendererImpl_RenderReport_quotesFieldsWithCommas(t *testing.T) {
	renderer := NewCsvReportRenderer()
	report := MonthlyReport{
		Year:    2025,
		Month:   1,
		Income:  decimal.Zero,
		Expense: decimal.RequireFromString("10.00"),
		Net:     decimal.RequireFromString("-10.00"),
		ByCategory: []CategoryNet{
			{Category: "food, drinks", Net: decimal.RequireFromString("-10.00")},
		},
	}

	rendered, err := renderer.RenderReport(report)

	require.NoError(t, err)
	assert.Contains(t, rendered, "\"food, drinks\",-10.00\n")
}
