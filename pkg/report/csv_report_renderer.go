package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (t *CsvReportRendererImpl) RenderReport(report MonthlyReport) (string, error) {
	data := make([][]string, 0, len(report.ByCategory)+5)
	data = append(data, []string{"Report", fmt.Sprintf("%04d-%02d", report.Year, report.Month)})
	data = append(data, []string{"Category", "Net"})
	for _, c := range report.ByCategory {
		data = append(data, []string{c.Category, c.Net.StringFixed(2)})
	}
	data = append(data,
		[]string{"Income", report.Income.StringFixed(2)},
		[]string{"Expense", report.Expense.StringFixed(2)},
		[]string{"Net", report.Net.StringFixed(2)},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
