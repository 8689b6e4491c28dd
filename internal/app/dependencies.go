package app

import (
	"database/sql"

	"github.com/billfold/billfold/internal/utils"
	"github.com/billfold/billfold/pkg/alert"
	"github.com/billfold/billfold/pkg/category"
	"github.com/billfold/billfold/pkg/limit"
	"github.com/billfold/billfold/pkg/report"
	"github.com/billfold/billfold/pkg/transaction"
)

// Dependencies holds all repositories and services for one invocation.
type Dependencies struct {
	CategoryRepo    category.Repo
	CategoryService category.Service

	TransactionRepo    transaction.Repo
	TransactionService transaction.Service

	LimitRepo    limit.Repo
	LimitService limit.Service

	AlertRepo    alert.Repo
	AlertService alert.Service

	ReportService     report.Service
	CsvReportRenderer *report.CsvReportRendererImpl

	Clock utils.Clock
}

// BuildDependencies initializes and wires all services against the given
// database handle. The handle stays owned by the caller.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.CategoryRepo = category.NewCategoryRepo(db)
	deps.CategoryService = category.NewCategoryService(deps.CategoryRepo)

	deps.TransactionRepo = transaction.NewTransactionRepo(db)
	deps.LimitRepo = limit.NewLimitRepo(db)
	deps.LimitService = limit.NewLimitService(deps.LimitRepo, deps.CategoryRepo, deps.TransactionRepo)

	deps.AlertRepo = alert.NewAlertRepo(db)
	deps.AlertService = alert.NewAlertService(deps.AlertRepo, deps.Clock)

	deps.TransactionService = transaction.NewTransactionService(
		deps.TransactionRepo, deps.CategoryRepo, deps.LimitService, deps.AlertService)

	deps.ReportService = report.NewReportService(deps.TransactionRepo)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()

	return deps
}
