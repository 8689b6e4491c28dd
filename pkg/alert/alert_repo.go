package alert

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/billfold/billfold/pkg/limit"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type Repo interface {
	// Store stores a new alert and returns its id.
	Store(ctx context.Context, a Alert) (int, error)
	// GetAll returns alerts most-recent-first, optionally only unread
	// ones. A non-positive limit returns all of them.
	GetAll(ctx context.Context, unreadOnly bool, limit int) ([]Alert, error)
	// MarkAllRead marks every unread alert as read and returns the number
	// of rows changed. Idempotent.
	MarkAllRead(ctx context.Context) (int, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewAlertRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, a Alert) (int, error) {
	query := `INSERT INTO spending_alerts
				(category_id, window_start, window_end, limit_amount, spent_amount, period, created_at, is_read)
				VALUES (?, ?, ?, ?, ?, ?, ?, 0)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		a.CategoryID,
		a.WindowStart.Format(dateLayout),
		a.WindowEnd.Format(dateLayout),
		a.LimitAmount.String(),
		a.SpentAmount.String(),
		string(a.Period),
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

func (r *RepoImpl) GetAll(ctx context.Context, unreadOnly bool, limit int) ([]Alert, error) {
	query := `SELECT a.id, a.category_id, c.name, a.window_start, a.window_end,
					a.limit_amount, a.spent_amount, a.period, a.created_at, a.is_read
				FROM spending_alerts a
				JOIN categories c ON a.category_id = c.id`
	if unreadOnly {
		query += " WHERE a.is_read = 0"
	}
	query += " ORDER BY a.created_at DESC, a.id DESC"

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		err := fmt.Errorf("could not query alerts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var alerts []Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return alerts, nil
}

func (r *RepoImpl) MarkAllRead(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE spending_alerts SET is_read = 1 WHERE is_read = 0")
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(rowsAffected), nil
}

func scanAlert(rows *sql.Rows) (Alert, error) {
	var a Alert
	var windowStart, windowEnd, limitAmount, spentAmount, period, createdAt string
	var isRead int
	if err := rows.Scan(&a.ID, &a.CategoryID, &a.CategoryName, &windowStart, &windowEnd,
		&limitAmount, &spentAmount, &period, &createdAt, &isRead); err != nil {
		err := fmt.Errorf("could not scan alert: %w", err)
		log.Error(err)
		return Alert{}, err
	}

	var err error
	if a.WindowStart, err = time.Parse(dateLayout, windowStart); err != nil {
		err := fmt.Errorf("could not parse window start: %w", err)
		log.Error(err)
		return Alert{}, err
	}
	if a.WindowEnd, err = time.Parse(dateLayout, windowEnd); err != nil {
		err := fmt.Errorf("could not parse window end: %w", err)
		log.Error(err)
		return Alert{}, err
	}
	if a.LimitAmount, err = decimal.NewFromString(limitAmount); err != nil {
		err := fmt.Errorf("could not parse limit amount: %w", err)
		log.Error(err)
		return Alert{}, err
	}
	if a.SpentAmount, err = decimal.NewFromString(spentAmount); err != nil {
		err := fmt.Errorf("could not parse spent amount: %w", err)
		log.Error(err)
		return Alert{}, err
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		err := fmt.Errorf("could not parse created at: %w", err)
		log.Error(err)
		return Alert{}, err
	}
	a.Period = limit.Period(period)
	a.IsRead = isRead != 0
	return a, nil
}
