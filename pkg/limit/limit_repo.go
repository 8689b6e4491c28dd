package limit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("no limit configured for category")

type Repo interface {
	// Set stores a limit for the category, replacing any existing one.
	Set(ctx context.Context, categoryId int, amount decimal.Decimal, period Period) error
	Get(ctx context.Context, categoryId int) (Limit, error)
	// Remove deletes the category's limit. Returns false when none existed.
	Remove(ctx context.Context, categoryId int) (bool, error)
	GetAll(ctx context.Context) ([]CategoryLimit, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewLimitRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Set(ctx context.Context, categoryId int, amount decimal.Decimal, period Period) error {
	query := `INSERT INTO category_limits (category_id, amount, period)
				VALUES (?, ?, ?)
				ON CONFLICT(category_id) DO UPDATE SET
					amount = excluded.amount,
					period = excluded.period`
	_, err := r.db.ExecContext(ctx, query, categoryId, amount.String(), string(period))
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Get(ctx context.Context, categoryId int) (Limit, error) {
	query := "SELECT id, category_id, amount, period FROM category_limits WHERE category_id = ?"
	var l Limit
	var amount, period string
	err := r.db.QueryRowContext(ctx, query, categoryId).
		Scan(&l.ID, &l.CategoryID, &amount, &period)
	if errors.Is(err, sql.ErrNoRows) {
		return Limit{}, ErrNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get limit: %w", err)
		log.Error(err)
		return Limit{}, err
	}
	l.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		err := fmt.Errorf("could not parse limit amount: %w", err)
		log.Error(err)
		return Limit{}, err
	}
	l.Period = Period(period)
	return l, nil
}

func (r *RepoImpl) Remove(ctx context.Context, categoryId int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM category_limits WHERE category_id = ?", categoryId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *RepoImpl) GetAll(ctx context.Context) ([]CategoryLimit, error) {
	query := `SELECT cl.id, cl.category_id, cl.amount, cl.period, c.name
				FROM category_limits cl
				JOIN categories c ON cl.category_id = c.id
				ORDER BY c.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query limits: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var limits []CategoryLimit
	for rows.Next() {
		var cl CategoryLimit
		var amount, period string
		if err := rows.Scan(&cl.ID, &cl.CategoryID, &amount, &period, &cl.CategoryName); err != nil {
			err := fmt.Errorf("could not scan limit: %w", err)
			log.Error(err)
			return nil, err
		}
		cl.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			err := fmt.Errorf("could not parse limit amount: %w", err)
			log.Error(err)
			return nil, err
		}
		cl.Period = Period(period)
		limits = append(limits, cl)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return limits, nil
}
