package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Store stores a new transaction and returns its id.
	Store(ctx context.Context, t Transaction) (int, error)
	// GetAll returns transactions most-recent-first. A non-positive limit
	// returns all of them.
	GetAll(ctx context.Context, limit int) ([]Transaction, error)
	// GetAllBetween returns transactions with from <= date < to.
	GetAllBetween(ctx context.Context, from, to time.Time) ([]Transaction, error)
	// Balance is the sum of income minus the sum of expense across all
	// categories, computed with exact decimal arithmetic.
	Balance(ctx context.Context) (decimal.Decimal, error)
	// SumExpenses sums expense amounts for the category with
	// from <= date < to. Income transactions never contribute.
	SumExpenses(ctx context.Context, categoryId int, from, to time.Time) (decimal.Decimal, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, t Transaction) (int, error) {
	query := `INSERT INTO transactions (uid, date, amount, type, category_id, description)
				VALUES (?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		t.Uid,
		t.Date.Format(DateLayout),
		t.Amount.String(),
		string(t.Type),
		t.CategoryID,
		t.Description,
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

func (r *RepoImpl) GetAll(ctx context.Context, limit int) ([]Transaction, error) {
	query := `SELECT t.id, t.uid, t.date, t.amount, t.type, t.category_id, c.name, t.description
				FROM transactions t
				JOIN categories c ON t.category_id = c.id
				ORDER BY t.date DESC, t.id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *RepoImpl) GetAllBetween(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	query := `SELECT t.id, t.uid, t.date, t.amount, t.type, t.category_id, c.name, t.description
				FROM transactions t
				JOIN categories c ON t.category_id = c.id
				WHERE t.date >= ? AND t.date < ?
				ORDER BY t.date DESC, t.id DESC`
	rows, err := r.db.QueryContext(ctx, query, from.Format(DateLayout), to.Format(DateLayout))
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// Balance folds amounts in Go. Amounts are stored as decimal strings and
// SQL must never do arithmetic on them.
func (r *RepoImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT amount, type FROM transactions")
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return decimal.Zero, err
	}
	defer rows.Close()

	balance := decimal.Zero
	for rows.Next() {
		var amountStr, typeStr string
		if err := rows.Scan(&amountStr, &typeStr); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			err := fmt.Errorf("could not parse amount: %w", err)
			log.Error(err)
			return decimal.Zero, err
		}
		if Type(typeStr) == TypeExpense {
			balance = balance.Sub(amount)
		} else {
			balance = balance.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *RepoImpl) SumExpenses(ctx context.Context, categoryId int, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT amount FROM transactions
				WHERE category_id = ? AND type = 'expense' AND date >= ? AND date < ?`
	rows, err := r.db.QueryContext(ctx, query, categoryId, from.Format(DateLayout), to.Format(DateLayout))
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amountStr string
		if err := rows.Scan(&amountStr); err != nil {
			err := fmt.Errorf("could not scan amount: %w", err)
			log.Error(err)
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			err := fmt.Errorf("could not parse amount: %w", err)
			log.Error(err)
			return decimal.Zero, err
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return decimal.Zero, err
	}
	return total, nil
}

func scanTransactions(rows *sql.Rows) ([]Transaction, error) {
	var transactions []Transaction
	for rows.Next() {
		var t Transaction
		var dateStr, amountStr, typeStr string
		var description sql.NullString
		if err := rows.Scan(&t.ID, &t.Uid, &dateStr, &amountStr, &typeStr, &t.CategoryID, &t.CategoryName, &description); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			err := fmt.Errorf("could not parse date: %w", err)
			log.Error(err)
			return nil, err
		}
		t.Date = date
		t.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			err := fmt.Errorf("could not parse amount: %w", err)
			log.Error(err)
			return nil, err
		}
		t.Type = Type(typeStr)
		if description.Valid {
			t.Description = description.String
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return transactions, nil
}
